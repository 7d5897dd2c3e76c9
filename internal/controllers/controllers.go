package controllers

import (
	"rewear/config"
	"rewear/internal/database"
	"rewear/internal/repositories"
	"rewear/internal/services"

	adminController "rewear/internal/controllers/admin"
	authController "rewear/internal/controllers/auth"
	clothingController "rewear/internal/controllers/clothing"
	rentalController "rewear/internal/controllers/rental"
	userController "rewear/internal/controllers/users"
)

type Controllers struct {
	Auth     authController.AuthControllerInterface
	User     userController.UserControllerInterface
	Clothing clothingController.ClothingControllerInterface
	Rental   rentalController.RentalControllerInterface
	Admin    adminController.AdminControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:     authController.New(services, repos, config, db),
		User:     userController.New(repos, services, config, db),
		Clothing: clothingController.New(repos, services, config, db),
		Rental:   rentalController.New(repos, services, config, db),
		Admin:    adminController.New(repos, services, config, db),
	}
}
