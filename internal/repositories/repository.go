package repositories

import (
	"rewear/internal/database"
)

type Repository struct {
	User     UserRepository
	Clothing ClothingRepository
	Rental   RentalRepository
	Role     RoleRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:     NewUserRepository(db), // user repo needs the cache clients
		Clothing: NewClothingRepository(),
		Rental:   NewRentalRepository(),
		Role:     NewRoleRepository(db), // role grants are cached too
	}
}
