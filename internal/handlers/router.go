package handlers

import (
	"rewear/internal/app"
	"rewear/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAuthHandler(app, api).Register()
	NewUserHandler(app, api).Register()
	NewClothingHandler(app, api).Register()
	NewRentalHandler(app, api).Register()
	NewUploadHandler(app, api).Register()
	NewAdminHandler(app, api).Register()

	return nil
}
