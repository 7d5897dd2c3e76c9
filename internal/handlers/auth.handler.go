package handlers

import (
	"rewear/internal/app"
	authController "rewear/internal/controllers/auth"
	"rewear/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	authController authController.AuthControllerInterface
}

func NewAuthHandler(app *app.App, router fiber.Router) *AuthHandler {
	return &AuthHandler{
		authController: app.Controllers.Auth,
		Handler: Handler{
			log:        logger.New("handlers").File("auth_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	auth := h.router.Group("/auth")

	auth.Post("/register", h.register)
	auth.Post("/login", h.login)

	protected := auth.Group("/", h.middleware.RequireAuth())
	protected.Post("/logout", h.logout)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var request authController.RegisterRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := h.authController.Register(c.UserContext(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var request authController.LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := h.authController.Login(c.UserContext(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(response)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	token := middleware.GetToken(c)
	if err := h.authController.Logout(c.UserContext(), token); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
