package handlers

import (
	"rewear/internal/app"
	userController "rewear/internal/controllers/users"
	"rewear/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	userController userController.UserControllerInterface
}

func NewUserHandler(app *app.App, router fiber.Router) *UserHandler {
	return &UserHandler{
		userController: app.Controllers.User,
		Handler: Handler{
			log:        logger.New("handlers").File("user_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users", h.middleware.RequireAuth())

	users.Get("/me", h.getProfile)
	users.Patch("/me", h.updateProfile)
}

func (h *UserHandler) getProfile(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	profile, err := h.userController.GetProfile(c.UserContext(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(profile)
}

func (h *UserHandler) updateProfile(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	var request userController.UpdateProfileRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := h.userController.UpdateProfile(c.UserContext(), user.ID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(profile)
}
