package handlers

import (
	"rewear/internal/app"
	rentalController "rewear/internal/controllers/rental"
	"rewear/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type RentalHandler struct {
	Handler
	rentalController rentalController.RentalControllerInterface
}

func NewRentalHandler(app *app.App, router fiber.Router) *RentalHandler {
	return &RentalHandler{
		rentalController: app.Controllers.Rental,
		Handler: Handler{
			log:        logger.New("handlers").File("rental_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RentalHandler) Register() {
	rentals := h.router.Group("/rentals", h.middleware.RequireAuth())

	rentals.Post("/", h.create)
	rentals.Post("/quote", h.quote)
	rentals.Get("/renting", h.listAsRenter)
	rentals.Get("/lending", h.listAsOwner)
}

func (h *RentalHandler) create(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	var request rentalController.CreateRentalRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rental, err := h.rentalController.CreateRental(c.UserContext(), user.ID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(rental)
}

func (h *RentalHandler) quote(c *fiber.Ctx) error {
	var request rentalController.QuoteRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	breakdown, err := h.rentalController.Quote(c.UserContext(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(breakdown)
}

func (h *RentalHandler) listAsRenter(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	rentals, err := h.rentalController.ListAsRenter(c.UserContext(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"rentals": rentals})
}

func (h *RentalHandler) listAsOwner(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	rentals, err := h.rentalController.ListAsOwner(c.UserContext(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"rentals": rentals})
}
