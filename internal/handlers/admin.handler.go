package handlers

import (
	"rewear/internal/app"
	adminController "rewear/internal/controllers/admin"
	. "rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	Handler
	adminController adminController.AdminControllerInterface
}

func NewAdminHandler(app *app.App, router fiber.Router) *AdminHandler {
	return &AdminHandler{
		adminController: app.Controllers.Admin,
		Handler: Handler{
			log:        logger.New("handlers").File("admin_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin", h.middleware.RequireAuth(), h.middleware.RequireAdmin())

	admin.Get("/rentals", h.listRentals)
	admin.Get("/clothes", h.listItems)
	admin.Delete("/clothes/:id", h.deleteItem)
	admin.Patch("/rentals/:id/status", h.updateRentalStatus)
	admin.Post("/users/:id/roles/:role", h.grantRole)
	admin.Delete("/users/:id/roles/:role", h.revokeRole)
	admin.Post("/jobs/overdue-sweep", h.triggerOverdueSweep)
}

func (h *AdminHandler) listRentals(c *fiber.Ctx) error {
	rentals, err := h.adminController.ListRentals(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"rentals": rentals})
}

func (h *AdminHandler) listItems(c *fiber.Ctx) error {
	items, err := h.adminController.ListItems(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *AdminHandler) deleteItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	if err := h.adminController.DeleteItem(c.UserContext(), itemID); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) updateRentalStatus(c *fiber.Ctx) error {
	rentalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid rental id",
		})
	}

	var request adminController.UpdateRentalStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rental, err := h.adminController.UpdateRentalStatus(c.UserContext(), rentalID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(rental)
}

func (h *AdminHandler) grantRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	role := AppRole(c.Params("role"))
	if err := h.adminController.GrantRole(c.UserContext(), userID, role); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) revokeRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	role := AppRole(c.Params("role"))
	if err := h.adminController.RevokeRole(c.UserContext(), userID, role); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) triggerOverdueSweep(c *fiber.Ctx) error {
	if err := h.adminController.TriggerOverdueSweep(c.UserContext()); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
