package handlers

import (
	"rewear/internal/app"
	clothingController "rewear/internal/controllers/clothing"
	"rewear/internal/handlers/middleware"
	. "rewear/internal/models"
	"rewear/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ClothingHandler struct {
	Handler
	clothingController clothingController.ClothingControllerInterface
}

func NewClothingHandler(app *app.App, router fiber.Router) *ClothingHandler {
	return &ClothingHandler{
		clothingController: app.Controllers.Clothing,
		Handler: Handler{
			log:        logger.New("handlers").File("clothing_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ClothingHandler) Register() {
	clothes := h.router.Group("/clothes")

	// Browsing is public
	clothes.Get("/", h.browse)
	clothes.Get("/:id", h.get)

	protected := clothes.Group("/", h.middleware.RequireAuth())
	protected.Post("/", h.create)
	protected.Get("/mine/list", h.listOwn)
	protected.Patch("/:id", h.update)
	protected.Delete("/:id", h.delete)
}

func (h *ClothingHandler) browse(c *fiber.Ctx) error {
	filter := repositories.BrowseFilter{
		Category: ClothingCategory(c.Query("category")),
		Size:     ClothingSize(c.Query("size")),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	items, err := h.clothingController.Browse(c.UserContext(), filter)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *ClothingHandler) get(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	item, err := h.clothingController.Get(c.UserContext(), itemID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(item)
}

func (h *ClothingHandler) create(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	var request clothingController.CreateListingRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.clothingController.CreateListing(c.UserContext(), user.ID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ClothingHandler) listOwn(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	items, err := h.clothingController.ListOwn(c.UserContext(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *ClothingHandler) update(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	var request clothingController.UpdateListingRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.clothingController.UpdateListing(c.UserContext(), user.ID, itemID, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(item)
}

func (h *ClothingHandler) delete(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	if err := h.clothingController.DeleteListing(c.UserContext(), user.ID, itemID); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
