package handlers

import (
	"rewear/internal/app"
	"rewear/internal/handlers/middleware"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	Handler
	storageService *services.StorageService
}

func NewUploadHandler(app *app.App, router fiber.Router) *UploadHandler {
	return &UploadHandler{
		storageService: app.Services.Storage,
		Handler: Handler{
			log:        logger.New("handlers").File("upload_handler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UploadHandler) Register() {
	uploads := h.router.Group("/uploads", h.middleware.RequireAuth())

	uploads.Post("/image", h.uploadImage)
}

func (h *UploadHandler) uploadImage(c *fiber.Ctx) error {
	log := h.log.Function("uploadImage")
	user := middleware.GetUser(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read uploaded file",
		})
	}
	defer file.Close()

	url, err := h.storageService.UploadImage(c.UserContext(), user.ID, fileHeader.Filename, file)
	if err != nil {
		log.Warn("image upload failed", "userID", user.ID, "error", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
