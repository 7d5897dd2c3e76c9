package handlers

import (
	"errors"

	adminController "rewear/internal/controllers/admin"
	authController "rewear/internal/controllers/auth"
	clothingController "rewear/internal/controllers/clothing"
	rentalController "rewear/internal/controllers/rental"
	"rewear/internal/pricing"
	"rewear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain errors onto HTTP status codes. Anything
// unmapped is treated as an internal error and its detail withheld.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, authController.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrSessionRevoked):
		return fiber.StatusUnauthorized, true

	case errors.Is(err, clothingController.ErrNotOwner),
		errors.Is(err, rentalController.ErrOwnItem):
		return fiber.StatusForbidden, true

	case errors.Is(err, clothingController.ErrItemNotFound),
		errors.Is(err, rentalController.ErrItemNotFound),
		errors.Is(err, adminController.ErrRentalNotFound),
		errors.Is(err, adminController.ErrItemNotFound),
		errors.Is(err, adminController.ErrUserNotFound):
		return fiber.StatusNotFound, true

	case errors.Is(err, authController.ErrEmailTaken),
		errors.Is(err, rentalController.ErrItemUnavailable),
		errors.Is(err, clothingController.ErrItemHasRentals),
		errors.Is(err, adminController.ErrItemHasRentals),
		errors.Is(err, adminController.ErrIllegalTransition):
		return fiber.StatusConflict, true

	case errors.Is(err, authController.ErrNotCampusEmail),
		errors.Is(err, rentalController.ErrStartInPast),
		errors.Is(err, clothingController.ErrInvalidCategory),
		errors.Is(err, clothingController.ErrInvalidSize),
		errors.Is(err, clothingController.ErrInvalidCondition),
		errors.Is(err, adminController.ErrInvalidStatus),
		errors.Is(err, adminController.ErrInvalidRole),
		errors.Is(err, pricing.ErrMissingDates),
		errors.Is(err, pricing.ErrInvalidRange),
		errors.Is(err, pricing.ErrInvalidRate),
		errors.Is(err, services.ErrStorageDisabled):
		return fiber.StatusBadRequest, true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusBadRequest, true
	}

	return fiber.StatusInternalServerError, false
}

func errorResponse(c *fiber.Ctx, err error) error {
	status, known := statusForError(err)
	message := "Internal server error"
	if known {
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
