package clothingController

import (
	"context"
	"errors"
	"strings"

	"rewear/config"
	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/repositories"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound    = errors.New("clothing item not found")
	ErrNotOwner        = errors.New("only the owner may modify this listing")
	ErrItemHasRentals  = errors.New("item has an active rental and cannot be deleted")
	ErrInvalidCategory = errors.New("unknown clothing category")
	ErrInvalidSize     = errors.New("unknown clothing size")
	ErrInvalidCondition = errors.New("unknown clothing condition")
)

var validate = validator.New()

type CreateListingRequest struct {
	Title       string            `json:"title"       validate:"required,min=3"`
	Description *string           `json:"description,omitempty"`
	Category    ClothingCategory  `json:"category"    validate:"required"`
	Size        ClothingSize      `json:"size"        validate:"required"`
	Condition   ClothingCondition `json:"condition"   validate:"required"`
	RentPerDay  int               `json:"rentPerDay"  validate:"required,gt=0"`
	Images      []string          `json:"images,omitempty"`
}

// UpdateListingRequest carries descriptive edits only. Status is owned
// by the rental lifecycle and is not updatable here.
type UpdateListingRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Category    *ClothingCategory  `json:"category,omitempty"`
	Size        *ClothingSize      `json:"size,omitempty"`
	Condition   *ClothingCondition `json:"condition,omitempty"`
	RentPerDay  *int               `json:"rentPerDay,omitempty"`
	Images      []string           `json:"images,omitempty"`
}

type ClothingControllerInterface interface {
	Browse(ctx context.Context, filter repositories.BrowseFilter) ([]*ClothingItem, error)
	Get(ctx context.Context, itemID uuid.UUID) (*ClothingItem, error)
	CreateListing(
		ctx context.Context,
		ownerID uuid.UUID,
		request *CreateListingRequest,
	) (*ClothingItem, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID) ([]*ClothingItem, error)
	UpdateListing(
		ctx context.Context,
		ownerID, itemID uuid.UUID,
		request *UpdateListingRequest,
	) (*ClothingItem, error)
	DeleteListing(ctx context.Context, ownerID, itemID uuid.UUID) error
}

type ClothingController struct {
	clothingRepo       repositories.ClothingRepository
	rentalRepo         repositories.RentalRepository
	transactionService *services.TransactionService
	db                 database.DB
	config             config.Config
	log                logger.Logger
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) ClothingControllerInterface {
	return &ClothingController{
		clothingRepo:       repos.Clothing,
		rentalRepo:         repos.Rental,
		transactionService: services.Transaction,
		db:                 db,
		config:             config,
		log:                logger.New("clothingController"),
	}
}

func (c *ClothingController) Browse(
	ctx context.Context,
	filter repositories.BrowseFilter,
) ([]*ClothingItem, error) {
	log := c.log.Function("Browse")

	if filter.Category != "" && !filter.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if filter.Size != "" && !filter.Size.Valid() {
		return nil, ErrInvalidSize
	}

	items, err := c.clothingRepo.ListAvailable(ctx, c.db.SQL, filter)
	if err != nil {
		return nil, log.Err("failed to browse items", err)
	}

	return items, nil
}

func (c *ClothingController) Get(ctx context.Context, itemID uuid.UUID) (*ClothingItem, error) {
	item, err := c.clothingRepo.GetByID(ctx, c.db.SQL, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, c.log.Function("Get").Err("failed to get item", err, "itemID", itemID)
	}

	return item, nil
}

func (c *ClothingController) CreateListing(
	ctx context.Context,
	ownerID uuid.UUID,
	request *CreateListingRequest,
) (*ClothingItem, error) {
	log := c.log.Function("CreateListing")

	if err := validate.Struct(request); err != nil {
		return nil, err
	}
	if !request.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if !request.Size.Valid() {
		return nil, ErrInvalidSize
	}
	if !request.Condition.Valid() {
		return nil, ErrInvalidCondition
	}

	item := &ClothingItem{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(request.Title),
		Description: request.Description,
		Category:    request.Category,
		Size:        request.Size,
		Condition:   request.Condition,
		RentPerDay:  request.RentPerDay,
		Status:      StatusAvailable,
		Images:      datatypes.NewJSONSlice(request.Images),
	}

	if err := c.clothingRepo.Create(ctx, c.db.SQL, item); err != nil {
		return nil, log.Err("failed to create listing", err, "ownerID", ownerID)
	}

	return item, nil
}

func (c *ClothingController) ListOwn(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*ClothingItem, error) {
	return c.clothingRepo.ListByOwner(ctx, c.db.SQL, ownerID)
}

func (c *ClothingController) UpdateListing(
	ctx context.Context,
	ownerID, itemID uuid.UUID,
	request *UpdateListingRequest,
) (*ClothingItem, error) {
	log := c.log.Function("UpdateListing")

	updates := map[string]any{}
	if request.Title != nil {
		if trimmed := strings.TrimSpace(*request.Title); trimmed != "" {
			updates["title"] = trimmed
		}
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Category != nil {
		if !request.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *request.Category
	}
	if request.Size != nil {
		if !request.Size.Valid() {
			return nil, ErrInvalidSize
		}
		updates["size"] = *request.Size
	}
	if request.Condition != nil {
		if !request.Condition.Valid() {
			return nil, ErrInvalidCondition
		}
		updates["condition"] = *request.Condition
	}
	if request.RentPerDay != nil {
		if *request.RentPerDay <= 0 {
			return nil, errors.New("rentPerDay must be positive")
		}
		updates["rent_per_day"] = *request.RentPerDay
	}
	if request.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(request.Images)
	}

	if len(updates) > 0 {
		if err := c.clothingRepo.UpdateFields(ctx, c.db.SQL, ownerID, itemID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, log.Err("failed to update listing", err, "itemID", itemID)
		}
	}

	item, err := c.clothingRepo.GetByID(ctx, c.db.SQL, itemID)
	if err != nil {
		return nil, log.Err("failed to reload listing", err, "itemID", itemID)
	}

	return item, nil
}

// DeleteListing soft deletes an owner's item. Deletion is refused while
// any rental still holds the item.
func (c *ClothingController) DeleteListing(ctx context.Context, ownerID, itemID uuid.UUID) error {
	log := c.log.Function("DeleteListing")

	return c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		item, err := c.clothingRepo.GetByID(ctx, tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return log.Err("failed to load item for delete", err, "itemID", itemID)
		}

		if item.OwnerID != ownerID {
			return ErrNotOwner
		}

		active, err := c.rentalRepo.CountActiveForCloth(ctx, tx, itemID)
		if err != nil {
			return log.Err("failed to count active rentals", err, "itemID", itemID)
		}
		if active > 0 {
			return ErrItemHasRentals
		}

		if err := c.clothingRepo.Delete(ctx, tx, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return log.Err("failed to delete item", err, "itemID", itemID)
		}

		return nil
	})
}
