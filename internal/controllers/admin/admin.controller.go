package adminController

import (
	"context"
	"errors"
	"fmt"

	"rewear/config"
	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/repositories"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRentalNotFound    = errors.New("rental not found")
	ErrItemNotFound      = errors.New("clothing item not found")
	ErrItemHasRentals    = errors.New("item has an active rental and cannot be deleted")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidStatus     = errors.New("unknown rental status")
	ErrIllegalTransition = errors.New("rental status transition not allowed")
	ErrInvalidRole       = errors.New("unknown role")
)

type UpdateRentalStatusRequest struct {
	Status     RentalStatus `json:"status"`
	AdminNotes *string      `json:"adminNotes,omitempty"`
}

type AdminControllerInterface interface {
	ListRentals(ctx context.Context) ([]*Rental, error)
	ListItems(ctx context.Context) ([]*ClothingItem, error)
	UpdateRentalStatus(
		ctx context.Context,
		rentalID uuid.UUID,
		request *UpdateRentalStatusRequest,
	) (*Rental, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	GrantRole(ctx context.Context, userID uuid.UUID, role AppRole) error
	RevokeRole(ctx context.Context, userID uuid.UUID, role AppRole) error
	TriggerOverdueSweep(ctx context.Context) error
}

type AdminController struct {
	rentalRepo         repositories.RentalRepository
	clothingRepo       repositories.ClothingRepository
	userRepo           repositories.UserRepository
	roleRepo           repositories.RoleRepository
	transactionService *services.TransactionService
	schedulerService   *services.SchedulerService
	db                 database.DB
	config             config.Config
	log                logger.Logger
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) AdminControllerInterface {
	return &AdminController{
		rentalRepo:         repos.Rental,
		clothingRepo:       repos.Clothing,
		userRepo:           repos.User,
		roleRepo:           repos.Role,
		transactionService: services.Transaction,
		schedulerService:   services.Scheduler,
		db:                 db,
		config:             config,
		log:                logger.New("adminController"),
	}
}

func (c *AdminController) ListRentals(ctx context.Context) ([]*Rental, error) {
	return c.rentalRepo.ListAll(ctx, c.db.SQL)
}

func (c *AdminController) ListItems(ctx context.Context) ([]*ClothingItem, error) {
	return c.clothingRepo.ListAll(ctx, c.db.SQL)
}

// UpdateRentalStatus advances a rental along the forward-only state
// machine and mirrors the new status onto the item in the same
// transaction. Returning a rental releases the item back to available.
func (c *AdminController) UpdateRentalStatus(
	ctx context.Context,
	rentalID uuid.UUID,
	request *UpdateRentalStatusRequest,
) (*Rental, error) {
	log := c.log.Function("UpdateRentalStatus")

	if !request.Status.Valid() || request.Status == StatusAvailable {
		return nil, ErrInvalidStatus
	}

	var rental *Rental
	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		rental, err = c.rentalRepo.GetByID(ctx, tx, rentalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRentalNotFound
			}
			return log.Err("failed to load rental", err, "rentalID", rentalID)
		}

		if !rental.Status.CanTransitionTo(request.Status) {
			return fmt.Errorf(
				"%w: %s to %s",
				ErrIllegalTransition,
				rental.Status,
				request.Status,
			)
		}

		rental.Status = request.Status
		if request.AdminNotes != nil {
			rental.AdminNotes = request.AdminNotes
		}

		if err := c.rentalRepo.Update(ctx, tx, rental); err != nil {
			return log.Err("failed to update rental", err, "rentalID", rentalID)
		}

		mirrored := request.Status.MirrorForItem()
		if err := c.clothingRepo.SetStatus(ctx, tx, rental.ClothID, mirrored); err != nil {
			return log.Err("failed to mirror status onto item", err, "clothID", rental.ClothID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rental, nil
}

// DeleteItem removes any owner's listing, with the same active-rental
// guard as an owner delete.
func (c *AdminController) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	log := c.log.Function("DeleteItem")

	return c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
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

func (c *AdminController) GrantRole(ctx context.Context, userID uuid.UUID, role AppRole) error {
	log := c.log.Function("GrantRole")

	if !role.Valid() {
		return ErrInvalidRole
	}

	if _, err := c.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return log.Err("failed to load user", err, "userID", userID)
	}

	return c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return c.roleRepo.Grant(ctx, tx, userID, role)
	})
}

func (c *AdminController) RevokeRole(ctx context.Context, userID uuid.UUID, role AppRole) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	err := c.roleRepo.Revoke(ctx, userID, role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (c *AdminController) TriggerOverdueSweep(ctx context.Context) error {
	return c.schedulerService.TriggerJobByName(ctx, "OverdueRentalSweep")
}
