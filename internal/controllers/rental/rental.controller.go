package rentalController

import (
	"context"
	"errors"
	"time"

	"rewear/config"
	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/pricing"
	"rewear/internal/repositories"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound    = errors.New("clothing item not found")
	ErrItemUnavailable = errors.New("item is not available for rent")
	ErrOwnItem         = errors.New("you cannot rent your own item")
	ErrStartInPast     = errors.New("rental start date cannot be in the past")
)

type CreateRentalRequest struct {
	ClothID   uuid.UUID `json:"clothId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type QuoteRequest struct {
	ClothID   uuid.UUID `json:"clothId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type RentalControllerInterface interface {
	CreateRental(
		ctx context.Context,
		renterID uuid.UUID,
		request *CreateRentalRequest,
	) (*Rental, error)
	Quote(ctx context.Context, request *QuoteRequest) (*pricing.Breakdown, error)
	ListAsRenter(ctx context.Context, renterID uuid.UUID) ([]*Rental, error)
	ListAsOwner(ctx context.Context, ownerID uuid.UUID) ([]*Rental, error)
}

type RentalController struct {
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
) RentalControllerInterface {
	return &RentalController{
		clothingRepo:       repos.Clothing,
		rentalRepo:         repos.Rental,
		transactionService: services.Transaction,
		db:                 db,
		config:             config,
		log:                logger.New("rentalController"),
	}
}

// CreateRental reserves an item for the renter. The reservation and
// the rental row commit atomically: the item flips to reserved only
// while still available, so concurrent requests for the same item
// cannot both succeed.
func (c *RentalController) CreateRental(
	ctx context.Context,
	renterID uuid.UUID,
	request *CreateRentalRequest,
) (*Rental, error) {
	log := c.log.Function("CreateRental")

	today := truncateToDate(time.Now())
	if truncateToDate(request.StartDate).Before(today) {
		return nil, ErrStartInPast
	}

	var rental *Rental
	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		item, err := c.clothingRepo.GetByID(ctx, tx, request.ClothID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return log.Err("failed to load item", err, "clothID", request.ClothID)
		}

		if item.OwnerID == renterID {
			return ErrOwnItem
		}

		breakdown, err := pricing.Quote(
			request.StartDate,
			request.EndDate,
			item.RentPerDay,
			c.config.CommissionRate,
		)
		if err != nil {
			return err
		}

		reserved, err := c.clothingRepo.ReserveIfAvailable(ctx, tx, item.ID)
		if err != nil {
			return log.Err("failed to reserve item", err, "clothID", item.ID)
		}
		if !reserved {
			return ErrItemUnavailable
		}

		rental = &Rental{
			ClothID:     item.ID,
			RenterID:    renterID,
			OwnerID:     item.OwnerID,
			StartDate:   truncateToDate(request.StartDate),
			EndDate:     truncateToDate(request.EndDate),
			TotalAmount: breakdown.Total,
			Status:      StatusReserved,
		}

		if err := c.rentalRepo.Create(ctx, tx, rental); err != nil {
			return log.Err("failed to create rental", err, "clothID", item.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rental, nil
}

// Quote prices a prospective rental without reserving anything.
func (c *RentalController) Quote(
	ctx context.Context,
	request *QuoteRequest,
) (*pricing.Breakdown, error) {
	item, err := c.clothingRepo.GetByID(ctx, c.db.SQL, request.ClothID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, c.log.Function("Quote").
			Err("failed to load item", err, "clothID", request.ClothID)
	}

	breakdown, err := pricing.Quote(
		request.StartDate,
		request.EndDate,
		item.RentPerDay,
		c.config.CommissionRate,
	)
	if err != nil {
		return nil, err
	}

	return &breakdown, nil
}

func (c *RentalController) ListAsRenter(
	ctx context.Context,
	renterID uuid.UUID,
) ([]*Rental, error) {
	return c.rentalRepo.ListByRenter(ctx, c.db.SQL, renterID)
}

func (c *RentalController) ListAsOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*Rental, error) {
	return c.rentalRepo.ListByOwner(ctx, c.db.SQL, ownerID)
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
