package repositories

import (
	"context"
	"time"

	. "rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RentalRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Rental, error)
	Create(ctx context.Context, tx *gorm.DB, rental *Rental) error
	Update(ctx context.Context, tx *gorm.DB, rental *Rental) error
	ListByRenter(ctx context.Context, tx *gorm.DB, renterID uuid.UUID) ([]*Rental, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*Rental, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*Rental, error)
	CountActiveForCloth(ctx context.Context, tx *gorm.DB, clothID uuid.UUID) (int64, error)
	ListOverdue(ctx context.Context, tx *gorm.DB, asOf time.Time) ([]*Rental, error)
	MarkOverdue(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (int64, error)
}

type rentalRepository struct {
	log logger.Logger
}

func NewRentalRepository() RentalRepository {
	return &rentalRepository{
		log: logger.New("rentalRepository"),
	}
}

func (r *rentalRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Rental, error) {
	var rental Rental
	if err := tx.WithContext(ctx).
		Preload("Cloth").
		First(&rental, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &rental, nil
}

func (r *rentalRepository) Create(ctx context.Context, tx *gorm.DB, rental *Rental) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(rental).Error; err != nil {
		return log.Err("failed to create rental", err, "clothID", rental.ClothID)
	}

	return nil
}

func (r *rentalRepository) Update(ctx context.Context, tx *gorm.DB, rental *Rental) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(rental).Error; err != nil {
		return log.Err("failed to update rental", err, "rentalID", rental.ID)
	}

	return nil
}

func (r *rentalRepository) ListByRenter(
	ctx context.Context,
	tx *gorm.DB,
	renterID uuid.UUID,
) ([]*Rental, error) {
	log := r.log.Function("ListByRenter")

	var rentals []*Rental
	if err := tx.WithContext(ctx).
		Preload("Cloth").
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {
		return nil, log.Err("failed to list rentals by renter", err, "renterID", renterID)
	}

	return rentals, nil
}

func (r *rentalRepository) ListByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*Rental, error) {
	log := r.log.Function("ListByOwner")

	var rentals []*Rental
	if err := tx.WithContext(ctx).
		Preload("Cloth").
		Preload("Renter").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {
		return nil, log.Err("failed to list rentals by owner", err, "ownerID", ownerID)
	}

	return rentals, nil
}

func (r *rentalRepository) ListAll(ctx context.Context, tx *gorm.DB) ([]*Rental, error) {
	log := r.log.Function("ListAll")

	var rentals []*Rental
	if err := tx.WithContext(ctx).
		Preload("Cloth").
		Preload("Renter").
		Preload("Owner").
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {
		return nil, log.Err("failed to list all rentals", err)
	}

	return rentals, nil
}

func (r *rentalRepository) CountActiveForCloth(
	ctx context.Context,
	tx *gorm.DB,
	clothID uuid.UUID,
) (int64, error) {
	log := r.log.Function("CountActiveForCloth")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Rental{}).
		Where("cloth_id = ? AND status IN ?", clothID, []RentalStatus{StatusReserved, StatusRented}).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count active rentals", err, "clothID", clothID)
	}

	return count, nil
}

// ListOverdue returns rented rentals whose end date has passed and are
// not yet flagged. asOf is compared against the date portion only.
func (r *rentalRepository) ListOverdue(
	ctx context.Context,
	tx *gorm.DB,
	asOf time.Time,
) ([]*Rental, error) {
	log := r.log.Function("ListOverdue")

	cutoff := asOf.UTC().Format("2006-01-02")

	var rentals []*Rental
	if err := tx.WithContext(ctx).
		Where("status = ? AND overdue = ? AND end_date < ?", StatusRented, false, cutoff).
		Find(&rentals).Error; err != nil {
		return nil, log.Err("failed to list overdue rentals", err)
	}

	return rentals, nil
}

func (r *rentalRepository) MarkOverdue(
	ctx context.Context,
	tx *gorm.DB,
	ids []uuid.UUID,
) (int64, error) {
	log := r.log.Function("MarkOverdue")

	if len(ids) == 0 {
		return 0, nil
	}

	result := tx.WithContext(ctx).
		Model(&Rental{}).
		Where("id IN ?", ids).
		Update("overdue", true)
	if result.Error != nil {
		return 0, log.Err("failed to mark rentals overdue", result.Error)
	}

	return result.RowsAffected, nil
}
