package repositories

import (
	"context"
	"strings"

	. "rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Browse sort orders exposed to the catalog.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

type BrowseFilter struct {
	Category ClothingCategory
	Size     ClothingSize
	Search   string
	Sort     string
}

type ClothingRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*ClothingItem, error)
	ListAvailable(ctx context.Context, tx *gorm.DB, filter BrowseFilter) ([]*ClothingItem, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*ClothingItem, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*ClothingItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *ClothingItem) error
	UpdateFields(ctx context.Context, tx *gorm.DB, ownerID, itemID uuid.UUID, updates map[string]any) error
	ReserveIfAvailable(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status RentalStatus) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type clothingRepository struct {
	log logger.Logger
}

func NewClothingRepository() ClothingRepository {
	return &clothingRepository{
		log: logger.New("clothingRepository"),
	}
}

func (r *clothingRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*ClothingItem, error) {
	var item ClothingItem
	if err := tx.WithContext(ctx).Preload("Owner").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *clothingRepository) ListAvailable(
	ctx context.Context,
	tx *gorm.DB,
	filter BrowseFilter,
) ([]*ClothingItem, error) {
	log := r.log.Function("ListAvailable")

	query := tx.WithContext(ctx).Where("status = ?", StatusAvailable)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ?", pattern)
	}

	switch filter.Sort {
	case SortPriceLow:
		query = query.Order("rent_per_day ASC")
	case SortPriceHigh:
		query = query.Order("rent_per_day DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var items []*ClothingItem
	if err := query.Find(&items).Error; err != nil {
		return nil, log.Err("failed to list available items", err)
	}

	return items, nil
}

func (r *clothingRepository) ListByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*ClothingItem, error) {
	log := r.log.Function("ListByOwner")

	var items []*ClothingItem
	if err := tx.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, log.Err("failed to list items by owner", err, "ownerID", ownerID)
	}

	return items, nil
}

func (r *clothingRepository) ListAll(ctx context.Context, tx *gorm.DB) ([]*ClothingItem, error) {
	log := r.log.Function("ListAll")

	var items []*ClothingItem
	if err := tx.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, log.Err("failed to list all items", err)
	}

	return items, nil
}

func (r *clothingRepository) Create(ctx context.Context, tx *gorm.DB, item *ClothingItem) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		return log.Err("failed to create clothing item", err, "ownerID", item.OwnerID)
	}

	return nil
}

func (r *clothingRepository) UpdateFields(
	ctx context.Context,
	tx *gorm.DB,
	ownerID, itemID uuid.UUID,
	updates map[string]any,
) error {
	log := r.log.Function("UpdateFields")

	result := tx.WithContext(ctx).
		Model(&ClothingItem{}).
		Where("id = ? AND owner_id = ?", itemID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update clothing item", result.Error, "itemID", itemID)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// ReserveIfAvailable flips an item to reserved only while it is still
// available. The conditional write is what closes the check-then-act
// race between two renters: the loser sees zero rows affected.
func (r *clothingRepository) ReserveIfAvailable(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (bool, error) {
	log := r.log.Function("ReserveIfAvailable")

	result := tx.WithContext(ctx).
		Model(&ClothingItem{}).
		Where("id = ? AND status = ?", id, StatusAvailable).
		Update("status", StatusReserved)
	if result.Error != nil {
		return false, log.Err("failed to reserve clothing item", result.Error, "itemID", id)
	}

	return result.RowsAffected > 0, nil
}

func (r *clothingRepository) SetStatus(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	status RentalStatus,
) error {
	log := r.log.Function("SetStatus")

	if err := tx.WithContext(ctx).
		Model(&ClothingItem{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return log.Err("failed to set clothing item status", err, "itemID", id, "status", status)
	}

	return nil
}

func (r *clothingRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Delete(&ClothingItem{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete clothing item", result.Error, "itemID", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
