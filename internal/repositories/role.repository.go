package repositories

import (
	"context"
	"errors"
	"time"

	"rewear/internal/database"
	. "rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ROLE_CACHE_EXPIRY = 12 * time.Hour
	ROLE_CACHE_PREFIX = "roles:"
)

type RoleRepository interface {
	HasRole(ctx context.Context, userID uuid.UUID, role AppRole) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]AppRole, error)
	Grant(ctx context.Context, tx *gorm.DB, userID uuid.UUID, role AppRole) error
	Revoke(ctx context.Context, userID uuid.UUID, role AppRole) error
}

type roleRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRoleRepository(db database.DB) RoleRepository {
	return &roleRepository{
		db:  db,
		log: logger.New("roleRepository"),
	}
}

func (r *roleRepository) HasRole(
	ctx context.Context,
	userID uuid.UUID,
	role AppRole,
) (bool, error) {
	roles, err := r.ListForUser(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, held := range roles {
		if held == role {
			return true, nil
		}
	}

	return false, nil
}

func (r *roleRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]AppRole, error) {
	log := r.log.Function("ListForUser")

	var roles []AppRole
	if found := r.getFromCache(ctx, userID, &roles); found {
		return roles, nil
	}

	var userRoles []UserRole
	if err := r.db.SQLWithContext(ctx).
		Where("user_id = ?", userID).
		Find(&userRoles).Error; err != nil {
		return nil, log.Err("failed to list roles for user", err, "userID", userID)
	}

	roles = make([]AppRole, 0, len(userRoles))
	for _, userRole := range userRoles {
		roles = append(roles, userRole.Role)
	}

	r.addToCache(ctx, userID, roles)

	return roles, nil
}

func (r *roleRepository) Grant(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	role AppRole,
) error {
	log := r.log.Function("Grant")

	userRole := UserRole{UserID: userID, Role: role}
	if err := tx.WithContext(ctx).Create(&userRole).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return log.Err("failed to grant role", err, "userID", userID, "role", role)
	}

	r.clearCache(ctx, userID)

	return nil
}

func (r *roleRepository) Revoke(ctx context.Context, userID uuid.UUID, role AppRole) error {
	log := r.log.Function("Revoke")

	result := r.db.SQLWithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&UserRole{})
	if result.Error != nil {
		return log.Err("failed to revoke role", result.Error, "userID", userID, "role", role)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.clearCache(ctx, userID)

	return nil
}

func (r *roleRepository) getFromCache(ctx context.Context, userID uuid.UUID, roles *[]AppRole) bool {
	if r.db.Cache.User == nil {
		return false
	}

	found, err := database.NewCacheBuilder(r.db.Cache.User, ROLE_CACHE_PREFIX+userID.String()).
		WithContext(ctx).
		Get(roles)
	if err != nil {
		r.log.Function("getFromCache").
			Warn("failed to get roles from cache", "userID", userID, "error", err)
		return false
	}

	return found
}

func (r *roleRepository) addToCache(ctx context.Context, userID uuid.UUID, roles []AppRole) {
	if r.db.Cache.User == nil {
		return
	}

	if err := database.NewCacheBuilder(r.db.Cache.User, ROLE_CACHE_PREFIX+userID.String()).
		WithStruct(roles).
		WithTTL(ROLE_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		r.log.Function("addToCache").
			Warn("failed to cache roles", "userID", userID, "error", err)
	}
}

func (r *roleRepository) clearCache(ctx context.Context, userID uuid.UUID) {
	if r.db.Cache.User == nil {
		return
	}

	if err := database.NewCacheBuilder(r.db.Cache.User, ROLE_CACHE_PREFIX+userID.String()).
		WithContext(ctx).
		Delete(); err != nil {
		r.log.Function("clearCache").
			Warn("failed to clear role cache", "userID", userID, "error", err)
	}
}
