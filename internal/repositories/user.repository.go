package repositories

import (
	"context"
	"time"

	"rewear/internal/database"
	. "rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

const (
	USER_CACHE_EXPIRY = 24 * time.Hour
	USER_CACHE_PREFIX = "user:"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	log := r.log.Function("GetByID")

	var user User
	if found := r.getFromCache(ctx, id, &user); found {
		return &user, nil
	}

	if err := r.db.SQLWithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get user by id", err, "id", id)
	}

	r.addToCache(ctx, &user)

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	log := r.log.Function("GetByEmail")

	var user User
	if err := r.db.SQLWithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, log.Err("failed to get user by email", err, "email", email)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *User) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(user).Error; err != nil {
		return log.Err("failed to create user", err, "email", user.Email)
	}

	r.addToCache(ctx, user)

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *User) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(user).Error; err != nil {
		return log.Err("failed to update user", err, "userID", user.ID)
	}

	if err := database.NewCacheBuilder(r.db.Cache.User, USER_CACHE_PREFIX+user.ID.String()).
		WithContext(ctx).
		Delete(); err != nil {
		log.Warn("failed to clear user cache after update", "userID", user.ID, "error", err)
	}

	return nil
}

func (r *userRepository) getFromCache(ctx context.Context, id uuid.UUID, user *User) bool {
	if r.db.Cache.User == nil {
		return false
	}

	found, err := database.NewCacheBuilder(r.db.Cache.User, USER_CACHE_PREFIX+id.String()).
		WithContext(ctx).
		Get(user)
	if err != nil {
		r.log.Function("getFromCache").
			Warn("failed to get user from cache", "userID", id, "error", err)
		return false
	}

	return found
}

func (r *userRepository) addToCache(ctx context.Context, user *User) {
	if r.db.Cache.User == nil {
		return
	}

	if err := database.NewCacheBuilder(r.db.Cache.User, USER_CACHE_PREFIX+user.ID.String()).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		r.log.Function("addToCache").
			Warn("failed to add user to cache", "userID", user.ID, "error", err)
	}
}
