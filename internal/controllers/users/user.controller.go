package userController

import (
	"context"
	"strings"

	"rewear/config"
	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/repositories"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName   *string `json:"fullName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Hostel     *string `json:"hostel,omitempty"`
	RoomNumber *string `json:"roomNumber,omitempty"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
}

type UserControllerInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	UpdateProfile(
		ctx context.Context,
		userID uuid.UUID,
		request *UpdateProfileRequest,
	) (*UserProfile, error)
}

type UserController struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	db       database.DB
	config   config.Config
	log      logger.Logger
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) UserControllerInterface {
	return &UserController{
		userRepo: repos.User,
		roleRepo: repos.Role,
		db:       db,
		config:   config,
		log:      logger.New("userController"),
	}
}

func (c *UserController) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*UserProfile, error) {
	log := c.log.Function("GetProfile")

	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to get user", err, "userID", userID)
	}

	isAdmin, err := c.roleRepo.HasRole(ctx, userID, RoleAdmin)
	if err != nil {
		return nil, log.Err("failed to check admin role", err, "userID", userID)
	}

	profile := user.ToProfile(isAdmin)
	return &profile, nil
}

func (c *UserController) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	request *UpdateProfileRequest,
) (*UserProfile, error) {
	log := c.log.Function("UpdateProfile")

	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to get user", err, "userID", userID)
	}

	if request.FullName != nil {
		if trimmed := strings.TrimSpace(*request.FullName); trimmed != "" {
			user.FullName = trimmed
		}
	}
	if request.Phone != nil {
		user.Phone = request.Phone
	}
	if request.Hostel != nil {
		user.Hostel = request.Hostel
	}
	if request.RoomNumber != nil {
		user.RoomNumber = request.RoomNumber
	}
	if request.AvatarURL != nil {
		user.AvatarURL = request.AvatarURL
	}

	if err := c.userRepo.Update(ctx, user); err != nil {
		return nil, log.Err("failed to update user", err, "userID", userID)
	}

	isAdmin, err := c.roleRepo.HasRole(ctx, userID, RoleAdmin)
	if err != nil {
		return nil, log.Err("failed to check admin role", err, "userID", userID)
	}

	profile := user.ToProfile(isAdmin)
	return &profile, nil
}
