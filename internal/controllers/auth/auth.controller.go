package authController

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
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrNotCampusEmail     = errors.New("registration requires a campus email address")
)

var validate = validator.New()

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type AuthControllerInterface interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type AuthController struct {
	userRepo           repositories.UserRepository
	roleRepo           repositories.RoleRepository
	sessionService     *services.SessionService
	transactionService *services.TransactionService
	db                 database.DB
	config             config.Config
	log                logger.Logger
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) AuthControllerInterface {
	return &AuthController{
		userRepo:           repos.User,
		roleRepo:           repos.Role,
		sessionService:     services.Session,
		transactionService: services.Transaction,
		db:                 db,
		config:             config,
		log:                logger.New("authController"),
	}
}

func (c *AuthController) Register(
	ctx context.Context,
	request *RegisterRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Register")

	if err := validate.Struct(request); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if !strings.HasSuffix(email, c.config.CampusEmailDomain) {
		return nil, ErrNotCampusEmail
	}

	if _, err := c.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to check existing email", err)
	}

	hash, err := c.sessionService.HashPassword(request.Password)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(request.FullName),
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
		return c.roleRepo.Grant(ctx, tx, user.ID, RoleUser)
	})
	if err != nil {
		return nil, log.Err("failed to register user", err, "email", email)
	}

	token, err := c.sessionService.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, log.Err("failed to issue token after registration", err, "userID", user.ID)
	}

	return &AuthResponse{Token: token, User: user.ToProfile(false)}, nil
}

func (c *AuthController) Login(
	ctx context.Context,
	request *LoginRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Login")

	if err := validate.Struct(request); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := c.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, log.Err("failed to look up user", err)
	}

	if !c.sessionService.CheckPassword(user.PasswordHash, request.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := c.sessionService.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, log.Err("failed to issue token", err, "userID", user.ID)
	}

	isAdmin, err := c.roleRepo.HasRole(ctx, user.ID, RoleAdmin)
	if err != nil {
		return nil, log.Err("failed to check admin role", err, "userID", user.ID)
	}

	return &AuthResponse{Token: token, User: user.ToProfile(isAdmin)}, nil
}

func (c *AuthController) Logout(ctx context.Context, token string) error {
	return c.sessionService.RevokeToken(ctx, token)
}
