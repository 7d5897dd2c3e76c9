package middleware

import (
	"rewear/config"
	"rewear/internal/database"
	"rewear/internal/repositories"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB             database.DB
	userRepo       repositories.UserRepository
	roleRepo       repositories.RoleRepository
	sessionService *services.SessionService
	Config         config.Config
	log            logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
	sessionService *services.SessionService,
) Middleware {
	return Middleware{
		DB:             db,
		userRepo:       repos.User,
		roleRepo:       repos.Role,
		sessionService: sessionService,
		Config:         config,
		log:            logger.New("middleware"),
	}
}
