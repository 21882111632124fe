package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"

	"campusforum/internal/config"
	"campusforum/internal/database"
	"campusforum/internal/repository"
	"campusforum/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	StudentService service.StudentService
	PostService    service.PostService
	UploadService  service.UploadService
	UserRepo       repository.UserRepository
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
	StartTime      time.Time
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		StudentService: services.Student,
		PostService:    services.Post,
		UploadService:  services.Upload,
		UserRepo:       repo.User,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
		StartTime:      time.Now(),
	}
}
