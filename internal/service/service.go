package service

import (
	"campusforum/internal/config"
	"campusforum/internal/repository"
	"campusforum/internal/roster"
	"campusforum/internal/storage"
)

type Service struct {
	Auth    AuthService
	Code    CodeService
	Student StudentService
	Post    PostService
	Upload  UploadService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	codeService := NewCodeService(rep.Code, cfg)

	return &Service{
		Auth:    NewAuthService(rep.User, codeService, cfg),
		Code:    codeService,
		Student: NewStudentService(rep.User, roster.NewFileLoader(cfg.RosterPath)),
		Post:    NewPostService(rep.Post, rep.User),
		Upload:  NewUploadService(storage),
	}
}
