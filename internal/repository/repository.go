package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"campusforum/internal/models"
)

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("запись не найдена")
	// ErrDuplicatePhone - телефон уже зарегистрирован (уникальный индекс)
	ErrDuplicatePhone = errors.New("телефон уже зарегистрирован")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	VerifyPassword(ctx context.Context, phone, password string) (*models.User, error)
	PromoteToStudent(ctx context.Context, userID int64, studentID, realName string) error
}

type CodeRepository interface {
	SaveCode(ctx context.Context, phone, code string, expiresAt time.Time) error
	GetValidCode(ctx context.Context, phone, code string, now time.Time) (*models.VerificationCode, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.PostWithAuthor, error)
	List(ctx context.Context, limit, offset int) ([]models.PostWithAuthor, error)
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	User UserRepository
	Code CodeRepository
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Code: NewCodeRepository(db),
		Post: NewPostRepository(db),
	}
}
