package service

import (
	"context"
	"errors"
	"fmt"

	"campusforum/internal/repository"
	"campusforum/internal/roster"
)

// ErrStudentMismatch - одна ошибка для "неизвестный номер" и "имя не
// совпало", чтобы не подсказывать, какое из полей неверно
var ErrStudentMismatch = errors.New("номер студенческого билета или имя неверны")

type StudentService interface {
	VerifyStudent(ctx context.Context, userID int64, studentID, name string) error
}

type studentService struct {
	userRepo repository.UserRepository
	roster   roster.Loader
}

func NewStudentService(userRepo repository.UserRepository, rosterLoader roster.Loader) StudentService {
	return &studentService{
		userRepo: userRepo,
		roster:   rosterLoader,
	}
}

// VerifyStudent сверяет пару (номер, имя) со снимком списка студентов
// и при совпадении помечает пользователя как студента. Повторное
// подтверждение с другими данными не запрещено: снимок может меняться
// между проверками.
func (s *studentService) VerifyStudent(ctx context.Context, userID int64, studentID, name string) error {
	entries, err := s.roster.Load()
	if err != nil {
		return fmt.Errorf("ошибка при загрузке списка студентов: %w", err)
	}

	if !roster.Contains(entries, studentID, name) {
		return ErrStudentMismatch
	}

	err = s.userRepo.PromoteToStudent(ctx, userID, studentID, name)
	if err != nil {
		return err
	}

	return nil
}
