package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"campusforum/internal/config"
	"campusforum/internal/repository"
)

type CodeService interface {
	IssueCode(ctx context.Context, phone string) (string, error)
	CheckCode(ctx context.Context, phone, code string) (bool, error)
}

type codeService struct {
	codeRepo repository.CodeRepository
	cfg      *config.Config
}

func NewCodeService(codeRepo repository.CodeRepository, cfg *config.Config) CodeService {
	return &codeService{
		codeRepo: codeRepo,
		cfg:      cfg,
	}
}

// IssueCode записывает код для телефона со сроком действия из конфига.
// Реальная отправка SMS не выполняется: сервис работает в тестовом
// режиме и всегда выдает фиксированный код.
func (s *codeService) IssueCode(ctx context.Context, phone string) (string, error) {
	code := s.cfg.TestCode
	expiresAt := time.Now().Add(s.cfg.CodeTTL)

	err := s.codeRepo.SaveCode(ctx, phone, code, expiresAt)
	if err != nil {
		return "", fmt.Errorf("ошибка при выдаче кода: %w", err)
	}

	log.Printf("Код %s отправлен на %s (имитация)", code, phone)

	return code, nil
}

// CheckCode - чистая проверка: пара телефон/код должна существовать
// и не быть просроченной. Код не одноразовый и действует до истечения
// срока при любом числе проверок.
func (s *codeService) CheckCode(ctx context.Context, phone, code string) (bool, error) {
	_, err := s.codeRepo.GetValidCode(ctx, phone, code, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
