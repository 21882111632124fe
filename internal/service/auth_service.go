package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campusforum/internal/config"
	"campusforum/internal/models"
	"campusforum/internal/repository"
)

var (
	ErrCodeInvalid    = errors.New("код подтверждения недействителен или истек")
	ErrPhoneTaken     = errors.New("этот телефон уже зарегистрирован")
	ErrBadCredentials = errors.New("неверный телефон или пароль")
)

type AuthService interface {
	SendCode(ctx context.Context, phone string) error
	Register(ctx context.Context, phone, password, code string) (*models.User, string, error)
	Login(ctx context.Context, phone, password string) (*models.User, string, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*models.TokenIdentity, error)
}

type authService struct {
	userRepo    repository.UserRepository
	codeService CodeService
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, codeService CodeService, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		codeService: codeService,
		cfg:         cfg,
	}
}

func (s *authService) SendCode(ctx context.Context, phone string) error {
	_, err := s.codeService.IssueCode(ctx, phone)
	if err != nil {
		return err
	}

	return nil
}

func (s *authService) Register(ctx context.Context, phone, password, code string) (*models.User, string, error) {
	// в тестовом режиме фиксированный код принимается без обращения к БД
	bypassed := s.cfg.BypassVerification && code == s.cfg.TestCode
	if !bypassed {
		ok, err := s.codeService.CheckCode(ctx, phone, code)
		if err != nil {
			return nil, "", fmt.Errorf("ошибка при проверке кода: %w", err)
		}
		if !ok {
			return nil, "", ErrCodeInvalid
		}
	}

	user := &models.User{
		Phone: phone,
		// имя пользователя по умолчанию из последних 4 цифр телефона
		Username:  "user" + phone[len(phone)-4:],
		IsStudent: false,
	}

	// уникальность телефона обеспечивает индекс в БД, отдельная
	// предварительная проверка не спасает от гонки
	err := s.userRepo.CreateUser(ctx, user, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, "", ErrPhoneTaken
		}
		return nil, "", err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, phone, password string) (*models.User, string, error) {
	// неизвестный телефон и неверный пароль дают одну и ту же ошибку,
	// чтобы нельзя было перебирать зарегистрированные номера
	user, err := s.userRepo.VerifyPassword(ctx, phone, password)
	if err != nil {
		return nil, "", ErrBadCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

func (s *authService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"phone": user.Phone,
		"exp":   time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*models.TokenIdentity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// checking the signature algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	id, ok1 := claims["id"].(float64)
	phone, ok2 := claims["phone"].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("неверные данные в токене")
	}

	return &models.TokenIdentity{
		UserID: int64(id),
		Phone:  phone,
	}, nil
}
