package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"campusforum/internal/models"
	"campusforum/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SendCode(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockAuthService) Register(ctx context.Context, phone, password, code string) (*models.User, string, error) {
	args := m.Called(ctx, phone, password, code)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, phone, password string) (*models.User, string, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*models.TokenIdentity, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenIdentity), args.Error(1)
}

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) VerifyStudent(ctx context.Context, userID int64, studentID, name string) error {
	args := m.Called(ctx, userID, studentID, name)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, page, limit int) ([]models.PostDetail, *models.Pagination, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.PostDetail), args.Get(1).(*models.Pagination), args.Error(2)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64) (*models.PostDetail, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetail), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, fileName, file, size, contentType)
	return args.String(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, phone, password string) (*models.User, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) PromoteToStudent(ctx context.Context, userID int64, studentID, realName string) error {
	args := m.Called(ctx, userID, studentID, realName)
	return args.Error(0)
}
