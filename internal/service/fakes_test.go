package service

import (
	"context"
	"fmt"
	"time"

	"campusforum/internal/models"
	"campusforum/internal/repository"
	"campusforum/internal/roster"
)

// простые фейки репозиториев в памяти для тестов сервисов

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User, password string) error {
	for _, u := range f.users {
		if u.Phone == user.Phone {
			return repository.ErrDuplicatePhone
		}
	}

	f.nextID++
	user.ID = f.nextID
	user.Password = password
	user.CreatedAt = time.Now()

	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, userID int64) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) VerifyPassword(ctx context.Context, phone, password string) (*models.User, error) {
	user, err := f.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, fmt.Errorf("неверный пароль")
	}
	return user, nil
}

func (f *fakeUserRepo) PromoteToStudent(_ context.Context, userID int64, studentID, realName string) error {
	user, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	user.IsStudent = true
	user.StudentID = &studentID
	user.RealName = &realName
	return nil
}

type fakeCodeRepo struct {
	codes map[string]models.VerificationCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: make(map[string]models.VerificationCode)}
}

func (f *fakeCodeRepo) SaveCode(_ context.Context, phone, code string, expiresAt time.Time) error {
	// последняя запись для телефона перекрывает предыдущую
	f.codes[phone] = models.VerificationCode{
		Phone:     phone,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeCodeRepo) GetValidCode(_ context.Context, phone, code string, now time.Time) (*models.VerificationCode, error) {
	record, ok := f.codes[phone]
	if !ok || record.Code != code || !record.ExpiresAt.After(now) {
		return nil, repository.ErrNotFound
	}
	copied := record
	return &copied, nil
}

type fakePostRepo struct {
	posts  []models.Post
	users  *fakeUserRepo
	nextID int64
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{users: users}
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) withAuthor(post models.Post) models.PostWithAuthor {
	row := models.PostWithAuthor{Post: post}
	if user, ok := f.users.users[post.UserID]; ok {
		username := user.Username
		isStudent := user.IsStudent
		row.Username = &username
		row.AuthorRealName = user.RealName
		row.AuthorIsStudent = &isStudent
	}
	return row
}

func (f *fakePostRepo) GetByID(_ context.Context, postID int64) (*models.PostWithAuthor, error) {
	for _, post := range f.posts {
		if post.ID == postID {
			row := f.withAuthor(post)
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePostRepo) List(_ context.Context, limit, offset int) ([]models.PostWithAuthor, error) {
	// новые первыми: посты добавляются в конец среза
	var rows []models.PostWithAuthor
	for i := len(f.posts) - 1 - offset; i >= 0 && len(rows) < limit; i-- {
		rows = append(rows, f.withAuthor(f.posts[i]))
	}
	return rows, nil
}

func (f *fakePostRepo) Count(_ context.Context) (int, error) {
	return len(f.posts), nil
}

type fakeRoster struct {
	entries []roster.Entry
}

func (f *fakeRoster) Load() ([]roster.Entry, error) {
	return f.entries, nil
}
