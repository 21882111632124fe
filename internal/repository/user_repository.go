package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"campusforum/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user.Password = string(hashedPassword)

	query := `
		INSERT INTO users (phone, password, username, is_student)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = r.db.QueryRowxContext(ctx, query,
		user.Phone, user.Password, user.Username, user.IsStudent,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// гонка двух регистраций решается уникальным индексом по phone,
		// а не предварительной проверкой существования
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE phone = $1`

	err := r.db.GetContext(ctx, &user, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по телефону: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, phone, password string) (*models.User, error) {
	user, err := r.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный пароль")
	}

	return user, nil
}

func (r *userRepository) PromoteToStudent(ctx context.Context, userID int64, studentID, realName string) error {
	query := `
		UPDATE users
		SET is_student = TRUE, student_id = $1, real_name = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, studentID, realName, userID)
	if err != nil {
		return fmt.Errorf("ошибка при подтверждении студента: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
