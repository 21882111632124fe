package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"campusforum/internal/models"
)

type codeRepository struct {
	db *sqlx.DB
}

func NewCodeRepository(db *sqlx.DB) CodeRepository {
	return &codeRepository{db: db}
}

// SaveCode сохраняет код для телефона; повторная отправка
// перезаписывает предыдущий код (действует последний)
func (r *codeRepository) SaveCode(ctx context.Context, phone, code string, expiresAt time.Time) error {
	query := `
		INSERT INTO verification_codes (phone, code, expires_at, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (phone) DO UPDATE
		SET code = EXCLUDED.code,
		    expires_at = EXCLUDED.expires_at,
		    created_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query, phone, code, expiresAt)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении кода подтверждения: %w", err)
	}

	return nil
}

// GetValidCode возвращает запись только для точной пары телефон/код,
// срок действия которой еще не истек
func (r *codeRepository) GetValidCode(ctx context.Context, phone, code string, now time.Time) (*models.VerificationCode, error) {
	var record models.VerificationCode

	query := `
		SELECT * FROM verification_codes
		WHERE phone = $1 AND code = $2 AND expires_at > $3
	`

	err := r.db.GetContext(ctx, &record, query, phone, code, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при проверке кода подтверждения: %w", err)
	}

	return &record, nil
}
