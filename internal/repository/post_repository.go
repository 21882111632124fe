package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"campusforum/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, title, content, tags, is_anonymous, image_paths)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		post.UserID, post.Title, post.Content, post.Tags, post.IsAnonymous, post.ImagePaths,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.PostWithAuthor, error) {
	query := `
		SELECT p.*,
		       u.username,
		       u.real_name AS author_real_name,
		       u.is_student AS author_is_student
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`

	var post models.PostWithAuthor
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// List возвращает страницу постов вместе с данными авторов, новые первыми
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.PostWithAuthor, error) {
	query := `
		SELECT p.*,
		       u.username,
		       u.real_name AS author_real_name,
		       u.is_student AS author_is_student
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var posts []models.PostWithAuthor
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете постов: %w", err)
	}

	return count, nil
}
