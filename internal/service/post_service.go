package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"campusforum/internal/models"
	"campusforum/internal/repository"
)

var (
	ErrNotStudent   = errors.New("только подтвержденные студенты могут публиковать посты")
	ErrPostNotFound = errors.New("пост не найден")
	ErrEmptyPost    = errors.New("заголовок и содержание не могут быть пустыми")
)

const defaultPageSize = 10

type CreatePostRequest struct {
	UserID      int64
	Title       string
	Content     string
	Tags        []string
	IsAnonymous bool
	ImagePaths  []string
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (int64, error)
	ListPosts(ctx context.Context, page, limit int) ([]models.PostDetail, *models.Pagination, error)
	GetPost(ctx context.Context, postID int64) (*models.PostDetail, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (int64, error) {
	if req.Title == "" || req.Content == "" {
		return 0, ErrEmptyPost
	}

	// публиковать могут только подтвержденные студенты
	user, err := p.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return 0, err
	}
	if !user.IsStudent {
		return 0, ErrNotStudent
	}

	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return 0, fmt.Errorf("ошибка при сериализации тегов: %w", err)
	}

	imagePaths, err := json.Marshal(req.ImagePaths)
	if err != nil {
		return 0, fmt.Errorf("ошибка при сериализации путей изображений: %w", err)
	}

	post := &models.Post{
		UserID:      req.UserID,
		Title:       req.Title,
		Content:     req.Content,
		Tags:        string(tags),
		IsAnonymous: req.IsAnonymous,
		ImagePaths:  string(imagePaths),
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return 0, err
	}

	return post.ID, nil
}

func (p *postService) ListPosts(ctx context.Context, page, limit int) ([]models.PostDetail, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	total, err := p.postRepo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, err := p.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	posts := make([]models.PostDetail, 0, len(rows))
	for i := range rows {
		posts = append(posts, toPostDetail(&rows[i]))
	}

	totalPages := (total + limit - 1) / limit

	pagination := &models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	return posts, pagination, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (*models.PostDetail, error) {
	row, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	detail := toPostDetail(row)
	return &detail, nil
}

// toPostDetail распаковывает сериализованные списки и скрывает автора
// анонимного поста. Обнуление выполняется здесь, сразу после выборки,
// чтобы ни один путь чтения не отдал данные автора наружу.
func toPostDetail(row *models.PostWithAuthor) models.PostDetail {
	detail := models.PostDetail{
		ID:            row.ID,
		UserID:        &row.Post.UserID,
		Title:         row.Title,
		Content:       row.Content,
		Tags:          unmarshalList(row.Tags),
		IsAnonymous:   row.IsAnonymous,
		ImagePaths:    unmarshalList(row.ImagePaths),
		CreatedAt:     row.CreatedAt,
		Username:      row.Username,
		UserRealName:  row.AuthorRealName,
		UserIsStudent: row.AuthorIsStudent,
	}

	if row.IsAnonymous {
		detail.UserID = nil
		detail.Username = nil
		detail.UserRealName = nil
		detail.UserIsStudent = nil
	}

	return detail
}

func unmarshalList(serialized string) []string {
	if serialized == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(serialized), &list); err != nil {
		return []string{}
	}
	if list == nil {
		return []string{}
	}

	return list
}
