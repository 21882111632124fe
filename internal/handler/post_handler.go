package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"campusforum/internal/models"
	"campusforum/internal/repository"
	"campusforum/internal/service"
)

type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Tags        []string `json:"tags"`
	IsAnonymous bool     `json:"isAnonymous"`
	ImagePaths  []string `json:"imagePaths"`
}

type CreatePostResponse struct {
	PostID int64 `json:"postId"`
}

type PostsResponse struct {
	Posts      []models.PostDetail `json:"posts"`
	Pagination *models.Pagination  `json:"pagination"`
}

type PostResponse struct {
	Post *models.PostDetail `json:"post"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Content == "" {
		WriteError(w, "Заголовок и содержание не могут быть пустыми", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	postID, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		UserID:      userID,
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		IsAnonymous: req.IsAnonymous,
		ImagePaths:  req.ImagePaths,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPost):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrNotStudent):
			WriteError(w, "Только подтвержденные студенты могут публиковать посты", http.StatusForbidden)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		default:
			WriteError(w, "Не удалось опубликовать пост", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, "Пост успешно опубликован", CreatePostResponse{PostID: postID}, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// pagination parameters
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, pagination, err := h.PostService.ListPosts(r.Context(), page, limit)
	if err != nil {
		WriteError(w, "Не удалось получить посты", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, "", PostsResponse{
		Posts:      posts,
		Pagination: pagination,
	}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный идентификатор поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		WriteError(w, "Не удалось получить пост", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, "", PostResponse{Post: post}, http.StatusOK)
}
