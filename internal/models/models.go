package models

import (
	"time"
)

type User struct {
	ID        int64     `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	Password  string    `json:"-" db:"password"`
	Username  string    `json:"username" db:"username"`
	IsStudent bool      `json:"isStudent" db:"is_student"`
	StudentID *string   `json:"studentId" db:"student_id"`
	RealName  *string   `json:"realName" db:"real_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type VerificationCode struct {
	ID        int64     `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	Code      string    `json:"code" db:"code"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Tags        string    `json:"-" db:"tags"`
	IsAnonymous bool      `json:"isAnonymous" db:"is_anonymous"`
	ImagePaths  string    `json:"-" db:"image_paths"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// PostWithAuthor - строка выборки поста вместе с данными автора
type PostWithAuthor struct {
	Post
	Username        *string `db:"username"`
	AuthorRealName  *string `db:"author_real_name"`
	AuthorIsStudent *bool   `db:"author_is_student"`
}

// PostDetail - пост, готовый к выдаче наружу: списки распакованы,
// у анонимных постов данные автора обнулены
type PostDetail struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"userId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Tags          []string  `json:"tags"`
	IsAnonymous   bool      `json:"isAnonymous"`
	ImagePaths    []string  `json:"imagePaths"`
	CreatedAt     time.Time `json:"createdAt"`
	Username      *string   `json:"username"`
	UserRealName  *string   `json:"userRealName"`
	UserIsStudent *bool     `json:"userIsStudent"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalPosts  int  `json:"totalPosts"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// TokenIdentity - личность запроса, извлеченная из сессионного токена
type TokenIdentity struct {
	UserID int64
	Phone  string
}
