package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"time"
	"unicode/utf8"

	"campusforum/internal/models"
	"campusforum/internal/service"
)

// формат: 1, затем 3-9, затем еще 9 цифр - всего 11
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type RegisterRequest struct {
	Phone            string `json:"phone" validate:"required"`
	Password         string `json:"password" validate:"required,min=6"`
	VerificationCode string `json:"verificationCode" validate:"required"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        int64   `json:"id"`
	Phone     string  `json:"phone"`
	Username  string  `json:"username"`
	IsStudent bool    `json:"isStudent"`
	StudentID *string `json:"studentId"`
	RealName  *string `json:"realName"`
	CreatedAt string  `json:"createdAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// toUserResponse отдает пользователя без пароля
func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Phone:     user.Phone,
		Username:  user.Username,
		IsStudent: user.IsStudent,
		StudentID: user.StudentID,
		RealName:  user.RealName,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handlers) SendCode(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// формат телефона здесь намеренно не проверяется
	if req.Phone == "" {
		WriteError(w, "Телефон не может быть пустым", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.SendCode(r.Context(), req.Phone); err != nil {
		WriteError(w, "Не удалось отправить код", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, "Код подтверждения отправлен (имитация)", nil, http.StatusOK)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Phone == "" || req.Password == "" || req.VerificationCode == "" {
		WriteError(w, "Телефон, пароль и код подтверждения обязательны", http.StatusBadRequest)
		return
	}

	// password verification
	if utf8.RuneCountInString(req.Password) < 6 {
		WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		return
	}

	// phone verification
	if !phonePattern.MatchString(req.Phone) {
		WriteError(w, "Неверный формат телефона", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Phone, req.Password, req.VerificationCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCodeInvalid):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPhoneTaken):
			WriteError(w, "Этот телефон уже зарегистрирован", http.StatusConflict)
		default:
			WriteError(w, "Не удалось зарегистрироваться", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, "Регистрация прошла успешно", AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Phone == "" || req.Password == "" {
		WriteError(w, "Телефон и пароль обязательны", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		// одинаковое сообщение для неизвестного телефона и неверного пароля
		WriteError(w, "Неверный телефон или пароль", http.StatusBadRequest)
		return
	}

	WriteSuccess(w, "Вход выполнен успешно", AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, http.StatusOK)
}

// Logout - токен уничтожается на клиенте, сервер ничего не хранит
// и не инвалидирует (известное ограничение)
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	WriteSuccess(w, "Выход выполнен успешно", nil, http.StatusOK)
}
