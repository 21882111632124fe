package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"campusforum/internal/repository"
	"campusforum/internal/service"
)

type VerifyStudentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
			return
		}
		WriteError(w, "Не удалось получить профиль", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, "", ProfileResponse{User: toUserResponse(user)}, http.StatusOK)
}

func (h *Handlers) VerifyStudent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req VerifyStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.StudentID == "" || req.Name == "" {
		WriteError(w, "Номер студенческого билета и имя обязательны", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	err := h.StudentService.VerifyStudent(r.Context(), userID, req.StudentID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentMismatch):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		default:
			WriteError(w, "Ошибка при подтверждении студента", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, "Студенческий статус подтвержден", nil, http.StatusOK)
}
