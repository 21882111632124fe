package handlers

import (
	"net/http"
	"time"
)

type StatusResponse struct {
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// StatusHandler - проверка живости сервиса вместе с пингом БД
func (h *Handlers) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "Сервис недоступен", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, "API-сервис работает", StatusResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.StartTime).Seconds(),
	}, http.StatusOK)
}
