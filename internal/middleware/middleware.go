package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	handlers "campusforum/internal/handler"
	"campusforum/internal/service"
)

// ключи контекста, под которыми auth middleware кладет личность запроса
const (
	ContextUserID = "userID"
	ContextPhone  = "phone"
)

// AuthMiddleware проверяет сессионный токен и кладет данные пользователя
// в контекст. Отсутствующий и недействительный токен наружу выглядят
// одинаково, разница видна только в логе.
func AuthMiddleware(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("auth: токен отсутствует (%s %s)", r.Method, r.URL.Path)
				handlers.WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			// checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("auth: неверный формат заголовка (%s %s)", r.Method, r.URL.Path)
				handlers.WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			identity, err := authService.ValidateToken(parts[1])
			if err != nil {
				log.Printf("auth: токен отклонен: %v (%s %s)", err, r.Method, r.URL.Path)
				handlers.WriteError(w, "Требуется авторизация", http.StatusForbidden)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextUserID, identity.UserID)
			ctx = context.WithValue(ctx, ContextPhone, identity.Phone)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
