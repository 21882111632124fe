package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"campusforum/cmd/app"
	"campusforum/internal/config"
	handlers "campusforum/internal/handler"
	"campusforum/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.CORSMiddleware)

	// public routes
	router.HandleFunc("/api/status", handler.StatusHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/auth/send-code", handler.SendCode).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)

	// routes behind the session token
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware(services.Auth))
	protected.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/user/profile", handler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/user/verify-student", handler.VerifyStudent).Methods(http.MethodPost)
	protected.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	protected.HandleFunc("/upload/image", handler.UploadImage).Methods(http.MethodPost)

	// starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
