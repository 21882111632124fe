package service

import (
	"context"
	"fmt"
	"io"

	"campusforum/internal/storage"
)

type UploadService interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, error)
}

type uploadService struct {
	storage storage.Storage
}

func NewUploadService(storage storage.Storage) UploadService {
	return &uploadService{storage: storage}
}

// UploadImage кладет файл в хранилище и возвращает путь, который клиент
// затем передает в imagePaths при создании поста
func (s *uploadService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, error) {
	_, imageURL, err := s.storage.UploadImage(ctx, fileName, file, size, contentType)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	return imageURL, nil
}
