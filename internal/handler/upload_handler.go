package handlers

import (
	"fmt"
	"net/http"
)

type UploadResponse struct {
	ImagePath string `json:"imagePath"`
}

// allowed image formats
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadImage принимает multipart-файл, кладет его в MinIO и возвращает
// путь, который клиент передает в imagePaths при создании поста
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := r.Context().Value("userID").(int64); !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	imagePath, err := h.UploadService.UploadImage(r.Context(), header.Filename, file, header.Size, contentType)
	if err != nil {
		WriteError(w, "Ошибка загрузки изображения", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, "Изображение загружено", UploadResponse{ImagePath: imagePath}, http.StatusCreated)
}
