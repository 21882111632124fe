package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"campusforum/internal/config"
	handlers "campusforum/internal/handler"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		TokenDuration: 24 * time.Hour,
		CodeTTL:       5 * time.Minute,
		TestCode:      "9999",
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService:    &MockAuthService{},
		StudentService: &MockStudentService{},
		PostService:    &MockPostService{},
		UploadService:  &MockUploadService{},
		UserRepo:       &MockUserRepository{},
		Cfg:            cfg,
		Validate:       validator.New(),
		StartTime:      time.Now(),
	}
}

// decodeEnvelope разбирает единый конверт ответа
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (bool, string, map[string]interface{}) {
	t.Helper()

	var response struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	return response.Success, response.Message, response.Data
}

// assertEnvelopeError проверяет конверт с ошибкой
func assertEnvelopeError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	success, message, _ := decodeEnvelope(t, rr)
	assert.False(t, success)
	assert.Contains(t, message, expectedMessage)
}
