package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusforum/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:  "test-secret-key",
		TokenDuration: 24 * time.Hour,
		CodeTTL:       5 * time.Minute,
		TestCode:      "9999",
	}
}

func newTestAuthService(cfg *config.Config) (AuthService, *fakeUserRepo, *fakeCodeRepo) {
	userRepo := newFakeUserRepo()
	codeRepo := newFakeCodeRepo()
	codeService := NewCodeService(codeRepo, cfg)
	return NewAuthService(userRepo, codeService, cfg), userRepo, codeRepo
}

func TestAuthService_SendCode(t *testing.T) {
	cfg := testConfig()
	auth, _, codeRepo := newTestAuthService(cfg)
	ctx := context.Background()

	err := auth.SendCode(ctx, "13800138000")

	require.NoError(t, err)

	record, ok := codeRepo.codes["13800138000"]
	require.True(t, ok)
	assert.Equal(t, "9999", record.Code)
	// срок действия примерно 5 минут от текущего момента
	assert.WithinDuration(t, time.Now().Add(cfg.CodeTTL), record.ExpiresAt, 2*time.Second)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешная регистрация с действующим кодом", func(t *testing.T) {
		auth, _, _ := newTestAuthService(testConfig())

		require.NoError(t, auth.SendCode(ctx, "13800138000"))

		user, token, err := auth.Register(ctx, "13800138000", "password123", "9999")

		require.NoError(t, err)
		assert.Equal(t, "user8000", user.Username)
		assert.False(t, user.IsStudent)
		assert.NotEmpty(t, token)

		identity, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
		assert.Equal(t, "13800138000", identity.Phone)
	})

	t.Run("Неверный код отклоняется", func(t *testing.T) {
		auth, _, _ := newTestAuthService(testConfig())

		require.NoError(t, auth.SendCode(ctx, "13800138000"))

		_, _, err := auth.Register(ctx, "13800138000", "password123", "0000")

		assert.ErrorIs(t, err, ErrCodeInvalid)
	})

	t.Run("Просроченный код отклоняется", func(t *testing.T) {
		cfg := testConfig()
		cfg.CodeTTL = -time.Second
		auth, _, _ := newTestAuthService(cfg)

		require.NoError(t, auth.SendCode(ctx, "13800138000"))

		_, _, err := auth.Register(ctx, "13800138000", "password123", "9999")

		assert.ErrorIs(t, err, ErrCodeInvalid)
	})

	t.Run("Действует последний отправленный код", func(t *testing.T) {
		cfg := testConfig()
		auth, _, codeRepo := newTestAuthService(cfg)

		require.NoError(t, auth.SendCode(ctx, "13800138000"))
		// вторая отправка перекрывает первую
		require.NoError(t, codeRepo.SaveCode(ctx, "13800138000", "1234", time.Now().Add(cfg.CodeTTL)))

		_, _, err := auth.Register(ctx, "13800138000", "password123", "9999")
		assert.ErrorIs(t, err, ErrCodeInvalid)

		_, _, err = auth.Register(ctx, "13800138000", "password123", "1234")
		assert.NoError(t, err)
	})

	t.Run("Повторная регистрация того же телефона", func(t *testing.T) {
		auth, _, _ := newTestAuthService(testConfig())

		require.NoError(t, auth.SendCode(ctx, "13800138000"))

		_, _, err := auth.Register(ctx, "13800138000", "password123", "9999")
		require.NoError(t, err)

		_, _, err = auth.Register(ctx, "13800138000", "password456", "9999")
		assert.ErrorIs(t, err, ErrPhoneTaken)
	})

	t.Run("Тестовый режим принимает фиксированный код без отправки", func(t *testing.T) {
		cfg := testConfig()
		cfg.BypassVerification = true
		auth, _, _ := newTestAuthService(cfg)

		_, _, err := auth.Register(ctx, "13800138000", "password123", "9999")

		assert.NoError(t, err)
	})

	t.Run("Без тестового режима фиксированный код проверяется как обычный", func(t *testing.T) {
		auth, _, _ := newTestAuthService(testConfig())

		// код не отправлялся, записи в хранилище нет
		_, _, err := auth.Register(ctx, "13800138000", "password123", "9999")

		assert.ErrorIs(t, err, ErrCodeInvalid)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := newTestAuthService(testConfig())

	require.NoError(t, auth.SendCode(ctx, "13800138000"))
	_, _, err := auth.Register(ctx, "13800138000", "password123", "9999")
	require.NoError(t, err)

	t.Run("Успешный вход", func(t *testing.T) {
		user, token, err := auth.Login(ctx, "13800138000", "password123")

		require.NoError(t, err)
		assert.Equal(t, "13800138000", user.Phone)
		assert.NotEmpty(t, token)
	})

	t.Run("Неверный пароль и неизвестный телефон дают одну ошибку", func(t *testing.T) {
		_, _, errWrongPassword := auth.Login(ctx, "13800138000", "wrong")
		_, _, errUnknownPhone := auth.Login(ctx, "13900139000", "password123")

		require.Error(t, errWrongPassword)
		require.Error(t, errUnknownPhone)
		assert.Equal(t, errWrongPassword.Error(), errUnknownPhone.Error())
		assert.ErrorIs(t, errWrongPassword, ErrBadCredentials)
		assert.ErrorIs(t, errUnknownPhone, ErrBadCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Подделанная подпись отклоняется", func(t *testing.T) {
		auth, _, _ := newTestAuthService(testConfig())

		require.NoError(t, auth.SendCode(ctx, "13800138000"))
		_, token, err := auth.Register(ctx, "13800138000", "password123", "9999")
		require.NoError(t, err)

		// портим подпись токена
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		flip := "AAAA"
		if strings.HasPrefix(parts[2], flip) {
			flip = "BBBB"
		}
		tampered := parts[0] + "." + parts[1] + "." + flip + parts[2][4:]

		_, err = auth.ValidateToken(tampered)
		assert.Error(t, err)
	})

	t.Run("Просроченный токен отклоняется", func(t *testing.T) {
		cfg := testConfig()
		cfg.TokenDuration = -time.Hour
		auth, _, _ := newTestAuthService(cfg)

		require.NoError(t, auth.SendCode(ctx, "13800138000"))
		_, token, err := auth.Register(ctx, "13800138000", "password123", "9999")
		require.NoError(t, err)

		_, err = auth.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Токен с чужим секретом отклоняется", func(t *testing.T) {
		auth, _, _ := newTestAuthService(testConfig())

		otherCfg := testConfig()
		otherCfg.JWTSecretKey = "another-secret"
		otherAuth, _, _ := newTestAuthService(otherCfg)

		require.NoError(t, otherAuth.SendCode(ctx, "13800138000"))
		_, token, err := otherAuth.Register(ctx, "13800138000", "password123", "9999")
		require.NoError(t, err)

		_, err = auth.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Мусорная строка отклоняется", func(t *testing.T) {
		auth, _, _ := newTestAuthService(testConfig())

		_, err := auth.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
