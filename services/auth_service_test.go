package services

import (
	"context"
	"testing"

	"slime-shop/models"
	"slime-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaticAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := utils.HashPassword("hunter2!")
	require.NoError(t, err)

	verifier := NewStaticCredentialVerifier(map[string]models.AdminUser{
		"admin@slimeshop.test": {
			ID:           1,
			Email:        "admin@slimeshop.test",
			PasswordHash: hash,
			Role:         "admin",
		},
	})
	return NewAuthService(verifier)
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newStaticAuthService(t)
	ctx := context.Background()

	t.Run("ValidCredentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, models.LoginRequest{
			Email:    "admin@slimeshop.test",
			Password: "hunter2!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.User.Role)

		claims, err := utils.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin@slimeshop.test", claims.Email)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{
			Email:    "admin@slimeshop.test",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{
			Email:    "nobody@slimeshop.test",
			Password: "hunter2!",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
