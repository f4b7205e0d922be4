package service

import (
	"testing"
	"time"

	"github.com/sangkips/billing-api/internal/config"
	"github.com/sangkips/billing-api/pkg/apperror"
	"github.com/sangkips/billing-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*AuthService, *utils.JWTManager) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(jwtManager, config.OperatorConfig{
		Username: "operator",
		Password: "operator123",
	})
	return svc, jwtManager
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtManager := newAuthService()

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		tokens, err := svc.Login("operator", "operator123")
		require.NoError(t, err)
		assert.Equal(t, "Bearer", tokens.TokenType)

		claims, err := jwtManager.ValidateAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims.Operator)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login("operator", "wrong")
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		_, err := svc.Login("admin", "operator123")
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	svc, _ := newAuthService()

	tokens, err := svc.Login("operator", "operator123")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
