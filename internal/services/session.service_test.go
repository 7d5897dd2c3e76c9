package services

import (
	"context"
	"testing"
	"time"

	"rewear/config"
	"rewear/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) *SessionService {
	t.Helper()

	return NewSessionService(database.DB{}, config.Config{
		JWTSecret:       "test-secret",
		SessionTTLHours: 1,
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	service := newTestSessionService(t)

	hash, err := service.HashPassword("campus-pass-123")
	require.NoError(t, err)
	assert.NotEqual(t, "campus-pass-123", hash)

	assert.True(t, service.CheckPassword(hash, "campus-pass-123"))
	assert.False(t, service.CheckPassword(hash, "wrong-password"))
}

func TestIssueAndValidateToken(t *testing.T) {
	service := newTestSessionService(t)
	userID := uuid.New()

	token, err := service.IssueToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, err := service.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newTestSessionService(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "not-a-token"},
		{name: "wrong signature", token: func() string {
			other := NewSessionService(database.DB{}, config.Config{
				JWTSecret:       "different-secret",
				SessionTTLHours: 1,
			})
			token, err := other.IssueToken(context.Background(), uuid.New())
			require.NoError(t, err)
			return token
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	service := newTestSessionService(t)
	userID := uuid.New()
	sessionID := uuid.New()

	token, err := service.signToken(userID, sessionID, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = service.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
