package authController

import (
	"context"
	"testing"

	"rewear/config"
	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/repositories"
	"rewear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (AuthControllerInterface, database.DB) {
	t.Helper()

	db := database.NewTestDB(t)
	cfg := config.Config{
		JWTSecret:         "test-secret",
		SessionTTLHours:   1,
		CampusEmailDomain: "@dtu.ac.in",
		CommissionRate:    0.10,
	}

	repos := repositories.New(db)
	svcs, err := services.New(db, cfg)
	require.NoError(t, err)

	return New(svcs, repos, cfg, db), db
}

func TestRegister(t *testing.T) {
	controller, db := newTestController(t)

	response, err := controller.Register(context.Background(), &RegisterRequest{
		Email:    "Asha.Verma@dtu.ac.in",
		Password: "long-enough-pass",
		FullName: "Asha Verma",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "asha.verma@dtu.ac.in", response.User.Email)
	assert.False(t, response.User.IsAdmin)

	var roles []UserRole
	require.NoError(t, db.SQL.Where("user_id = ?", response.User.ID).Find(&roles).Error)
	require.Len(t, roles, 1)
	assert.Equal(t, RoleUser, roles[0].Role)
}

func TestRegisterEmailDomain(t *testing.T) {
	controller, _ := newTestController(t)

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "campus email ok", email: "valid@dtu.ac.in", wantErr: nil},
		{name: "gmail rejected", email: "someone@gmail.com", wantErr: ErrNotCampusEmail},
		{name: "lookalike domain rejected", email: "x@dtu.ac.in.evil.com", wantErr: ErrNotCampusEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := controller.Register(context.Background(), &RegisterRequest{
				Email:    tt.email,
				Password: "long-enough-pass",
				FullName: "Some Student",
			})
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	controller, _ := newTestController(t)

	request := &RegisterRequest{
		Email:    "dup@dtu.ac.in",
		Password: "long-enough-pass",
		FullName: "First Registrant",
	}

	_, err := controller.Register(context.Background(), request)
	require.NoError(t, err)

	_, err = controller.Register(context.Background(), request)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterWeakPassword(t *testing.T) {
	controller, _ := newTestController(t)

	_, err := controller.Register(context.Background(), &RegisterRequest{
		Email:    "weak@dtu.ac.in",
		Password: "short",
		FullName: "Weak Password",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	controller, _ := newTestController(t)

	_, err := controller.Register(context.Background(), &RegisterRequest{
		Email:    "login@dtu.ac.in",
		Password: "long-enough-pass",
		FullName: "Login Tester",
	})
	require.NoError(t, err)

	response, err := controller.Login(context.Background(), &LoginRequest{
		Email:    "login@dtu.ac.in",
		Password: "long-enough-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)

	_, err = controller.Login(context.Background(), &LoginRequest{
		Email:    "login@dtu.ac.in",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = controller.Login(context.Background(), &LoginRequest{
		Email:    "nobody@dtu.ac.in",
		Password: "long-enough-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
