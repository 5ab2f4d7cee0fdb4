package service

import (
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newServiceDB(t)

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-unit-test-secre"
	cfg.JWT.ExpireTime = time.Hour

	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newAuthService(t)

	user := &model.User{Name: "Alex", Email: "alex@test.example", Password: "correct-horse-battery"}
	require.NoError(t, s.Register(user))
	assert.NotEqual(t, "correct-horse-battery", user.Password, "password must be stored hashed")

	token, err := s.Login("alex@test.example", "correct-horse-battery")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Viewer, claims.Role)
}

func TestRegisterForcesViewerRole(t *testing.T) {
	s := newAuthService(t)

	user := &model.User{Name: "Eve", Email: "eve@test.example", Password: "password123", Role: model.Admin}
	require.NoError(t, s.Register(user))
	assert.Equal(t, model.Viewer, user.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAuthService(t)

	first := &model.User{Name: "Alex", Email: "alex@test.example", Password: "password123"}
	require.NoError(t, s.Register(first))

	second := &model.User{Name: "Other", Email: "alex@test.example", Password: "password456"}
	assert.ErrorIs(t, s.Register(second), util.ErrEmailRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newAuthService(t)

	user := &model.User{Name: "Alex", Email: "alex@test.example", Password: "password123"}
	require.NoError(t, s.Register(user))

	_, err := s.Login("alex@test.example", "wrong")
	assert.Error(t, err)

	_, err = s.Login("nobody@test.example", "password123")
	assert.Error(t, err)
}

func TestLoginDisabledAccount(t *testing.T) {
	s := newAuthService(t)

	user := &model.User{Name: "Alex", Email: "alex@test.example", Password: "password123"}
	require.NoError(t, s.Register(user))

	user.Disabled = true
	require.NoError(t, s.UserRepo.Update(user))

	_, err := s.Login("alex@test.example", "password123")
	assert.EqualError(t, err, "account disabled")
}
