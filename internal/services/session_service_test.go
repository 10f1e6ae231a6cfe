package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Shelved/internal/apierror"
	"Shelved/internal/config"
	"Shelved/internal/models"
)

func sessionConfig() *config.Configuration {
	return &config.Configuration{
		Session: config.SessionConfig{Secret: "test-secret", TTLMinutes: 240},
	}
}

func activeUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := HashPassword("longenough")
	assert.NoError(t, err)
	level := 3
	return &models.User{
		ID:                5,
		Email:             "ana@b.si",
		Name:              "Ana",
		Role:              models.RoleUser,
		PasswordHash:      hash,
		MaxClearanceLevel: &level,
		Active:            1,
	}
}

func TestSessionService_LoginRoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewSessionService(userRepo, sessionConfig())
	userRepo.On("FindByEmail", "ana@b.si").Return(activeUser(t), nil)

	user, token, err := svc.Login(" Ana@B.si ", "longenough")
	assert.NoError(t, err)
	assert.Equal(t, "ana@b.si", user.Email)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, 3, *claims.MaxClearance())
}

func TestSessionService_LoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewSessionService(userRepo, sessionConfig())
	userRepo.On("FindByEmail", "ana@b.si").Return(activeUser(t), nil)

	_, _, err := svc.Login("ana@b.si", "nope")

	assert.Error(t, err)
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestSessionService_LoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewSessionService(userRepo, sessionConfig())
	userRepo.On("FindByEmail", "ghost@b.si").Return(nil, nil)

	_, _, err := svc.Login("ghost@b.si", "whatever")

	assert.Error(t, err)
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestSessionService_LoginDisabledAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewSessionService(userRepo, sessionConfig())
	disabled := activeUser(t)
	disabled.Active = 0
	userRepo.On("FindByEmail", "ana@b.si").Return(disabled, nil)

	_, _, err := svc.Login("ana@b.si", "longenough")

	assert.Error(t, err)
	assert.Equal(t, 403, apierror.StatusOf(err))
}

func TestSessionService_ParseRejectsGarbage(t *testing.T) {
	svc := NewSessionService(new(MockUserRepository), sessionConfig())

	_, err := svc.Parse("not.a.token")

	assert.Error(t, err)
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestSessionService_ParseRejectsWrongSecret(t *testing.T) {
	userRepo := new(MockUserRepository)
	signer := NewSessionService(userRepo, sessionConfig())
	userRepo.On("FindByEmail", "ana@b.si").Return(activeUser(t), nil)
	_, token, err := signer.Login("ana@b.si", "longenough")
	assert.NoError(t, err)

	other := NewSessionService(userRepo, &config.Configuration{
		Session: config.SessionConfig{Secret: "different", TTLMinutes: 240},
	})
	_, err = other.Parse(token)

	assert.Error(t, err)
}

func TestClaims_MaxClearance(t *testing.T) {
	level := 2

	var nilClaims *Claims
	assert.Nil(t, nilClaims.MaxClearance())

	admin := &Claims{Role: models.RoleAdmin, MaxClearanceLevel: &level}
	assert.Nil(t, admin.MaxClearance())

	user := &Claims{Role: models.RoleUser, MaxClearanceLevel: &level}
	assert.Equal(t, 2, *user.MaxClearance())

	unlimited := &Claims{Role: models.RoleUser}
	assert.Nil(t, unlimited.MaxClearance())
}
