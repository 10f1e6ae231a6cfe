package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Shelved/internal/models"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)

	user := &models.User{Email: "ana@b.si", Name: "Ana", Role: models.RoleUser, PasswordHash: "x", Active: 1}
	assert.NoError(t, userRepo.Create(user))
	assert.NotZero(t, user.ID)

	byEmail, err := userRepo.FindByEmail("ana@b.si")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := userRepo.FindByEmail("ghost@b.si")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)

	assert.NoError(t, userRepo.Create(&models.User{Email: "ana@b.si", Name: "Ana", Role: models.RoleUser, PasswordHash: "x"}))
	err := userRepo.Create(&models.User{Email: "ana@b.si", Name: "Other", Role: models.RoleUser, PasswordHash: "y"})
	assert.Error(t, err)
}

func TestUserRepository_DeleteIsHard(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)

	user := &models.User{Email: "ana@b.si", Name: "Ana", Role: models.RoleUser, PasswordHash: "x"}
	assert.NoError(t, userRepo.Create(user))
	assert.NoError(t, userRepo.Delete(user.ID))

	found, err := userRepo.FindByID(user.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	var count int64
	db.Table("users").Count(&count)
	assert.Equal(t, int64(0), count)
}
