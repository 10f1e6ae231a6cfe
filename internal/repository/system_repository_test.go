package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Shelved/internal/models"
)

func TestSystemRepository_FindByCode(t *testing.T) {
	db := setupTestDB(t)
	systemRepo := NewSystemRepository(db)
	seedLocation(t, db, "SYS1", "A-1")

	found, err := systemRepo.FindByCode("SYS1")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "SYS1", found.Code)

	missing, err := systemRepo.FindByCode("GHOST")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSystemRepository_CodeExists(t *testing.T) {
	db := setupTestDB(t)
	systemRepo := NewSystemRepository(db)
	system, _ := seedLocation(t, db, "SYS1", "A-1")

	exists, err := systemRepo.CodeExists("SYS1", 0)
	assert.NoError(t, err)
	assert.True(t, exists)

	// The row itself does not conflict with its own update.
	exists, err = systemRepo.CodeExists("SYS1", system.ID)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestSystemRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	systemRepo := NewSystemRepository(db)
	system, shelf := seedLocation(t, db, "SYS1", "A-1")
	item := seedItem(t, db, "bearing", &shelf.ID, 1)

	other, otherShelf := seedLocation(t, db, "SYS2", "B-1")
	otherItem := seedItem(t, db, "gauge", &otherShelf.ID, 1)

	assert.NoError(t, systemRepo.DeleteCascade(system.ID))

	var got models.System
	assert.NoError(t, db.First(&got, system.ID).Error)
	assert.Equal(t, 1, got.IsDeleted)

	var gotShelf models.Shelf
	assert.NoError(t, db.First(&gotShelf, shelf.ID).Error)
	assert.Equal(t, 1, gotShelf.IsDeleted)

	var gotItem models.Item
	assert.NoError(t, db.First(&gotItem, item.ID).Error)
	assert.Equal(t, 1, gotItem.IsDeleted)

	// The other system is untouched.
	var gotOther models.System
	assert.NoError(t, db.First(&gotOther, other.ID).Error)
	assert.Equal(t, 0, gotOther.IsDeleted)
	var gotOtherItem models.Item
	assert.NoError(t, db.First(&gotOtherItem, otherItem.ID).Error)
	assert.Equal(t, 0, gotOtherItem.IsDeleted)
}
