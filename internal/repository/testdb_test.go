package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Shelved/database"
	"Shelved/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedLocation creates a system with one shelf and returns both.
func seedLocation(t *testing.T, db *gorm.DB, code, label string) (*models.System, *models.Shelf) {
	t.Helper()
	system := &models.System{Code: code}
	if err := db.Create(system).Error; err != nil {
		t.Fatalf("seed system: %v", err)
	}
	shelf := &models.Shelf{SystemID: system.ID, Label: label, LengthMM: 1000, WidthMM: 400, HeightMM: 300}
	if err := db.Create(shelf).Error; err != nil {
		t.Fatalf("seed shelf: %v", err)
	}
	return system, shelf
}

func seedItem(t *testing.T, db *gorm.DB, name string, shelfID *uint, clearance int) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, Unit: "units", ClearanceLevel: clearance, ShelfID: shelfID}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}
