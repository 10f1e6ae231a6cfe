package repository

import (
	"errors"

	"Shelved/internal/models"

	"gorm.io/gorm"
)

type ShelfRepository interface {
	GenericRepository[models.Shelf]
	FindForList(systemID *uint, includeDeleted bool) ([]models.Shelf, error)
	LabelExists(systemID uint, label string, excludeID uint) (bool, error)
	FindByLocation(systemCode string, shelfLabel string) (*models.Shelf, error)
	DeleteCascade(id uint) error
}

type ShelfRepositoryImpl[T models.Shelf] struct {
	GenericRepository[models.Shelf]
	db *gorm.DB
}

func NewShelfRepository(db *gorm.DB) ShelfRepository {
	return &ShelfRepositoryImpl[models.Shelf]{
		GenericRepository: NewGenericRepository[models.Shelf](db),
		db:                db,
	}
}

func (r *ShelfRepositoryImpl[T]) FindForList(systemID *uint, includeDeleted bool) ([]models.Shelf, error) {
	var shelves []models.Shelf
	query := r.db
	if !includeDeleted {
		query = query.Where("is_deleted = 0")
	}
	if systemID != nil {
		query = query.Where("system_id = ?", *systemID)
	}
	err := query.Order("system_id, ordinal").Find(&shelves).Error
	return shelves, err
}

func (r *ShelfRepositoryImpl[T]) LabelExists(systemID uint, label string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Shelf{}).
		Where("system_id = ? AND label = ? AND id <> ?", systemID, label, excludeID).
		Count(&count).Error
	return count > 0, err
}

// FindByLocation resolves a system code + shelf label pair to the live shelf
// row, as selected from the catalog's location dropdown.
func (r *ShelfRepositoryImpl[T]) FindByLocation(systemCode string, shelfLabel string) (*models.Shelf, error) {
	var shelf models.Shelf
	err := r.db.
		Joins("JOIN systems ON systems.id = shelves.system_id").
		Where("systems.code = ? AND shelves.label = ? AND shelves.is_deleted = 0", systemCode, shelfLabel).
		First(&shelf).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shelf, nil
}

func (r *ShelfRepositoryImpl[T]) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Shelf{}).Where("id = ?", id).Update("is_deleted", 1).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).
			Where("shelf_id = ? AND is_deleted = 0", id).
			Update("is_deleted", 1).Error
	})
}
