package repository

import (
	"errors"

	"Shelved/internal/models"

	"gorm.io/gorm"
)

type SystemRepository interface {
	GenericRepository[models.System]
	FindByCode(code string) (*models.System, error)
	CodeExists(code string, excludeID uint) (bool, error)
	// DeleteCascade soft-deletes the system, its shelves, and the items on
	// those shelves in one transaction. The original backend does this with
	// database triggers; here it is an explicit cascade.
	DeleteCascade(id uint) error
}

type SystemRepositoryImpl[T models.System] struct {
	GenericRepository[models.System]
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) SystemRepository {
	return &SystemRepositoryImpl[models.System]{
		GenericRepository: NewGenericRepository[models.System](db),
		db:                db,
	}
}

func (r *SystemRepositoryImpl[T]) FindByCode(code string) (*models.System, error) {
	var system models.System
	err := r.db.Where("code = ?", code).First(&system).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &system, nil
}

func (r *SystemRepositoryImpl[T]) CodeExists(code string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.System{}).
		Where("code = ? AND id <> ?", code, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *SystemRepositoryImpl[T]) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.System{}).Where("id = ?", id).Update("is_deleted", 1).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Item{}).
			Where("shelf_id IN (?) AND is_deleted = 0",
				tx.Model(&models.Shelf{}).Select("id").Where("system_id = ?", id)).
			Update("is_deleted", 1).Error; err != nil {
			return err
		}
		return tx.Model(&models.Shelf{}).
			Where("system_id = ? AND is_deleted = 0", id).
			Update("is_deleted", 1).Error
	})
}
