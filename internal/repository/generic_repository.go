package repository

import (
	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// FindByID returns the row regardless of its is_deleted flag; callers that
// care about liveness check the flag themselves (restore needs the dead ones).
func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	return &entity, err
}

func (r *GenericRepositoryImpl[T]) FindAll(includeDeleted bool) ([]T, error) {
	var entities []T
	query := r.db
	if !includeDeleted {
		query = query.Where("is_deleted = 0")
	}
	err := query.Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	var entity T
	return r.db.Model(&entity).Where("id = ?", id).Update("is_deleted", 1).Error
}

func (r *GenericRepositoryImpl[T]) Restore(id uint) error {
	var entity T
	return r.db.Model(&entity).Where("id = ?", id).Update("is_deleted", 0).Error
}
