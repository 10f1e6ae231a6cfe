package repository

// GenericRepository gives every entity the shared CRUD surface. Delete is a
// soft delete (is_deleted = 1) and Restore reverses it; rows are never
// removed through this interface.
type GenericRepository[T any] interface {
	Create(entity *T) error
	FindByID(id uint) (*T, error)
	FindAll(includeDeleted bool) ([]T, error)
	Update(entity *T) error
	Delete(id uint) error
	Restore(id uint) error
}
