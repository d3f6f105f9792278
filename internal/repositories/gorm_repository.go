package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository is a generic GORM-backed store for any entity with an integer
// "id" column. Every operation persists immediately; there is no batching.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a Repository for the entity type T.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// GetAll retrieves every entity of type T.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	entities := []T{}
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}
	return entities, nil
}

// GetByID retrieves a single entity by id, ErrNotFound when absent.
func (r *Repository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record by ID %d: %w", id, err)
	}
	return &entity, nil
}

// Add persists a new entity. The store populates its identifier field.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update overwrites an existing entity. GORM's Save does not report
// ErrRecordNotFound for an update that matched nothing, so the affected-row
// count is the not-found signal; this also makes the mutation itself
// authoritative when racing a concurrent delete.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	res := r.db.WithContext(ctx).Save(entity)
	if res.Error != nil {
		return fmt.Errorf("failed to update record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the entity with the given id. Deleting a missing row is a
// silent no-op at the mapping layer, so the affected-row count is checked.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
