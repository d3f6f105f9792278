package repositories

import (
	"context"

	"assignments/internal/models"
)

// AssignmentStore is the capability both persistence variants implement.
// One variant maps the entity through GORM, the other calls named
// server-side routines; callers must not be able to tell them apart.
type AssignmentStore interface {
	// Create persists the assignment and returns the store-assigned id.
	Create(ctx context.Context, assignment *models.Assignment) (int, error)
	// ReadAll returns every assignment, an empty slice when none exist.
	ReadAll(ctx context.Context) ([]models.Assignment, error)
	// ReadOne returns the assignment with the given id, ErrNotFound when absent.
	ReadOne(ctx context.Context, id int) (*models.Assignment, error)
	// Update overwrites all mutable fields of the row with the given id,
	// ErrNotFound when absent.
	Update(ctx context.Context, id int, assignment *models.Assignment) error
	// Delete removes the row with the given id, ErrNotFound when absent.
	Delete(ctx context.Context, id int) error
}
