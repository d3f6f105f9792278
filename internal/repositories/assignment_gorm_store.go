package repositories

import (
	"context"

	"assignments/internal/models"

	"gorm.io/gorm"
)

// GormAssignmentStore is the mapped AssignmentStore variant, an adapter over
// the generic Repository.
type GormAssignmentStore struct {
	repo *Repository[models.Assignment]
}

// NewGormAssignmentStore creates the mapped store variant.
func NewGormAssignmentStore(db *gorm.DB) *GormAssignmentStore {
	return &GormAssignmentStore{repo: NewRepository[models.Assignment](db)}
}

// Create persists the assignment and returns the id GORM populated.
func (s *GormAssignmentStore) Create(ctx context.Context, assignment *models.Assignment) (int, error) {
	if err := s.repo.Add(ctx, assignment); err != nil {
		return 0, err
	}
	return assignment.ID, nil
}

// ReadAll retrieves every assignment.
func (s *GormAssignmentStore) ReadAll(ctx context.Context) ([]models.Assignment, error) {
	return s.repo.GetAll(ctx)
}

// ReadOne retrieves a single assignment by id.
func (s *GormAssignmentStore) ReadOne(ctx context.Context, id int) (*models.Assignment, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites all mutable fields of the assignment with the given id.
func (s *GormAssignmentStore) Update(ctx context.Context, id int, assignment *models.Assignment) error {
	assignment.ID = id
	return s.repo.Update(ctx, assignment)
}

// Delete removes the assignment with the given id.
func (s *GormAssignmentStore) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
