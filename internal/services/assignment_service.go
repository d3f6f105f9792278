package services

import (
	"context"
	"log"
	"time"

	"assignments/internal/models"
	"assignments/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes assignment lifecycle events to the message broker.
type EventPublisher interface {
	PublishAssignmentEvent(body map[string]interface{}) error
}

// AssignmentUpdate carries the caller-supplied fields of a partial update.
// Title, Description, and Status apply only when non-empty; DueDate is
// written through unconditionally, so a nil due date clears the column.
type AssignmentUpdate struct {
	Title       string
	Description string
	Status      string
	DueDate     *time.Time
}

// AssignmentService handles business logic for assignments over whichever
// store variant was selected at wiring time.
type AssignmentService struct {
	store  repositories.AssignmentStore
	events EventPublisher
}

// NewAssignmentService creates a new AssignmentService. A nil publisher
// disables lifecycle events.
func NewAssignmentService(store repositories.AssignmentStore, events EventPublisher) *AssignmentService {
	return &AssignmentService{store: store, events: events}
}

// Create persists a new assignment, defaulting the creation date to now when
// the caller omitted it, and returns the entity with its assigned id.
func (s *AssignmentService) Create(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	if assignment.CreationDate.IsZero() {
		assignment.CreationDate = time.Now().UTC()
	}

	id, err := s.store.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = id

	s.publish("created", id)
	return assignment, nil
}

// GetAll retrieves every assignment; zero rows is an empty slice, not an error.
func (s *AssignmentService) GetAll(ctx context.Context) ([]models.Assignment, error) {
	return s.store.ReadAll(ctx)
}

// GetByID retrieves a single assignment, repositories.ErrNotFound when absent.
func (s *AssignmentService) GetByID(ctx context.Context, id int) (*models.Assignment, error) {
	return s.store.ReadOne(ctx, id)
}

// Update loads the assignment, merges the caller-supplied fields, and
// persists the result. The creation date is carried over untouched. The
// store's own not-found signal is authoritative, so a delete landing between
// the read and the write surfaces as ErrNotFound rather than a lost update.
func (s *AssignmentService) Update(ctx context.Context, id int, update AssignmentUpdate) error {
	assignment, err := s.store.ReadOne(ctx, id)
	if err != nil {
		return err
	}

	if update.Title != "" {
		assignment.Title = update.Title
	}
	if update.Description != "" {
		assignment.Description = update.Description
	}
	if update.Status != "" {
		assignment.Status = update.Status
	}
	assignment.DueDate = update.DueDate

	if err := s.store.Update(ctx, id, assignment); err != nil {
		return err
	}

	s.publish("updated", id)
	return nil
}

// Delete removes the assignment with the given id.
func (s *AssignmentService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publish("deleted", id)
	return nil
}

// publish emits a lifecycle event. Publishing is best-effort: a broker
// failure is logged and never fails the request that triggered it.
func (s *AssignmentService) publish(action string, assignmentID int) {
	if s.events == nil {
		return
	}
	body := map[string]interface{}{
		"event_id":      uuid.New().String(),
		"action":        action,
		"assignment_id": assignmentID,
		"occurred_at":   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishAssignmentEvent(body); err != nil {
		log.Printf("failed to publish assignment %s event: %v", action, err)
	}
}
