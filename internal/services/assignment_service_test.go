package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"assignments/internal/models"
	"assignments/internal/repositories"
	"assignments/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAssignmentStore is a mock implementation of repositories.AssignmentStore
type MockAssignmentStore struct {
	mock.Mock
}

func (m *MockAssignmentStore) Create(ctx context.Context, assignment *models.Assignment) (int, error) {
	args := m.Called(ctx, assignment)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentStore) ReadAll(ctx context.Context) ([]models.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) ReadOne(ctx context.Context, id int) (*models.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) Update(ctx context.Context, id int, assignment *models.Assignment) error {
	args := m.Called(ctx, id, assignment)
	return args.Error(0)
}

func (m *MockAssignmentStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAssignmentEvent(body map[string]interface{}) error {
	args := m.Called(body)
	return args.Error(0)
}

func TestAssignmentService_Create_DefaultsCreationDate(t *testing.T) {
	store := new(MockAssignmentStore)
	service := services.NewAssignmentService(store, nil)

	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Assignment")).Return(7, nil).Once()

	before := time.Now().UTC()
	created, err := service.Create(context.Background(), &models.Assignment{Title: "Report", Status: "Pending"})
	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.False(t, created.CreationDate.IsZero())
	assert.False(t, created.CreationDate.Before(before))
	store.AssertExpectations(t)
}

func TestAssignmentService_Create_KeepsSuppliedCreationDate(t *testing.T) {
	store := new(MockAssignmentStore)
	service := services.NewAssignmentService(store, nil)

	supplied := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Assignment")).Return(1, nil).Once()

	created, err := service.Create(context.Background(), &models.Assignment{Title: "Report", CreationDate: supplied})
	assert.NoError(t, err)
	assert.Equal(t, supplied, created.CreationDate)
	store.AssertExpectations(t)
}

func TestAssignmentService_Update_PartialMerge(t *testing.T) {
	store := new(MockAssignmentStore)
	service := services.NewAssignmentService(store, nil)

	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Assignment{
		ID:           1,
		Title:        "Report",
		Description:  "Original",
		CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      &due,
		Status:       "Pending",
	}

	store.On("ReadOne", mock.Anything, 1).Return(existing, nil).Once()
	store.On("Update", mock.Anything, 1, mock.MatchedBy(func(a *models.Assignment) bool {
		// Empty title leaves the stored value; description is overwritten;
		// a nil due date clears unconditionally; creation date is untouched.
		return a.Title == "Report" &&
			a.Description == "X" &&
			a.Status == "Pending" &&
			a.DueDate == nil &&
			a.CreationDate.Equal(existing.CreationDate)
	})).Return(nil).Once()

	err := service.Update(context.Background(), 1, services.AssignmentUpdate{
		Title:       "",
		Description: "X",
		DueDate:     nil,
	})
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAssignmentService_Update_NotFound(t *testing.T) {
	store := new(MockAssignmentStore)
	service := services.NewAssignmentService(store, nil)

	store.On("ReadOne", mock.Anything, 99).Return(nil, repositories.ErrNotFound).Once()

	err := service.Update(context.Background(), 99, services.AssignmentUpdate{Title: "T"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Update")
}

func TestAssignmentService_Update_RaceSurfacesNotFound(t *testing.T) {
	store := new(MockAssignmentStore)
	service := services.NewAssignmentService(store, nil)

	// A delete landing between the read and the write shows up as the
	// mutation's own not-found signal, never a silent lost update.
	store.On("ReadOne", mock.Anything, 1).Return(&models.Assignment{ID: 1, Title: "Report"}, nil).Once()
	store.On("Update", mock.Anything, 1, mock.Anything).Return(repositories.ErrNotFound).Once()

	err := service.Update(context.Background(), 1, services.AssignmentUpdate{Title: "New"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	store.AssertExpectations(t)
}

func TestAssignmentService_Delete(t *testing.T) {
	store := new(MockAssignmentStore)
	service := services.NewAssignmentService(store, nil)

	store.On("Delete", mock.Anything, 1).Return(nil).Once()
	assert.NoError(t, service.Delete(context.Background(), 1))

	store.On("Delete", mock.Anything, 99).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.Delete(context.Background(), 99), repositories.ErrNotFound)
	store.AssertExpectations(t)
}

func TestAssignmentService_PublishesLifecycleEvents(t *testing.T) {
	store := new(MockAssignmentStore)
	events := new(MockEventPublisher)
	service := services.NewAssignmentService(store, events)

	store.On("Create", mock.Anything, mock.Anything).Return(1, nil).Once()
	events.On("PublishAssignmentEvent", mock.MatchedBy(func(body map[string]interface{}) bool {
		return body["action"] == "created" && body["assignment_id"] == 1 && body["event_id"] != ""
	})).Return(nil).Once()

	_, err := service.Create(context.Background(), &models.Assignment{Title: "Report"})
	assert.NoError(t, err)

	store.On("Delete", mock.Anything, 1).Return(nil).Once()
	events.On("PublishAssignmentEvent", mock.MatchedBy(func(body map[string]interface{}) bool {
		return body["action"] == "deleted"
	})).Return(nil).Once()

	assert.NoError(t, service.Delete(context.Background(), 1))
	events.AssertExpectations(t)
}

func TestAssignmentService_PublishFailureDoesNotFailRequest(t *testing.T) {
	store := new(MockAssignmentStore)
	events := new(MockEventPublisher)
	service := services.NewAssignmentService(store, events)

	store.On("Create", mock.Anything, mock.Anything).Return(1, nil).Once()
	events.On("PublishAssignmentEvent", mock.Anything).Return(fmt.Errorf("broker unavailable")).Once()

	created, err := service.Create(context.Background(), &models.Assignment{Title: "Report"})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	events.AssertExpectations(t)
}
