package repositories_test

import (
	"context"
	"testing"
	"time"

	"assignments/internal/models"
	"assignments/internal/repositories"

	"github.com/stretchr/testify/assert"
)

var (
	conformanceCreated = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	conformanceDue     = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

// assertStoreConformance runs one CRUD scenario against an AssignmentStore.
// Both variants must pass it unchanged; it is what keeps the two
// implementations from drifting apart behaviorally.
func assertStoreConformance(t *testing.T, store repositories.AssignmentStore) {
	t.Helper()
	ctx := context.Background()

	due := conformanceDue
	id, err := store.Create(ctx, &models.Assignment{
		Title:        "Report",
		Description:  "Quarterly report",
		CreationDate: conformanceCreated,
		DueDate:      &due,
		Status:       "Pending",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, id, "first record should receive id 1")

	all, err := store.ReadAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Report", all[0].Title)

	one, err := store.ReadOne(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Report", one.Title)
	assert.Equal(t, "Quarterly report", one.Description)
	assert.Equal(t, "Pending", one.Status)
	assert.NotNil(t, one.DueDate)
	assert.True(t, one.DueDate.Equal(conformanceDue))

	one.Status = "Done"
	one.DueDate = nil
	assert.NoError(t, store.Update(ctx, id, one))

	updated, err := store.ReadOne(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Done", updated.Status)
	assert.Nil(t, updated.DueDate)

	assert.NoError(t, store.Delete(ctx, id))

	_, err = store.ReadOne(ctx, id)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, id), repositories.ErrNotFound)
}
