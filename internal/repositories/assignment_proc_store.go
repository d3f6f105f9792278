package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"assignments/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// procCallTimeout bounds every routine invocation. Server-side routines can
// be slow, so the window is generous.
const procCallTimeout = 120 * time.Second

// ProcAssignmentStore is the procedural AssignmentStore variant. Each
// operation is a single round trip to a named server-side routine over
// database/sql.
type ProcAssignmentStore struct {
	db *sql.DB
}

// NewProcAssignmentStore creates the procedural store variant.
func NewProcAssignmentStore(db *sql.DB) *ProcAssignmentStore {
	return &ProcAssignmentStore{db: db}
}

// Create invokes create_assignment and converts the returned numeric id to int.
func (s *ProcAssignmentStore) Create(ctx context.Context, assignment *models.Assignment) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, procCallTimeout)
	defer cancel()

	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT create_assignment($1, $2, $3, $4)`,
		assignment.Title, assignment.Description, assignment.DueDate, assignment.Status,
	).Scan(&id)
	if err != nil {
		return 0, s.fail("create_assignment", err)
	}
	return int(id), nil
}

// ReadAll invokes read_all_assignments and materializes the result set into a
// finite slice; the cursor never escapes this call.
func (s *ProcAssignmentStore) ReadAll(ctx context.Context) ([]models.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, procCallTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, creation_date, due_date, status FROM read_all_assignments()`)
	if err != nil {
		return nil, s.fail("read_all_assignments", err)
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.CreationDate, &a.DueDate, &a.Status); err != nil {
			return nil, s.fail("read_all_assignments", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("read_all_assignments", err)
	}
	return assignments, nil
}

// ReadOne invokes read_assignment. A routine reporting no row maps to
// ErrNotFound so callers can tell a miss apart from a provider failure.
func (s *ProcAssignmentStore) ReadOne(ctx context.Context, id int) (*models.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, procCallTimeout)
	defer cancel()

	a := models.Assignment{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT title, description, creation_date, due_date, status FROM read_assignment($1)`, id,
	).Scan(&a.Title, &a.Description, &a.CreationDate, &a.DueDate, &a.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.fail("read_assignment", err)
	}
	return &a, nil
}

// Update invokes update_assignment with the id and all mutable fields. The
// routine reports how many rows it touched, making the mutation itself the
// not-found signal.
func (s *ProcAssignmentStore) Update(ctx context.Context, id int, assignment *models.Assignment) error {
	ctx, cancel := context.WithTimeout(ctx, procCallTimeout)
	defer cancel()

	var affected int64
	err := s.db.QueryRowContext(ctx,
		`SELECT update_assignment($1, $2, $3, $4, $5)`,
		id, assignment.Title, assignment.Description, assignment.DueDate, assignment.Status,
	).Scan(&affected)
	if err != nil {
		return s.fail("update_assignment", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete invokes delete_assignment with the id only. Like Update, the
// routine's affected count distinguishes a miss from success.
func (s *ProcAssignmentStore) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, procCallTimeout)
	defer cancel()

	var affected int64
	err := s.db.QueryRowContext(ctx, `SELECT delete_assignment($1)`, id).Scan(&affected)
	if err != nil {
		return s.fail("delete_assignment", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// fail records the provider diagnostic (code + message for postgres errors)
// and re-wraps the error so the caller always observes the failure.
func (s *ProcAssignmentStore) fail(routine string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		log.Printf("postgres error in %s: code=%s message=%s", routine, pgErr.Code, pgErr.Message)
	} else {
		log.Printf("error in %s: %v", routine, err)
	}
	return fmt.Errorf("%s failed: %w", routine, err)
}
