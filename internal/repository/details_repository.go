package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eris-api/internal/database"
	"eris-api/internal/schema"
)

// DetailsRepository handles AssessmentDetails database operations.
type DetailsRepository struct {
	db *database.Database
}

// NewDetailsRepository creates a new details repository
func NewDetailsRepository(db *database.Database) *DetailsRepository {
	return &DetailsRepository{db: db}
}

// List returns detail rows ordered by ascending detail identity, optionally
// restricted to one assessment.
func (r *DetailsRepository) List(ctx context.Context, assessmentID *int64) ([]database.Row, error) {
	var (
		rows []database.Row
		err  error
	)
	if assessmentID != nil {
		rows, err = r.db.Execute(ctx, selectByForeignKeyQuery(schema.Details), *assessmentID)
	} else {
		rows, err = r.db.Execute(ctx, selectAllQuery(schema.Details))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list details: %w", err)
	}
	return rows, nil
}

// Get returns the detail row with the given identity, or ErrNotFound.
func (r *DetailsRepository) Get(ctx context.Context, id int64) (database.Row, error) {
	row, err := r.db.ExecuteRow(ctx, selectByKeyQuery(schema.Details), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get details: %w", err)
	}
	return row, nil
}

// Create inserts exactly the given columns and reads the created row back by
// its generated identity.
func (r *DetailsRepository) Create(ctx context.Context, fields []schema.Field) (database.Row, error) {
	query, args := insertQuery(schema.Details, fields)

	var id int64
	if err := r.db.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create details: %w", err)
	}

	return r.Get(ctx, id)
}

// Update writes exactly the given columns, leaving the rest unchanged, and
// reads the row back. Returns ErrNotFound when the identity does not exist.
func (r *DetailsRepository) Update(ctx context.Context, id int64, fields []schema.Field) (database.Row, error) {
	query, args := updateQuery(schema.Details, id, fields)
	if _, err := r.db.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update details: %w", err)
	}

	return r.Get(ctx, id)
}
