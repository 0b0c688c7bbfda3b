package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eris-api/internal/database"
	"eris-api/internal/schema"
)

// ProfileRepository handles AssessmentProfile database operations.
type ProfileRepository struct {
	db *database.Database
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// List returns every profile, newest identity first. Clients filter
// client-side; the API does not paginate.
func (r *ProfileRepository) List(ctx context.Context) ([]database.Row, error) {
	rows, err := r.db.Execute(ctx, selectAllQuery(schema.Profile))
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return rows, nil
}

// Get returns the profile with the given identity, or ErrNotFound.
func (r *ProfileRepository) Get(ctx context.Context, id int64) (database.Row, error) {
	row, err := r.db.ExecuteRow(ctx, selectByKeyQuery(schema.Profile), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return row, nil
}

// Create inserts a profile and reads the created row back by its generated
// identity. The two statements are independent round trips, not a
// transaction.
func (r *ProfileRepository) Create(ctx context.Context, fields []schema.Field) (database.Row, error) {
	query, args := insertQuery(schema.Profile, fields)

	var id int64
	if err := r.db.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return r.Get(ctx, id)
}

// Update overwrites the given columns and reads the row back, returning
// ErrNotFound when the identity does not exist.
func (r *ProfileRepository) Update(ctx context.Context, id int64, fields []schema.Field) (database.Row, error) {
	query, args := updateQuery(schema.Profile, id, fields)
	if _, err := r.db.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return r.Get(ctx, id)
}
