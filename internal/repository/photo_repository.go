package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eris-api/internal/database"
	"eris-api/internal/schema"
)

// PhotoRepository handles photo metadata database operations.
type PhotoRepository struct {
	db *database.Database
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *database.Database) *PhotoRepository {
	return &PhotoRepository{db: db}
}

const photoColumns = `"PhotoID", "AssessmentID", "FilePath", "AssociatedMeasurement"`

// List returns photo metadata ordered by descending identity, optionally
// restricted to one assessment. Only metadata is served, never image bytes.
func (r *PhotoRepository) List(ctx context.Context, assessmentID *int64) ([]database.Row, error) {
	table := pq.QuoteIdentifier(schema.Photo.Table)

	var (
		rows []database.Row
		err  error
	)
	if assessmentID != nil {
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE "AssessmentID" = $1 ORDER BY %s`,
			photoColumns, table, schema.Photo.OrderBy)
		rows, err = r.db.Execute(ctx, query, *assessmentID)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
			photoColumns, table, schema.Photo.OrderBy)
		rows, err = r.db.Execute(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return rows, nil
}

// Get returns the photo row with the given identity, or ErrNotFound.
func (r *PhotoRepository) Get(ctx context.Context, id int64) (database.Row, error) {
	row, err := r.db.ExecuteRow(ctx, selectByKeyQuery(schema.Photo), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return row, nil
}

// Create inserts a photo metadata row and reads it back by its generated
// identity.
func (r *PhotoRepository) Create(ctx context.Context, fields []schema.Field) (database.Row, error) {
	query, args := insertQuery(schema.Photo, fields)

	var id int64
	if err := r.db.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return r.Get(ctx, id)
}
