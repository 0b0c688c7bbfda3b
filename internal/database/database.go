package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"eris-api/internal/config"
)

// Row is a single result row keyed by column name, in the shape it will be
// serialized to JSON.
type Row = map[string]any

// Database wraps the shared SQL connection pool. All query execution goes
// through Execute; callers never manage connections directly.
type Database struct {
	DB *sql.DB
}

// New opens a connection pool against the configured Postgres instance and
// verifies it with a ping.
func New(cfg *config.DatabaseConfig) (*Database, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Wrap adapts an existing pool (used by the test harness).
func Wrap(db *sql.DB) *Database {
	return &Database{DB: db}
}

// Close closes the connection pool.
func (d *Database) Close() error {
	return d.DB.Close()
}

// Execute runs a parameterized query and returns the result set as ordered
// row mappings. Parameters are always bound positionally; driver byte slices
// are normalized to strings so rows marshal cleanly to JSON.
func (d *Database) Execute(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := []Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return result, nil
}

// ExecuteRow runs Execute and returns the first row, or sql.ErrNoRows when
// the result set is empty.
func (d *Database) ExecuteRow(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := d.Execute(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return rows[0], nil
}

// HealthCheck performs a bounded ping against the pool.
func (d *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}
