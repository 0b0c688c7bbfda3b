// Package repository implements the data access for the three assessment
// resources on top of the shared row executor. All statements bind
// parameters positionally; identifiers come only from the schema
// allow-lists.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eris-api/internal/schema"
)

// ErrNotFound is returned when a requested identity does not exist.
var ErrNotFound = errors.New("record not found")

func selectAllQuery(r *schema.Resource) string {
	return fmt.Sprintf(`SELECT * FROM %s ORDER BY %s`, pq.QuoteIdentifier(r.Table), r.OrderBy)
}

func selectByKeyQuery(r *schema.Resource) string {
	return fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`,
		pq.QuoteIdentifier(r.Table), pq.QuoteIdentifier(r.Key))
}

func selectByForeignKeyQuery(r *schema.Resource) string {
	return fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1 ORDER BY %s`,
		pq.QuoteIdentifier(r.Table), pq.QuoteIdentifier(r.ForeignKey), r.OrderBy)
}

func insertQuery(r *schema.Resource, fields []schema.Field) (string, []any) {
	cols := make([]string, len(fields))
	holes := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		cols[i] = pq.QuoteIdentifier(f.Column.Name)
		holes[i] = fmt.Sprintf("$%d", i+1)
		args[i] = f.Value
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		pq.QuoteIdentifier(r.Table),
		strings.Join(cols, ", "),
		strings.Join(holes, ", "),
		pq.QuoteIdentifier(r.Key),
	)
	return query, args
}

func updateQuery(r *schema.Resource, id int64, fields []schema.Field) (string, []any) {
	assignments := make([]string, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		assignments[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(f.Column.Name), i+1)
		args = append(args, f.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
		pq.QuoteIdentifier(r.Table),
		strings.Join(assignments, ", "),
		pq.QuoteIdentifier(r.Key),
		len(fields)+1,
	)
	return query, args
}
