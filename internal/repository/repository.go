// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Conventions shared by every repository:
//   - queries run on the shared pgxpool
//   - inserts and updates use RETURNING so callers get the stored row back,
//     including database-maintained timestamps
//   - partial updates use COALESCE so nil patch fields leave columns untouched
//   - row-level errors are tagged with the table name (see tableError) so the
//     error funnel can name the entity in "not found" responses
package repository

import (
	"fmt"
	"strings"
)

// ListFilter carries the common list parameters. An empty Status means no
// status filter. Limit must be set by the caller; repositories do not apply
// a default page size.
type ListFilter struct {
	Status string
	Limit  int
	Offset int
}

// buildListQuery appends the optional status filter and paging clauses to a
// base SELECT, returning the final SQL and its positional arguments.
//
// All listable tables share the status and created_at columns, so ordering
// newest-first works uniformly.
func buildListQuery(base string, filter ListFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)

	args := make([]any, 0, 3)
	if filter.Status != "" {
		args = append(args, filter.Status)
		sb.WriteString(" WHERE status = $1")
	}
	args = append(args, filter.Limit, filter.Offset)
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return sb.String(), args
}

// tableError tags a database error with the table it came from. The sqlerr
// handler looks for the "table:<name>:" marker when translating ErrNoRows
// into a 404 that names the entity.
func tableError(table string, err error) error {
	return fmt.Errorf("table:%s: %w", table, err)
}
