// Package gateway is the single data access path for repositories. A Gateway
// speaks in table-scoped queries so the same repository code runs against a
// SQL database through gorm or a hosted PostgREST endpoint.
package gateway

import (
	"context"
	"errors"
)

var (
	// ErrUnfilteredUpdate is returned when Update is called without filters.
	ErrUnfilteredUpdate = errors.New("gateway: update requires at least one filter")
	// ErrInvalidDestination is returned when Select is not given a pointer to a slice.
	ErrInvalidDestination = errors.New("gateway: destination must be a pointer to a slice")
)

type Gateway interface {
	// Select decodes matching rows into dest, a pointer to a slice of row
	// structs. The returned count is the exact total when q.Count is set and
	// zero otherwise.
	Select(ctx context.Context, q *Query, dest any) (int64, error)
	// Insert stores row, a pointer to a row struct, and refreshes it with the
	// stored representation so generated ids are visible to the caller.
	Insert(ctx context.Context, table string, row any) error
	// Update applies values to the rows matched by q and returns how many
	// rows changed.
	Update(ctx context.Context, q *Query, values map[string]any) (int64, error)
	Ping(ctx context.Context) error
}
