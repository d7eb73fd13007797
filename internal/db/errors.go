package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrNoRows is returned when a query returns no rows
	ErrNoRows = errors.New("no rows in result set")

	// ErrDuplicate is returned when an insert collides with an existing row.
	ErrDuplicate = errors.New("duplicate row")
)

// IsNoRows returns true if the error indicates no rows were found.
// Works with pgx, database/sql, and the package's own ErrNoRows.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}
