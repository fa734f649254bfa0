package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err when it comes from
// PostgreSQL, or an empty string otherwise.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isStockNotFound reports whether err means the addressed holding does not
// exist: no row matched, or the id could not even be parsed as a UUID.
func isStockNotFound(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}

	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}
