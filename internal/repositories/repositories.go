// Package repositories holds the sqlx-backed data access layer. Every query is
// logged on one line with its arguments and outcome.
package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avelasco/gymtrack/internal/logger"
)

// uniqueViolation is the postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique-index violation.
// Duplicate-name checks race between check and insert; the unique index is the
// source of truth and its violation maps to the same conflict response.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// logQuery logs a query collapsed to a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
