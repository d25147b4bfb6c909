package connection

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err is a referential integrity
// failure from either supported driver.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
