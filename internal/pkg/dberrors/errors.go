package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// IsUndefinedTableError checks if the error is a PostgreSQL undefined_table
// error (42P01). The snapshot loader uses it to distinguish "the dataset
// pipeline never populated this database" from transient query failures.
func IsUndefinedTableError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
