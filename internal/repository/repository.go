package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the query surface repositories run on. Both *pgxpool.Pool and
// pgx.Tx satisfy it, so a repository can be rebased onto a transaction
// with WithTx when several writes must commit atomically.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IsUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation. Uniqueness invariants are enforced at the
// storage layer, so a concurrent writer losing a check-then-insert race
// surfaces here rather than corrupting state.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key
// constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// itoa keeps dynamic placeholder numbering readable in filter queries.
func itoa(n int) string {
	return strconv.Itoa(n)
}
