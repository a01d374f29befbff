package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"pdfshare/internal/repository"
)

// PostgreSQL SQLSTATE codes handled here.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidTextRep      = "22P02"
)

// translate maps driver errors onto repository sentinels, keeping the cause for logs.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
		case codeForeignKeyViolation, codeInvalidTextRep:
			// A share racing a delete, or an id that cannot be a UUID: either way nothing is there.
			return fmt.Errorf("%w: %s", repository.ErrNotFound, pgErr.Code)
		}
	}
	return err
}
