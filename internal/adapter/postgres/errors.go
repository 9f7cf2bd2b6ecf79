package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/formabase/formabase-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The conflict
// argument is the sentinel a unique violation maps to — different tables
// express different invariants (duplicate name, duplicate key, duplicate
// edge pair), so each repository picks its own.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
func MapError(err error, entity, ref string, conflict error) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, ref, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if conflict == nil {
				conflict = domain.ErrDuplicateName
			}
			return fmt.Errorf("%s %s: %w", entity, ref, conflict)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrValidation)
		case "08000", "08003", "08006", "57P01", "57P02", "57P03":
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrStorageUnavailable)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, ref, err)
}
