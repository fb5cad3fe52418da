package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
//
// ref names the resource being operated on ("topic rustlang", "post <id>")
// and only appears in the wrapped message.
func MapError(err error, ref string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", ref, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation (duplicate slug raced past the pre-check)
			return fmt.Errorf("%s: %w", ref, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation (parent row vanished mid-write)
			return fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", ref, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context, surfaces as a storage failure.
	return fmt.Errorf("%s: %w", ref, err)
}
