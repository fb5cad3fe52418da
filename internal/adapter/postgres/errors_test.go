package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/forumhq/discuss-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if err := MapError(nil, "topic rustlang"); err != nil {
		t.Errorf("nil error should map to nil, got %v", err)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "topic rustlang")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("pgx.ErrNoRows should map to ErrNotFound, got %v", err)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrAlreadyExists},
		{"23503", domain.ErrNotFound},
		{"23514", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			err := MapError(&pgconn.PgError{Code: tt.code}, "topic rustlang")
			if !errors.Is(err, tt.want) {
				t.Errorf("code %s: got %v, want %v", tt.code, err, tt.want)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	err := MapError(context.Canceled, "post 42")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("context.Canceled should pass through, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("context errors must not be mistaken for NotFound")
	}

	err = MapError(context.DeadlineExceeded, "post 42")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("context.DeadlineExceeded should pass through, got %v", err)
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := MapError(cause, "comment 7")
	if !errors.Is(err, cause) {
		t.Error("unknown errors should stay unwrappable to the cause")
	}
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrValidation} {
		if errors.Is(err, sentinel) {
			t.Errorf("unknown error must not map to %v", sentinel)
		}
	}
}
