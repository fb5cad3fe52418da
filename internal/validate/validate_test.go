package validate

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

type sample struct {
	Name string
	Bio  string
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()
	s := sample{Name: "gopher", Bio: "writes Go"}

	err := Struct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Bio, validation.Required),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_CollectsAllFields(t *testing.T) {
	t.Parallel()
	s := sample{}

	err := Struct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Bio, validation.Required),
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(ve.Errors))
	}
	// Sorted by field name.
	if ve.Errors[0].Field != "Bio" || ve.Errors[1].Field != "Name" {
		t.Errorf("unexpected field order: %q, %q", ve.Errors[0].Field, ve.Errors[1].Field)
	}
}

type ownedSample struct {
	OwnerID uuid.UUID `json:"owner_id"`
}

func TestRequiredUUID_ZeroValueFails(t *testing.T) {
	t.Parallel()
	s := ownedSample{}

	err := Struct(&s, validation.Field(&s.OwnerID, RequiredUUID))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for uuid.Nil, got: %v", err)
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "owner_id" {
		t.Fatalf("expected a single owner_id error, got %+v", ve.Errors)
	}
}

func TestRequiredUUID_RealIDPasses(t *testing.T) {
	t.Parallel()
	s := ownedSample{OwnerID: uuid.New()}

	err := Struct(&s, validation.Field(&s.OwnerID, RequiredUUID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
