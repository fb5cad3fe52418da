// Package validate adapts ozzo-validation results to the domain error
// model so services return one consistent *domain.ValidationError shape.
package validate

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// RequiredUUID rejects the zero UUID. validation.Required cannot be used
// here: uuid.UUID is a fixed-size array whose driver.Valuer renders
// uuid.Nil as a non-empty canonical string, so ozzo never sees it as empty.
var RequiredUUID = validation.By(func(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("required")
	}
	return nil
})

// Struct runs validation.ValidateStruct and converts the outcome into a
// *domain.ValidationError with one FieldError per failed field, sorted by
// field name so the output is stable.
func Struct(s any, fields ...*validation.FieldRules) error {
	err := validation.ValidateStruct(s, fields...)
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		// Internal rule failure, not a user input problem.
		return err
	}

	names := make([]string, 0, len(verrs))
	for name := range verrs {
		names = append(names, name)
	}
	sort.Strings(names)

	fieldErrs := make([]domain.FieldError, 0, len(names))
	for _, name := range names {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: name, Message: verrs[name].Error()})
	}
	return &domain.ValidationError{Errors: fieldErrs}
}
