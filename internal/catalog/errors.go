package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidValue marks rejected input values, e.g. a negative stock.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownField marks a field name outside the queryable set.
	ErrUnknownField = errors.New("unknown field")
	// ErrBadComparator marks a comparator not supported for a field.
	ErrBadComparator = errors.New("comparator not supported for field")
	// ErrBadValue marks a clause value whose type does not match its field.
	ErrBadValue = errors.New("value type does not match field")
)

// ValidationError reports which input fields failed which validation rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("validation failed:")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s %s;", k, e.Fields[k]))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}

// newValidationError maps validator field errors into a ValidationError.
func newValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string)
		for _, fieldErr := range validationErrors {
			// fieldErr.Tag() returns "required", "min", etc.
			fields[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
		return &ValidationError{Fields: fields}
	}
	return fmt.Errorf("%w: %v", ErrInvalidValue, err)
}
