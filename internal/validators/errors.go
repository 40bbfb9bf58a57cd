package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingRequiredFields matches every [*ValidationError].
	ErrMissingRequiredFields = errors.New("missing required fields")
)

// ValidationError lists the JSON names of the required fields that were
// absent or empty, in declaration order.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return ErrMissingRequiredFields.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingRequiredFields
}
