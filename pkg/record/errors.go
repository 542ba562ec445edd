package record

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

var (
	// ErrArityMismatch matches ArityMismatchError with errors.Is.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrDuplicateValue matches DuplicateValueError with errors.Is.
	ErrDuplicateValue = errors.New("duplicate value")
)

// ArityMismatchError reports a construction that did not supply exactly one
// value per declared field.
type ArityMismatchError struct {
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("expected %d values, got %d", e.Expected, e.Actual)
}

func (e *ArityMismatchError) Is(target error) bool {
	return target == validator.ErrRejected || target == ErrArityMismatch
}

func (e *ArityMismatchError) TranslationKey() string { return "validation.arity" }

func (e *ArityMismatchError) TranslationValues() map[string]any {
	return map[string]any{"expected": e.Expected, "actual": e.Actual}
}

// DuplicateValueError reports a field given both a positional and a keyword
// value.
type DuplicateValueError struct {
	Field string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("field %q given both positionally and by name", e.Field)
}

func (e *DuplicateValueError) Is(target error) bool {
	return target == validator.ErrRejected || target == ErrDuplicateValue
}

func (e *DuplicateValueError) TranslationKey() string { return "validation.duplicate_value" }

func (e *DuplicateValueError) TranslationValues() map[string]any {
	return map[string]any{"field": e.Field}
}
