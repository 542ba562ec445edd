package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Validator checks a single proposed value. A nil error accepts the value.
// Implementations are stateless and never modify the value.
type Validator interface {
	Check(value any) error
}

// ValidationError represents a single field rejection with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Err               error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Err }

// NewValidationError describes err as a rejection of field. Translation
// metadata is taken from err when it implements Translatable.
func NewValidationError(field string, err error) ValidationError {
	ve := ValidationError{
		Field:          field,
		Message:        err.Error(),
		TranslationKey: "validation.invalid",
		Err:            err,
	}

	var tr Translatable
	if errors.As(err, &tr) {
		ve.TranslationKey = tr.TranslationKey()
		ve.TranslationValues = tr.TranslationValues()
		// The innermost rejection message, without field prefixes added by wrappers.
		if inner, ok := tr.(error); ok {
			ve.Message = inner.Error()
		}
	}
	if ve.TranslationValues == nil {
		ve.TranslationValues = map[string]any{}
	}
	ve.TranslationValues["field"] = field

	return ve
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual rejections to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ErrorOrNil returns nil for an empty collection so callers can return it directly.
func (ve ValidationErrors) ErrorOrNil() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// IsRejection reports whether err is a per-value rejection rather than a
// configuration problem.
func IsRejection(err error) bool {
	return errors.Is(err, ErrRejected)
}
