package validator

import (
	"errors"
	"fmt"
)

// Sentinel roots. Every value rejection matches ErrRejected and every
// construction-time problem matches ErrConfiguration.
var (
	// ErrRejected is matched by every per-value rejection.
	ErrRejected = errors.New("value rejected")

	// ErrConfiguration is matched by every validator or schema construction error.
	ErrConfiguration = errors.New("invalid configuration")
)

// Configuration errors.
var (
	// ErrMissingParameter is returned when a validator is built without a required parameter.
	ErrMissingParameter = fmt.Errorf("%w: missing required validator parameter", ErrConfiguration)

	// ErrInvalidParameter is returned when a validator parameter has the wrong kind or value.
	ErrInvalidParameter = fmt.Errorf("%w: invalid validator parameter", ErrConfiguration)

	// ErrUnknownTypeTag is returned when a type expression names no known type.
	ErrUnknownTypeTag = fmt.Errorf("%w: unknown type tag", ErrConfiguration)

	// ErrIncompatibleChain is returned when a chain can never accept any value,
	// for example a string type check followed by a numeric range check.
	ErrIncompatibleChain = fmt.Errorf("%w: incompatible validator chain", ErrConfiguration)
)

// Rejection kinds, usable with errors.Is.
var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrBelowMinimum    = errors.New("below minimum")
	ErrAboveMaximum    = errors.New("above maximum")
	ErrSizeExceeded    = errors.New("size exceeded")
	ErrNotAllowed      = errors.New("value not allowed")
	ErrPatternMismatch = errors.New("pattern mismatch")
	ErrFormatMismatch  = errors.New("format mismatch")
)

// Translatable is implemented by rejections that can be rendered through a
// message catalog.
type Translatable interface {
	TranslationKey() string
	TranslationValues() map[string]any
}

// TypeMismatchError reports a value whose runtime type is not the expected one.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrRejected || target == ErrTypeMismatch
}

func (e *TypeMismatchError) TranslationKey() string { return "validation.type_mismatch" }

func (e *TypeMismatchError) TranslationValues() map[string]any {
	return map[string]any{"expected": e.Expected, "actual": e.Actual}
}

// BelowMinimumError reports a numeric value smaller than the inclusive minimum.
type BelowMinimumError struct {
	Min    any
	Actual any
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("must be at least %v, got %v", e.Min, e.Actual)
}

func (e *BelowMinimumError) Is(target error) bool {
	return target == ErrRejected || target == ErrBelowMinimum
}

func (e *BelowMinimumError) TranslationKey() string { return "validation.min" }

func (e *BelowMinimumError) TranslationValues() map[string]any {
	return map[string]any{"min": e.Min, "actual": e.Actual}
}

// AboveMaximumError reports a numeric value greater than the inclusive maximum.
type AboveMaximumError struct {
	Max    any
	Actual any
}

func (e *AboveMaximumError) Error() string {
	return fmt.Sprintf("must be at most %v, got %v", e.Max, e.Actual)
}

func (e *AboveMaximumError) Is(target error) bool {
	return target == ErrRejected || target == ErrAboveMaximum
}

func (e *AboveMaximumError) TranslationKey() string { return "validation.max" }

func (e *AboveMaximumError) TranslationValues() map[string]any {
	return map[string]any{"max": e.Max, "actual": e.Actual}
}

// SizeExceededError reports a value whose length reached the exclusive maximum.
type SizeExceededError struct {
	Max       int
	ActualLen int
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("length must be less than %d, got %d", e.Max, e.ActualLen)
}

func (e *SizeExceededError) Is(target error) bool {
	return target == ErrRejected || target == ErrSizeExceeded
}

func (e *SizeExceededError) TranslationKey() string { return "validation.max_length" }

func (e *SizeExceededError) TranslationValues() map[string]any {
	return map[string]any{"max": e.Max, "actual_len": e.ActualLen}
}

// NotAllowedError reports a value outside an allowed set.
type NotAllowedError struct {
	Allowed []any
	Actual  any
}

func (e *NotAllowedError) Error() string {
	return fmt.Sprintf("must be one of %v, got %v", e.Allowed, e.Actual)
}

func (e *NotAllowedError) Is(target error) bool {
	return target == ErrRejected || target == ErrNotAllowed
}

func (e *NotAllowedError) TranslationKey() string { return "validation.in_list" }

func (e *NotAllowedError) TranslationValues() map[string]any {
	return map[string]any{"allowed_values": e.Allowed, "actual": e.Actual}
}

// PatternMismatchError reports a string that does not match a regular expression.
type PatternMismatchError struct {
	Pattern string
	Actual  string
}

func (e *PatternMismatchError) Error() string {
	return fmt.Sprintf("must match pattern %q", e.Pattern)
}

func (e *PatternMismatchError) Is(target error) bool {
	return target == ErrRejected || target == ErrPatternMismatch
}

func (e *PatternMismatchError) TranslationKey() string { return "validation.regex_pattern" }

func (e *PatternMismatchError) TranslationValues() map[string]any {
	return map[string]any{"pattern": e.Pattern, "actual": e.Actual}
}

// FormatMismatchError reports a string that is not in a named format.
type FormatMismatchError struct {
	Format Format
	Actual string
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("must be a valid %s", e.Format)
}

func (e *FormatMismatchError) Is(target error) bool {
	return target == ErrRejected || target == ErrFormatMismatch
}

func (e *FormatMismatchError) TranslationKey() string { return "validation.format" }

func (e *FormatMismatchError) TranslationValues() map[string]any {
	return map[string]any{"format": string(e.Format), "actual": e.Actual}
}

// CustomError wraps a failure returned by a Func validator that did not
// already describe itself as a rejection.
type CustomError struct {
	Name string
	Err  error
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *CustomError) Unwrap() error { return e.Err }

func (e *CustomError) Is(target error) bool { return target == ErrRejected }

func (e *CustomError) TranslationKey() string { return "validation.custom" }

func (e *CustomError) TranslationValues() map[string]any {
	return map[string]any{"name": e.Name, "reason": e.Err.Error()}
}
