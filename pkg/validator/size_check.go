package validator

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// SizeCheck accepts strings, sequences and maps shorter than an exclusive
// maximum. String length is counted in runes.
type SizeCheck struct {
	max int
}

// NewSizeCheck builds a size check. A zero maximum counts as missing.
func NewSizeCheck(max int) (*SizeCheck, error) {
	switch {
	case max == 0:
		return nil, fmt.Errorf("%w: size check needs a maximum", ErrMissingParameter)
	case max < 0:
		return nil, fmt.Errorf("%w: size maximum must be positive, got %d", ErrInvalidParameter, max)
	}
	return &SizeCheck{max: max}, nil
}

// MaxSize is NewSizeCheck for constant maximums. It panics on a
// non-positive maximum.
func MaxSize(max int) *SizeCheck {
	c, err := NewSizeCheck(max)
	if err != nil {
		panic(err)
	}
	return c
}

// Max returns the exclusive maximum length.
func (c *SizeCheck) Max() int { return c.max }

func (c *SizeCheck) String() string { return fmt.Sprintf("size(<%d)", c.max) }

func (c *SizeCheck) Check(value any) error {
	n, ok := length(value)
	if !ok {
		return &TypeMismatchError{Expected: "sized", Actual: typeName(value)}
	}
	if n >= c.max {
		return &SizeExceededError{Max: c.max, ActualLen: n}
	}
	return nil
}

func (c *SizeCheck) requires() category { return catSized }

func length(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}
