package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// OneOfCheck accepts values equal to one of an allowed set. Numbers compare
// by value, so an int64 from a decoded document matches an int constant.
type OneOfCheck struct {
	allowed []any
}

// NewOneOf builds a membership check. An empty set is a configuration error.
func NewOneOf(values ...any) (*OneOfCheck, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: one_of needs at least one value", ErrMissingParameter)
	}
	allowed := make([]any, len(values))
	copy(allowed, values)
	return &OneOfCheck{allowed: allowed}, nil
}

// OneOf is NewOneOf for literal sets. It panics on an empty set.
func OneOf[T comparable](values ...T) *OneOfCheck {
	anyValues := make([]any, len(values))
	for i, v := range values {
		anyValues[i] = v
	}
	c, err := NewOneOf(anyValues...)
	if err != nil {
		panic(err)
	}
	return c
}

// Allowed returns a copy of the allowed values.
func (c *OneOfCheck) Allowed() []any {
	out := make([]any, len(c.allowed))
	copy(out, c.allowed)
	return out
}

func (c *OneOfCheck) String() string {
	parts := make([]string, len(c.allowed))
	for i, v := range c.allowed {
		parts[i] = fmt.Sprint(v)
	}
	return "one_of(" + strings.Join(parts, ",") + ")"
}

func (c *OneOfCheck) Check(value any) error {
	for _, allowed := range c.allowed {
		if equalValues(value, allowed) {
			return nil
		}
	}
	return &NotAllowedError{Allowed: c.Allowed(), Actual: value}
}

func equalValues(a, b any) bool {
	if na, ok := toNumber(a); ok {
		if nb, ok := toNumber(b); ok {
			return compareNumbers(na, nb) == 0
		}
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Comparable types can still hold uncomparable dynamic values,
	// such as a slice inside an interface field.
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
