package validator

import (
	"fmt"
	"math"
	"strings"
)

type bound struct {
	raw any
	n   number
}

// RangeCheck accepts ordered numeric values within inclusive bounds. Either
// bound may be absent, but not both.
type RangeCheck struct {
	min *bound
	max *bound
}

// NewRangeCheck builds a check with an inclusive minimum.
func NewRangeCheck(min any) (*RangeCheck, error) {
	if min == nil {
		return nil, fmt.Errorf("%w: range check needs a minimum", ErrMissingParameter)
	}
	return NewRange(min, nil)
}

// NewRange builds a check from optional inclusive bounds given as any Go
// numeric value. Pass nil for an open side.
func NewRange(min, max any) (*RangeCheck, error) {
	if min == nil && max == nil {
		return nil, fmt.Errorf("%w: range check needs a minimum or a maximum", ErrMissingParameter)
	}

	c := &RangeCheck{}
	if min != nil {
		n, ok := toNumber(min)
		if !ok {
			return nil, fmt.Errorf("%w: range minimum must be numeric, got %s", ErrInvalidParameter, typeName(min))
		}
		if n.kind == kindFloat && math.IsNaN(n.f) {
			return nil, fmt.Errorf("%w: range minimum is NaN", ErrInvalidParameter)
		}
		c.min = &bound{raw: min, n: n}
	}
	if max != nil {
		n, ok := toNumber(max)
		if !ok {
			return nil, fmt.Errorf("%w: range maximum must be numeric, got %s", ErrInvalidParameter, typeName(max))
		}
		if n.kind == kindFloat && math.IsNaN(n.f) {
			return nil, fmt.Errorf("%w: range maximum is NaN", ErrInvalidParameter)
		}
		c.max = &bound{raw: max, n: n}
	}
	if c.min != nil && c.max != nil && compareNumbers(c.min.n, c.max.n) > 0 {
		return nil, fmt.Errorf("%w: range minimum %v exceeds maximum %v", ErrInvalidParameter, min, max)
	}

	return c, nil
}

// Min builds an inclusive minimum check. Min(0) is the unsigned constraint.
func Min[T Numeric](min T) *RangeCheck {
	return &RangeCheck{min: numericBound(min)}
}

// Max builds an inclusive maximum check.
func Max[T Numeric](max T) *RangeCheck {
	return &RangeCheck{max: numericBound(max)}
}

// Between builds an inclusive range check. It panics when min exceeds max.
func Between[T Numeric](min, max T) *RangeCheck {
	if min > max {
		panic(fmt.Errorf("%w: range minimum %v exceeds maximum %v", ErrInvalidParameter, min, max))
	}
	return &RangeCheck{min: numericBound(min), max: numericBound(max)}
}

func numericBound[T Numeric](v T) *bound {
	n, _ := toNumber(v)
	return &bound{raw: v, n: n}
}

// Min returns the inclusive minimum, if any.
func (c *RangeCheck) Min() (any, bool) {
	if c.min == nil {
		return nil, false
	}
	return c.min.raw, true
}

// Max returns the inclusive maximum, if any.
func (c *RangeCheck) Max() (any, bool) {
	if c.max == nil {
		return nil, false
	}
	return c.max.raw, true
}

func (c *RangeCheck) String() string {
	var parts []string
	if c.min != nil {
		parts = append(parts, fmt.Sprintf("min(%v)", c.min.raw))
	}
	if c.max != nil {
		parts = append(parts, fmt.Sprintf("max(%v)", c.max.raw))
	}
	return strings.Join(parts, " ")
}

func (c *RangeCheck) Check(value any) error {
	n, ok := toNumber(value)
	if !ok {
		return &TypeMismatchError{Expected: string(TagNumber), Actual: typeName(value)}
	}
	if n.kind == kindFloat && math.IsNaN(n.f) {
		return &TypeMismatchError{Expected: string(TagNumber), Actual: "NaN"}
	}
	if c.min != nil && compareNumbers(n, c.min.n) < 0 {
		return &BelowMinimumError{Min: c.min.raw, Actual: value}
	}
	if c.max != nil && compareNumbers(n, c.max.n) > 0 {
		return &AboveMaximumError{Max: c.max.raw, Actual: value}
	}
	return nil
}

func (c *RangeCheck) requires() category { return catNumber }
