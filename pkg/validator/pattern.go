package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// PatternCheck accepts strings matching a regular expression.
type PatternCheck struct {
	re *regexp.Regexp
}

// NewPattern compiles expr once at construction.
func NewPattern(expr string) (*PatternCheck, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: pattern check needs an expression", ErrMissingParameter)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidParameter, err)
	}
	return &PatternCheck{re: re}, nil
}

// MatchPattern is NewPattern for constant expressions. It panics if expr
// does not compile.
func MatchPattern(expr string) *PatternCheck {
	c, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// Expr returns the source expression.
func (c *PatternCheck) Expr() string { return c.re.String() }

func (c *PatternCheck) String() string { return "pattern(" + c.re.String() + ")" }

func (c *PatternCheck) Check(value any) error {
	s, ok := value.(string)
	if !ok {
		return &TypeMismatchError{Expected: string(TagString), Actual: typeName(value)}
	}
	if !c.re.MatchString(s) {
		return &PatternMismatchError{Pattern: c.re.String(), Actual: s}
	}
	return nil
}

func (c *PatternCheck) requires() category { return catString }
