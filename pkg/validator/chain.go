package validator

import (
	"fmt"
	"strings"
)

// Chain is an ordered, immutable composition of validators. It accepts a
// value only if every member does and returns the first rejection without
// running the remaining members. A Chain is itself a Validator.
type Chain struct {
	validators []Validator
}

// Compose builds a chain evaluated in argument order. Nil validators are
// dropped. "Sized wraps Typed" is Compose(typed, sized).
func Compose(validators ...Validator) Chain {
	out := make([]Validator, 0, len(validators))
	for _, v := range validators {
		if v != nil {
			out = append(out, v)
		}
	}
	return Chain{validators: out}
}

// Check runs the members in order.
func (c Chain) Check(value any) error {
	for _, v := range c.validators {
		if err := v.Check(value); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of direct members.
func (c Chain) Len() int { return len(c.validators) }

// Validators returns a copy of the direct members.
func (c Chain) Validators() []Validator {
	out := make([]Validator, len(c.validators))
	copy(out, c.validators)
	return out
}

// Then returns a new chain with more validators appended.
func (c Chain) Then(validators ...Validator) Chain {
	return Compose(append(c.Validators(), validators...)...)
}

func (c Chain) String() string {
	if len(c.validators) == 0 {
		return "any"
	}
	parts := make([]string, len(c.validators))
	for i, v := range c.validators {
		if s, ok := v.(fmt.Stringer); ok {
			parts[i] = s.String()
		} else {
			parts[i] = fmt.Sprintf("%T", v)
		}
	}
	return strings.Join(parts, " -> ")
}

type narrower interface{ narrows() category }

type consumer interface{ requires() category }

// Verify reports ErrIncompatibleChain when some member can only ever reject
// what the earlier type checks let through.
func (c Chain) Verify() error {
	_, err := c.verify(catAll)
	return err
}

func (c Chain) verify(cur category) (category, error) {
	for i, v := range c.validators {
		switch x := v.(type) {
		case Chain:
			next, err := x.verify(cur)
			if err != nil {
				return 0, err
			}
			cur = next
		case *NullableCheck:
			if _, err := x.inner.verify(cur); err != nil {
				return 0, err
			}
		case narrower:
			cur &= x.narrows()
			if cur == 0 {
				return 0, fmt.Errorf("%w: %s at position %d excludes every value", ErrIncompatibleChain, describe(v), i)
			}
		case consumer:
			if cur&x.requires() == 0 {
				return 0, fmt.Errorf("%w: %s at position %d cannot apply after %s", ErrIncompatibleChain, describe(v), i, c.prefix(i))
			}
			cur &= x.requires()
		}
	}
	return cur, nil
}

func (c Chain) prefix(i int) string {
	return Chain{validators: c.validators[:i]}.String()
}

func describe(v Validator) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
