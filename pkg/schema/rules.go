package schema

import (
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Rules is the declarative description of one field's chain, shared by the
// YAML and struct-tag front-ends. Checks are composed in a fixed order:
// type, range, size, one_of, pattern, format. Nullable wraps the whole chain.
type Rules struct {
	Type     string `mapstructure:"type" yaml:"type,omitempty"`
	Min      any    `mapstructure:"min" yaml:"min,omitempty"`
	Max      any    `mapstructure:"max" yaml:"max,omitempty"`
	MaxLen   *int   `mapstructure:"max_len" yaml:"max_len,omitempty"`
	OneOf    []any  `mapstructure:"one_of" yaml:"one_of,omitempty"`
	Pattern  string `mapstructure:"pattern" yaml:"pattern,omitempty"`
	Format   string `mapstructure:"format" yaml:"format,omitempty"`
	Nullable bool   `mapstructure:"nullable" yaml:"nullable,omitempty"`
}

// Chain builds and verifies the chain the rules describe. Empty rules give
// an empty chain that accepts any value.
func (r Rules) Chain() (validator.Chain, error) {
	return r.chain(nil)
}

// chain uses base as the type check when the rules name no type.
func (r Rules) chain(base *validator.TypeCheck) (validator.Chain, error) {
	var vs []validator.Validator

	switch {
	case r.Type != "":
		tc, err := validator.ParseType(r.Type)
		if err != nil {
			return validator.Chain{}, err
		}
		vs = append(vs, tc)
	case base != nil:
		vs = append(vs, base)
	}

	if r.Min != nil || r.Max != nil {
		rc, err := validator.NewRange(r.Min, r.Max)
		if err != nil {
			return validator.Chain{}, err
		}
		vs = append(vs, rc)
	}

	if r.MaxLen != nil {
		sc, err := validator.NewSizeCheck(*r.MaxLen)
		if err != nil {
			return validator.Chain{}, err
		}
		vs = append(vs, sc)
	}

	if r.OneOf != nil {
		oc, err := validator.NewOneOf(r.OneOf...)
		if err != nil {
			return validator.Chain{}, err
		}
		vs = append(vs, oc)
	}

	if r.Pattern != "" {
		pc, err := validator.NewPattern(r.Pattern)
		if err != nil {
			return validator.Chain{}, err
		}
		vs = append(vs, pc)
	}

	if r.Format != "" {
		fc, err := validator.NewFormat(r.Format)
		if err != nil {
			return validator.Chain{}, err
		}
		vs = append(vs, fc)
	}

	chain := validator.Compose(vs...)
	if r.Nullable {
		chain = validator.Compose(validator.Nullable(vs...))
	}
	if err := chain.Verify(); err != nil {
		return validator.Chain{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return chain, nil
}
