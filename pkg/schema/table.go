package schema

import (
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Factory produces a chain on demand. A factory error aborts the build.
type Factory func() (validator.Chain, error)

// Entry is one row of a declarative table: a field and either a ready-made
// chain or a factory producing one.
type Entry struct {
	Field   string
	Chain   validator.Chain
	Factory Factory
}

// Table is an ordered declarative schema definition. Rows are defined in
// slice order, which also becomes the positional field order.
type Table []Entry

// FromTable builds a sealed schema from a declarative table.
func FromTable(name string, table Table, opts ...Option) (*Schema, error) {
	s := New(name, opts...)
	for _, e := range table {
		chain := e.Chain
		if e.Factory != nil {
			if chain.Len() > 0 {
				return nil, fmt.Errorf("%w: %q has both a chain and a factory", ErrInvalidDefinition, e.Field)
			}
			c, err := e.Factory()
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", e.Field, err)
			}
			chain = c
		}
		if err := s.Define(e.Field, chain); err != nil {
			return nil, err
		}
	}
	s.Seal()
	return s, nil
}

// FromFields is the positional shorthand: every field is declared with an
// empty chain, so any value is accepted but the names and their order are
// fixed.
func FromFields(name string, fields []string, opts ...Option) (*Schema, error) {
	table := make(Table, len(fields))
	for i, f := range fields {
		table[i] = Entry{Field: f}
	}
	return FromTable(name, table, opts...)
}
