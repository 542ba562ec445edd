package schema

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Builder is the explicit front-end: callers compose each chain themselves
// and define fields one by one. The first error sticks and is reported by
// Build, so calls can be chained.
type Builder struct {
	schema *Schema
	err    error
}

// NewBuilder starts a schema named name.
func NewBuilder(name string, opts ...Option) *Builder {
	return &Builder{schema: New(name, opts...)}
}

// Define binds the composition of validators to field.
func (b *Builder) Define(field string, validators ...validator.Validator) *Builder {
	return b.DefineChain(field, validator.Compose(validators...))
}

// DefineChain binds a ready-made chain to field.
func (b *Builder) DefineChain(field string, chain validator.Chain) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.schema.Define(field, chain)
	return b
}

// Build seals and returns the schema, or the first definition error. A
// schema that failed to build is never returned.
func (b *Builder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.schema.Seal()
	return b.schema, nil
}

// MustBuild is Build that panics on error, for package-level schemas.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
