package schema

import (
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Binding associates a validator chain with a field name.
type Binding struct {
	Field string
	Chain validator.Chain
}

// Option configures a Schema at creation.
type Option func(*Schema)

// WithExtensionFields lets records carry values for names the schema does not
// declare. Such writes are accepted unchecked and tracked separately.
func WithExtensionFields() Option {
	return func(s *Schema) { s.extensions = true }
}

// Schema describes one record type: its ordered field bindings and whether
// extension fields are allowed. Build it once, seal it, then share it freely;
// a sealed schema is never mutated and needs no locking.
type Schema struct {
	name       string
	bindings   []Binding
	index      map[string]int
	extensions bool
	sealed     bool
}

// New creates an empty, unsealed schema.
func New(name string, opts ...Option) *Schema {
	s := &Schema{
		name:  name,
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Define binds chain to field. It fails once the schema is sealed, when the
// field is already bound, or when the chain can never accept a value.
func (s *Schema) Define(field string, chain validator.Chain) error {
	if s.sealed {
		return fmt.Errorf("%w: cannot define %q on %q", ErrSchemaSealed, field, s.name)
	}
	if field == "" {
		return ErrEmptyFieldName
	}
	if _, exists := s.index[field]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, field)
	}
	if err := chain.Verify(); err != nil {
		return fmt.Errorf("field %q: %w", field, err)
	}

	s.index[field] = len(s.bindings)
	s.bindings = append(s.bindings, Binding{Field: field, Chain: chain})
	return nil
}

// Seal freezes the binding set. Sealing twice is a no-op.
func (s *Schema) Seal() { s.sealed = true }

// Sealed reports whether Seal has been called.
func (s *Schema) Sealed() bool { return s.sealed }

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// AllowsExtensions reports whether undeclared fields are accepted.
func (s *Schema) AllowsExtensions() bool { return s.extensions }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.bindings) }

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	fields := make([]string, len(s.bindings))
	for i, b := range s.bindings {
		fields[i] = b.Field
	}
	return fields
}

// Has reports whether field is declared.
func (s *Schema) Has(field string) bool {
	_, ok := s.index[field]
	return ok
}

// Binding returns the binding for field.
func (s *Schema) Binding(field string) (Binding, bool) {
	i, ok := s.index[field]
	if !ok {
		return Binding{}, false
	}
	return s.bindings[i], true
}

// Bindings returns a copy of all bindings in declaration order.
func (s *Schema) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// IsExtension reports whether a write to field would be an extension write.
func (s *Schema) IsExtension(field string) bool {
	return s.extensions && !s.Has(field)
}

// ValidateWrite runs the chain bound to field against value. Undeclared
// fields are rejected with UnknownFieldError unless extensions are allowed,
// in which case they are accepted unchecked.
func (s *Schema) ValidateWrite(field string, value any) error {
	b, ok := s.Binding(field)
	if !ok {
		if s.extensions && field != "" {
			return nil
		}
		return &UnknownFieldError{Field: field}
	}
	if err := b.Chain.Check(value); err != nil {
		return &FieldError{Field: field, Err: err}
	}
	return nil
}

// ValidateAll checks every supplied value and collects all rejections,
// declared fields first in schema order, then unknown names sorted.
func (s *Schema) ValidateAll(values map[string]any) error {
	var errs validator.ValidationErrors

	for _, b := range s.bindings {
		v, ok := values[b.Field]
		if !ok {
			continue
		}
		if err := s.ValidateWrite(b.Field, v); err != nil {
			errs.Add(validator.NewValidationError(b.Field, err))
		}
	}
	for _, field := range sortedKeys(values) {
		if s.Has(field) {
			continue
		}
		if err := s.ValidateWrite(field, values[field]); err != nil {
			errs.Add(validator.NewValidationError(field, err))
		}
	}

	return errs.ErrorOrNil()
}
