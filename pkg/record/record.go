package record

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Record holds the current values of one instance of a schema. Every write
// is checked against the schema before it is stored, and a rejected write
// leaves the previous value untouched.
//
// A Record is single-owner. Wrap it with NewLocked to share it between
// goroutines.
type Record struct {
	schema     *schema.Schema
	values     map[string]any
	extensions map[string]any
	observer   Observer
}

// Option configures a Record at construction.
type Option func(*Record)

// WithObserver reports every commit and rejection to o, including those made
// during construction.
func WithObserver(o Observer) Option {
	return func(r *Record) {
		if o != nil {
			r.observer = o
		}
	}
}

// New builds a record from named values. Every declared field must be
// present. Names the schema does not declare are rejected unless the schema
// allows extension fields. Values are checked in field order and nothing is
// returned unless all of them pass.
func New(s *schema.Schema, values map[string]any, opts ...Option) (*Record, error) {
	if s == nil || !s.Sealed() {
		return nil, schema.ErrSchemaNotSealed
	}
	return build(s, values, opts)
}

// NewPositional builds a record from values bound in field order, optionally
// completed by named values for the remaining fields.
func NewPositional(s *schema.Schema, positional []any, named map[string]any, opts ...Option) (*Record, error) {
	if s == nil || !s.Sealed() {
		return nil, schema.ErrSchemaNotSealed
	}

	fields := s.Fields()
	if len(positional) > len(fields) {
		return nil, &ArityMismatchError{Expected: len(fields), Actual: len(positional)}
	}

	values := make(map[string]any, len(fields))
	for i, v := range positional {
		values[fields[i]] = v
	}
	for _, name := range slices.Sorted(maps.Keys(named)) {
		if _, taken := values[name]; taken {
			return nil, &DuplicateValueError{Field: name}
		}
		values[name] = named[name]
	}

	return build(s, values, opts)
}

func build(s *schema.Schema, values map[string]any, opts []Option) (*Record, error) {
	r := &Record{
		schema:   s,
		values:   make(map[string]any, s.Len()),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}

	var extra []string
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if s.Has(name) {
			continue
		}
		if !s.AllowsExtensions() {
			err := &schema.UnknownFieldError{Field: name}
			r.observer.Rejected(s.Name(), name, values[name], err)
			return nil, err
		}
		extra = append(extra, name)
	}

	if supplied := len(values) - len(extra); supplied != s.Len() {
		return nil, &ArityMismatchError{Expected: s.Len(), Actual: supplied}
	}

	for _, b := range s.Bindings() {
		v := values[b.Field]
		if err := s.ValidateWrite(b.Field, v); err != nil {
			r.observer.Rejected(s.Name(), b.Field, v, err)
			return nil, err
		}
		r.values[b.Field] = v
	}
	if len(extra) > 0 {
		r.extensions = make(map[string]any, len(extra))
		for _, name := range extra {
			r.extensions[name] = values[name]
		}
	}

	for _, name := range s.Fields() {
		r.observer.Committed(s.Name(), name, r.values[name])
	}
	for _, name := range extra {
		r.observer.Committed(s.Name(), name, r.extensions[name])
	}
	return r, nil
}

// Schema returns the schema the record is checked against.
func (r *Record) Schema() *schema.Schema { return r.schema }

// Get returns the current value of a declared or extension field.
func (r *Record) Get(field string) (any, error) {
	if v, ok := r.values[field]; ok {
		return v, nil
	}
	if v, ok := r.extensions[field]; ok {
		return v, nil
	}
	return nil, &schema.UnknownFieldError{Field: field}
}

// Set checks value against the field's chain and stores it only if the
// chain accepts it.
func (r *Record) Set(field string, value any) error {
	if err := r.schema.ValidateWrite(field, value); err != nil {
		r.observer.Rejected(r.schema.Name(), field, value, err)
		return err
	}

	if r.schema.Has(field) {
		r.values[field] = value
	} else {
		if r.extensions == nil {
			r.extensions = make(map[string]any)
		}
		r.extensions[field] = value
	}
	r.observer.Committed(r.schema.Name(), field, value)
	return nil
}

// Fields returns the declared field names in schema order.
func (r *Record) Fields() []string { return r.schema.Fields() }

// Extensions returns the names of extension fields currently set, sorted.
func (r *Record) Extensions() []string {
	return slices.Sorted(maps.Keys(r.extensions))
}

// Values returns a copy of every declared and extension value.
func (r *Record) Values() map[string]any {
	out := make(map[string]any, len(r.values)+len(r.extensions))
	maps.Copy(out, r.values)
	maps.Copy(out, r.extensions)
	return out
}

// As returns a field value as T. It fails with a TypeMismatchError when the
// stored value is not a T; values are never converted.
func As[T any](r *Record, field string) (T, error) {
	var zero T
	v, err := r.Get(field)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &validator.TypeMismatchError{
			Expected: reflect.TypeFor[T]().String(),
			Actual:   typeName(v),
		}
	}
	return t, nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
