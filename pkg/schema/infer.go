package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// TagName is the struct tag read by Infer.
const TagName = "check"

type structField struct {
	name  string
	index int
	typ   reflect.Type
	tag   string
}

// Infer derives a sealed schema from the exported fields of struct type T,
// in field order. Field names come from the json tag, falling back to the Go
// name with a lower-case first letter. The check tag adds rules:
//
//	type Position struct {
//	    Name   string  `json:"name" check:"max_len=8"`
//	    Email  string  `json:"email" check:"format=email"`
//	    Shares int     `json:"shares" check:"min=0"`
//	    Price  float64 `json:"price"`
//	    Note   *string `json:"note"`
//	    Cache  any     `check:"-"`
//	}
//
// Without a type= rule the Go field type becomes the type check, and
// pointer fields are nullable. A pattern= rule takes the rest of the tag.
func Infer[T any](opts ...Option) (*Schema, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidDefinition, t)
	}

	fields := structFields(t)
	table := make(Table, 0, len(fields))
	for _, f := range fields {
		rules, base, err := parseCheckTag(f)
		if err != nil {
			return nil, err
		}
		chain, err := rules.chain(base)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.name, err)
		}
		table = append(table, Entry{Field: f.name, Chain: chain})
	}

	return FromTable(lowerFirst(t.Name()), table, opts...)
}

// ValuesOf extracts the field values of a struct under the names Infer
// would give them. Nil pointers become nil; other pointers are dereferenced.
func ValuesOf(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil struct pointer", ErrInvalidDefinition)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not a struct", ErrInvalidDefinition, v)
	}

	fields := structFields(rv.Type())
	values := make(map[string]any, len(fields))
	for _, f := range fields {
		fv := rv.Field(f.index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				values[f.name] = nil
				continue
			}
			fv = fv.Elem()
		}
		values[f.name] = fv.Interface()
	}
	return values, nil
}

func structFields(t reflect.Type) []structField {
	var fields []structField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		name := lowerFirst(sf.Name)
		if j := sf.Tag.Get("json"); j != "" {
			jn, _, _ := strings.Cut(j, ",")
			if jn == "-" {
				continue
			}
			if jn != "" {
				name = jn
			}
		}

		fields = append(fields, structField{name: name, index: i, typ: sf.Type, tag: tag})
	}
	return fields
}

// parseCheckTag turns a check tag into rules plus the type check implied by
// the Go field type.
func parseCheckTag(f structField) (Rules, *validator.TypeCheck, error) {
	var rules Rules

	ft := f.typ
	if ft.Kind() == reflect.Pointer {
		rules.Nullable = true
		ft = ft.Elem()
	}
	var base *validator.TypeCheck
	if ft.Kind() != reflect.Interface {
		base = validator.TypeFor(ft)
	}

	rest := f.tag
	for rest != "" {
		var part string
		if strings.HasPrefix(rest, "pattern=") {
			part, rest = rest, ""
		} else {
			part, rest, _ = strings.Cut(rest, ",")
		}

		key, value, hasValue := strings.Cut(strings.TrimSpace(part), "=")
		var err error
		switch key {
		case "":
			continue
		case "nullable":
			rules.Nullable = true
		case "type":
			rules.Type = value
		case "min":
			rules.Min, err = parseNumber(value)
		case "max":
			rules.Max, err = parseNumber(value)
		case "max_len":
			var n int
			n, err = strconv.Atoi(value)
			rules.MaxLen = &n
		case "one_of":
			rules.OneOf, err = parseChoices(value, ft.Kind())
		case "pattern":
			rules.Pattern = value
		case "format":
			rules.Format = value
		default:
			err = fmt.Errorf("unknown rule %q", key)
		}
		if err == nil && !hasValue && key != "nullable" {
			err = fmt.Errorf("rule %q needs a value", key)
		}
		if err != nil {
			return Rules{}, nil, fmt.Errorf("%w: field %q: %w", ErrInvalidTag, f.name, err)
		}
	}

	return rules, base, nil
}

func parseNumber(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

func parseChoices(s string, kind reflect.Kind) ([]any, error) {
	parts := strings.Split(s, "|")
	out := make([]any, len(parts))
	for i, p := range parts {
		switch {
		case kind == reflect.Bool:
			b, err := strconv.ParseBool(p)
			if err != nil {
				return nil, err
			}
			out[i] = b
		case kind >= reflect.Int && kind <= reflect.Float64:
			n, err := parseNumber(p)
			if err != nil {
				return nil, err
			}
			out[i] = n
		default:
			out[i] = p
		}
	}
	return out, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
