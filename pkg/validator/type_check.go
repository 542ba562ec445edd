package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeTag names a category of runtime types.
type TypeTag string

const (
	TagInt      TypeTag = "int"
	TagFloat    TypeTag = "float"
	TagNumber   TypeTag = "number"
	TagString   TypeTag = "string"
	TagBool     TypeTag = "bool"
	TagSequence TypeTag = "sequence"
	TagMap      TypeTag = "map"
)

// category is a bit set of value families; chains use it to detect
// combinations that can never accept anything.
type category uint8

const (
	catNumber category = 1 << iota
	catString
	catSequence
	catMap
	catBool
	catOther

	catAll   = catNumber | catString | catSequence | catMap | catBool | catOther
	catSized = catString | catSequence | catMap
)

func (t TypeTag) category() category {
	switch t {
	case TagInt, TagFloat, TagNumber:
		return catNumber
	case TagString:
		return catString
	case TagBool:
		return catBool
	case TagSequence:
		return catSequence
	case TagMap:
		return catMap
	default:
		return 0
	}
}

func (t TypeTag) valid() bool { return t.category() != 0 }

// TypeCheck accepts values whose runtime type belongs to a tag, or that are
// assignable to a concrete Go type when built with TypeOf.
type TypeCheck struct {
	tag    TypeTag
	elem   *TypeCheck
	goType reflect.Type
}

// NewTypeCheck builds a type check for tag.
func NewTypeCheck(tag TypeTag) (*TypeCheck, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: type check needs a type tag", ErrMissingParameter)
	}
	if !tag.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTypeTag, tag)
	}
	return &TypeCheck{tag: tag}, nil
}

// Typed is NewTypeCheck for tags known at compile time. It panics on an
// unknown tag.
func Typed(tag TypeTag) *TypeCheck {
	c, err := NewTypeCheck(tag)
	if err != nil {
		panic(err)
	}
	return c
}

// SequenceOf accepts slices and arrays whose every element passes elem.
func SequenceOf(elem *TypeCheck) *TypeCheck {
	return &TypeCheck{tag: TagSequence, elem: elem}
}

// TypeOf accepts values assignable to T. For interface types this means
// values implementing the interface.
func TypeOf[T any]() *TypeCheck {
	return TypeFor(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeFor is TypeOf for a type known only at run time.
func TypeFor(t reflect.Type) *TypeCheck {
	return &TypeCheck{goType: t, tag: tagForKind(t.Kind())}
}

// ParseType converts a type expression into a TypeCheck. It supports the
// tag names plus element-typed sequences written as "[int]" or "[[string]]".
func ParseType(expr string) (*TypeCheck, error) {
	expr = strings.TrimSpace(expr)
	if len(expr) > 2 && expr[0] == '[' && expr[len(expr)-1] == ']' {
		elem, err := ParseType(expr[1 : len(expr)-1])
		if err != nil {
			return nil, err
		}
		return SequenceOf(elem), nil
	}
	return NewTypeCheck(TypeTag(expr))
}

// Name returns the type expression this check was built from.
func (c *TypeCheck) Name() string {
	switch {
	case c.goType != nil:
		return c.goType.String()
	case c.elem != nil:
		return "[" + c.elem.Name() + "]"
	default:
		return string(c.tag)
	}
}

// Tag returns the broad type tag. Checks built with TypeOf report the tag
// matching their kind, or an empty tag for kinds with no tag.
func (c *TypeCheck) Tag() TypeTag { return c.tag }

// Elem returns the element check of a typed sequence, or nil.
func (c *TypeCheck) Elem() *TypeCheck { return c.elem }

func (c *TypeCheck) String() string { return "type(" + c.Name() + ")" }

func (c *TypeCheck) Check(value any) error {
	if !c.accepts(value) {
		return &TypeMismatchError{Expected: c.Name(), Actual: typeName(value)}
	}
	if c.elem == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		if err := c.elem.Check(item); err != nil {
			return &TypeMismatchError{
				Expected: c.Name(),
				Actual:   fmt.Sprintf("%s with %s at index %d", typeName(value), typeName(item), i),
			}
		}
	}
	return nil
}

func (c *TypeCheck) accepts(value any) bool {
	if value == nil {
		return false
	}
	rt := reflect.TypeOf(value)
	if c.goType != nil {
		if c.goType.Kind() == reflect.Interface {
			return rt.Implements(c.goType)
		}
		return rt.AssignableTo(c.goType)
	}

	switch c.tag {
	case TagInt:
		return isIntKind(rt.Kind())
	case TagFloat:
		return rt.Kind() == reflect.Float32 || rt.Kind() == reflect.Float64
	case TagNumber:
		_, ok := toNumber(value)
		return ok
	case TagString:
		return rt.Kind() == reflect.String
	case TagBool:
		return rt.Kind() == reflect.Bool
	case TagSequence:
		return rt.Kind() == reflect.Slice || rt.Kind() == reflect.Array
	case TagMap:
		return rt.Kind() == reflect.Map
	default:
		return false
	}
}

func (c *TypeCheck) narrows() category {
	if c.goType != nil {
		if c.goType.Kind() == reflect.Interface {
			return catAll
		}
		if cat := c.tag.category(); cat != 0 {
			return cat
		}
		return catOther
	}
	return c.tag.category()
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func tagForKind(k reflect.Kind) TypeTag {
	switch {
	case isIntKind(k):
		return TagInt
	case k == reflect.Float32 || k == reflect.Float64:
		return TagFloat
	case k == reflect.String:
		return TagString
	case k == reflect.Bool:
		return TagBool
	case k == reflect.Slice || k == reflect.Array:
		return TagSequence
	case k == reflect.Map:
		return TagMap
	default:
		return ""
	}
}
