package export

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// JSONSchema describes the records a schema accepts as a JSON Schema
// (draft 2020-12) object. Every declared field is required; undeclared
// properties are forbidden unless the schema allows extension fields.
//
// Checks with no JSON Schema equivalent, such as Func validators and
// TypeOf checks on struct types, are listed in the property description.
func JSONSchema(s *schema.Schema) *jsonschema.Schema {
	root := &jsonschema.Schema{
		Version:    jsonschema.Version,
		Title:      s.Name(),
		Type:       "object",
		Properties: jsonschema.NewProperties(),
		Required:   s.Fields(),
	}
	if !s.AllowsExtensions() {
		root.AdditionalProperties = jsonschema.FalseSchema
	}

	for _, b := range s.Bindings() {
		prop := &jsonschema.Schema{}
		applyChain(prop, b.Chain)
		root.Properties.Set(b.Field, prop)
	}
	return root
}

// Marshal renders the JSON Schema of s as indented JSON.
func Marshal(s *schema.Schema) ([]byte, error) {
	return json.MarshalIndent(JSONSchema(s), "", "  ")
}

func applyChain(dst *jsonschema.Schema, chain validator.Chain) {
	for _, v := range chain.Validators() {
		apply(dst, v)
	}
}

func apply(dst *jsonschema.Schema, v validator.Validator) {
	switch c := v.(type) {
	case validator.Chain:
		applyChain(dst, c)
	case *validator.TypeCheck:
		applyType(dst, c)
	case *validator.RangeCheck:
		if lo, ok := c.Min(); ok {
			dst.Minimum = json.Number(fmt.Sprint(lo))
		}
		if hi, ok := c.Max(); ok {
			dst.Maximum = json.Number(fmt.Sprint(hi))
		}
	case *validator.SizeCheck:
		// Exclusive maximum in the chain, inclusive in JSON Schema.
		limit := uint64(c.Max() - 1)
		switch dst.Type {
		case "string":
			dst.MaxLength = &limit
		case "array":
			dst.MaxItems = &limit
		case "object":
			dst.MaxProperties = &limit
		default:
			dst.MaxLength, dst.MaxItems, dst.MaxProperties = &limit, &limit, &limit
		}
	case *validator.OneOfCheck:
		dst.Enum = c.Allowed()
	case *validator.PatternCheck:
		dst.Pattern = c.Expr()
	case *validator.FormatCheck:
		dst.Format = jsonFormat(c.Format())
	case *validator.NullableCheck:
		inner := &jsonschema.Schema{}
		applyChain(inner, c.Inner())
		dst.AnyOf = append(dst.AnyOf, &jsonschema.Schema{Type: "null"}, inner)
	default:
		describe(dst, v)
	}
}

func applyType(dst *jsonschema.Schema, c *validator.TypeCheck) {
	switch c.Tag() {
	case validator.TagInt:
		dst.Type = "integer"
	case validator.TagFloat:
		dst.Type = "number"
		note(dst, "integer values are rejected")
	case validator.TagNumber:
		dst.Type = "number"
	case validator.TagString:
		dst.Type = "string"
	case validator.TagBool:
		dst.Type = "boolean"
	case validator.TagSequence:
		dst.Type = "array"
		if elem := c.Elem(); elem != nil {
			items := &jsonschema.Schema{}
			applyType(items, elem)
			dst.Items = items
		}
	case validator.TagMap:
		dst.Type = "object"
	default:
		describe(dst, c)
	}
}

// jsonFormat maps format names onto the JSON Schema vocabulary. Formats
// without a counterpart keep their own name.
func jsonFormat(f validator.Format) string {
	if f == validator.FormatURL {
		return "uri"
	}
	return string(f)
}

func describe(dst *jsonschema.Schema, v validator.Validator) {
	text := fmt.Sprintf("%T", v)
	if s, ok := v.(fmt.Stringer); ok {
		text = s.String()
	}
	note(dst, text)
}

func note(dst *jsonschema.Schema, text string) {
	if dst.Description != "" {
		dst.Description += "; "
	}
	dst.Description += text
}
