// Package schema binds validator chains to the named fields of a record type.
//
// A Schema is an ordered set of field bindings plus a flag allowing extension
// fields. It is built once through one of several front-ends and then sealed;
// a sealed schema never changes and is safe to share between goroutines.
//
// # Front-ends
//
// All front-ends produce identical schemas for equivalent input:
//
//   - Builder: explicit, one Define call per field with composed validators
//   - FromTable: an ordered Table of field, chain or factory rows
//   - FromFields: positional shorthand, names only, any value accepted
//   - ParseYAML and LoadYAMLFile: declarative YAML documents
//   - Infer: struct fields and their check tags
//
// Example:
//
//	stock, err := schema.NewBuilder("stock").
//	    Define("name", validator.Typed(validator.TagString), validator.MaxSize(8)).
//	    Define("shares", validator.Typed(validator.TagInt), validator.Min(0)).
//	    Define("price", validator.Typed(validator.TagFloat)).
//	    Build()
//
// # Errors
//
// Definition problems match validator.ErrConfiguration. ValidateWrite returns
// a FieldError wrapping the chain's rejection, or an UnknownFieldError for
// undeclared names when extensions are off. ValidateAll collects every
// rejection into validator.ValidationErrors.
package schema
