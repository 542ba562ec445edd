package schema

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Configuration errors. All of them match validator.ErrConfiguration.
var (
	// ErrDuplicateField is returned when a field name is bound twice.
	ErrDuplicateField = fmt.Errorf("%w: duplicate field", validator.ErrConfiguration)

	// ErrSchemaSealed is returned by Define after Seal.
	ErrSchemaSealed = fmt.Errorf("%w: schema is sealed", validator.ErrConfiguration)

	// ErrSchemaNotSealed is returned when an unsealed schema is used to build records.
	ErrSchemaNotSealed = fmt.Errorf("%w: schema is not sealed", validator.ErrConfiguration)

	// ErrEmptyFieldName is returned when a binding has no field name.
	ErrEmptyFieldName = fmt.Errorf("%w: empty field name", validator.ErrConfiguration)

	// ErrInvalidDefinition is returned when a declarative definition cannot be turned into a chain.
	ErrInvalidDefinition = fmt.Errorf("%w: invalid field definition", validator.ErrConfiguration)

	// ErrInvalidTag is returned when a struct tag cannot be parsed.
	ErrInvalidTag = fmt.Errorf("%w: invalid check tag", validator.ErrConfiguration)

	// ErrFailedToParseYAML is returned when a schema document is not valid YAML.
	ErrFailedToParseYAML = fmt.Errorf("%w: failed to parse schema YAML", validator.ErrConfiguration)

	// ErrFailedToReadFile is returned when a schema file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read schema file")
)

// ErrUnknownField matches UnknownFieldError with errors.Is.
var ErrUnknownField = errors.New("unknown field")

// UnknownFieldError reports a write to a field the schema does not declare.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == validator.ErrRejected || target == ErrUnknownField
}

func (e *UnknownFieldError) TranslationKey() string { return "validation.unknown_field" }

func (e *UnknownFieldError) TranslationValues() map[string]any {
	return map[string]any{"field": e.Field}
}

// FieldError ties a rejection to the field it was raised for.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
