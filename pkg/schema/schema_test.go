package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

func stockSchema(t *testing.T, opts ...schema.Option) *schema.Schema {
	t.Helper()
	s, err := schema.NewBuilder("stock", opts...).
		Define("name", validator.Typed(validator.TagString), validator.MaxSize(8)).
		Define("shares", validator.Typed(validator.TagInt), validator.Min(0)).
		Define("price", validator.Typed(validator.TagFloat)).
		Build()
	require.NoError(t, err)
	return s
}

func TestSchema_Define(t *testing.T) {
	t.Parallel()

	t.Run("keeps declaration order", func(t *testing.T) {
		t.Parallel()
		s := stockSchema(t)
		assert.Equal(t, []string{"name", "shares", "price"}, s.Fields())
		assert.Equal(t, 3, s.Len())
		assert.True(t, s.Sealed())
		assert.Equal(t, "stock", s.Name())
	})

	t.Run("duplicate field", func(t *testing.T) {
		t.Parallel()
		s := schema.New("dup")
		require.NoError(t, s.Define("a", validator.Chain{}))
		err := s.Define("a", validator.Chain{})
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
		assert.ErrorIs(t, err, validator.ErrConfiguration)
	})

	t.Run("empty field name", func(t *testing.T) {
		t.Parallel()
		err := schema.New("x").Define("", validator.Chain{})
		assert.ErrorIs(t, err, schema.ErrEmptyFieldName)
	})

	t.Run("sealed schema rejects definitions", func(t *testing.T) {
		t.Parallel()
		s := stockSchema(t)
		err := s.Define("extra", validator.Chain{})
		assert.ErrorIs(t, err, schema.ErrSchemaSealed)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("incompatible chain", func(t *testing.T) {
		t.Parallel()
		err := schema.New("x").Define("n",
			validator.Compose(validator.Typed(validator.TagString), validator.Min(0)))
		assert.ErrorIs(t, err, validator.ErrIncompatibleChain)
		assert.ErrorIs(t, err, validator.ErrConfiguration)
	})
}

func TestSchema_Binding(t *testing.T) {
	t.Parallel()
	s := stockSchema(t)

	b, ok := s.Binding("shares")
	require.True(t, ok)
	assert.Equal(t, "shares", b.Field)
	assert.Equal(t, 2, b.Chain.Len())

	_, ok = s.Binding("missing")
	assert.False(t, ok)

	bindings := s.Bindings()
	bindings[0].Field = "mutated"
	assert.Equal(t, "name", s.Fields()[0])
}

func TestSchema_ValidateWrite(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid value", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, stockSchema(t).ValidateWrite("shares", 100))
	})

	t.Run("wraps rejection with field", func(t *testing.T) {
		t.Parallel()
		err := stockSchema(t).ValidateWrite("shares", -10)

		var fe *schema.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "shares", fe.Field)

		var below *validator.BelowMinimumError
		require.ErrorAs(t, err, &below)
		assert.Equal(t, -10, below.Actual)
		assert.ErrorIs(t, err, validator.ErrRejected)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		err := stockSchema(t).ValidateWrite("volume", 1)

		var unknown *schema.UnknownFieldError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "volume", unknown.Field)
		assert.ErrorIs(t, err, schema.ErrUnknownField)
		assert.ErrorIs(t, err, validator.ErrRejected)
	})

	t.Run("extension field accepted unchecked", func(t *testing.T) {
		t.Parallel()
		s := stockSchema(t, schema.WithExtensionFields())
		assert.True(t, s.AllowsExtensions())
		assert.True(t, s.IsExtension("volume"))
		assert.False(t, s.IsExtension("name"))
		assert.NoError(t, s.ValidateWrite("volume", []int{1, 2}))
	})

	t.Run("declared field still checked with extensions", func(t *testing.T) {
		t.Parallel()
		s := stockSchema(t, schema.WithExtensionFields())
		assert.ErrorIs(t, s.ValidateWrite("name", 42), validator.ErrTypeMismatch)
	})
}

func TestSchema_ValidateAll(t *testing.T) {
	t.Parallel()
	s := stockSchema(t)

	err := s.ValidateAll(map[string]any{
		"name":   "ABRACADABRA",
		"shares": -1,
		"price":  1.5,
		"zzz":    true,
	})
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"name", "shares", "zzz"}, errs.Fields())
	assert.Equal(t, "validation.max_length", errs.GetErrors("name")[0].TranslationKey)
	assert.Equal(t, "validation.min", errs.GetErrors("shares")[0].TranslationKey)
	assert.Equal(t, "validation.unknown_field", errs.GetErrors("zzz")[0].TranslationKey)

	var size *validator.SizeExceededError
	assert.True(t, errors.As(err, &size))

	assert.NoError(t, s.ValidateAll(map[string]any{"name": "GOOG"}))
}
