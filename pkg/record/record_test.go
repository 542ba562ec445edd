package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

func stock(t *testing.T, opts ...schema.Option) *schema.Schema {
	t.Helper()
	return schema.NewBuilder("stock", opts...).
		Define("name", validator.Typed(validator.TagString), validator.MaxSize(8)).
		Define("shares", validator.Typed(validator.TagInt), validator.Min(0)).
		Define("price", validator.Typed(validator.TagFloat)).
		MustBuild()
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("stores every value", func(t *testing.T) {
		t.Parallel()
		r, err := record.New(stock(t), map[string]any{"name": "GOOG", "shares": 100, "price": 490.1})
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "shares", "price"}, r.Fields())
		assert.Equal(t, map[string]any{"name": "GOOG", "shares": 100, "price": 490.1}, r.Values())
	})

	t.Run("atomic on rejection", func(t *testing.T) {
		t.Parallel()
		r, err := record.New(stock(t), map[string]any{"name": "GOOG", "shares": -1, "price": 490.1})
		assert.Nil(t, r)
		assert.ErrorIs(t, err, validator.ErrBelowMinimum)
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()
		_, err := record.New(stock(t), map[string]any{"name": "GOOG"})

		var arity *record.ArityMismatchError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, 3, arity.Expected)
		assert.Equal(t, 1, arity.Actual)
		assert.ErrorIs(t, err, validator.ErrRejected)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := record.New(stock(t), map[string]any{"name": "GOOG", "shares": 1, "price": 1.0, "volume": 5})
		assert.ErrorIs(t, err, schema.ErrUnknownField)
	})

	t.Run("extension fields tracked separately", func(t *testing.T) {
		t.Parallel()
		r, err := record.New(stock(t, schema.WithExtensionFields()),
			map[string]any{"name": "GOOG", "shares": 1, "price": 1.0, "volume": 5})
		require.NoError(t, err)
		assert.Equal(t, []string{"volume"}, r.Extensions())
		v, err := r.Get("volume")
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	})

	t.Run("nil is not exempt", func(t *testing.T) {
		t.Parallel()
		_, err := record.New(stock(t), map[string]any{"name": nil, "shares": 1, "price": 1.0})
		var mismatch *validator.TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "nil", mismatch.Actual)
	})

	t.Run("unsealed schema", func(t *testing.T) {
		t.Parallel()
		_, err := record.New(schema.New("open"), nil)
		assert.ErrorIs(t, err, schema.ErrSchemaNotSealed)
		_, err = record.New(nil, nil)
		assert.ErrorIs(t, err, schema.ErrSchemaNotSealed)
	})
}

func TestSet_RejectionKeepsPriorValue(t *testing.T) {
	t.Parallel()

	s := schema.NewBuilder("holding").Define("shares", validator.Min(0)).MustBuild()
	r, err := record.New(s, map[string]any{"shares": 50})
	require.NoError(t, err)

	err = r.Set("shares", -10)
	var below *validator.BelowMinimumError
	require.ErrorAs(t, err, &below)
	assert.Equal(t, 0, below.Min)
	assert.Equal(t, -10, below.Actual)

	v, err := r.Get("shares")
	require.NoError(t, err)
	assert.Equal(t, 50, v)
}

func TestSet_SizeExceeded(t *testing.T) {
	t.Parallel()

	r, err := record.New(stock(t), map[string]any{"name": "GOOG", "shares": 1, "price": 1.0})
	require.NoError(t, err)

	err = r.Set("name", "ABRACADABRA")
	var size *validator.SizeExceededError
	require.ErrorAs(t, err, &size)
	assert.Equal(t, 8, size.Max)
	assert.Equal(t, 11, size.ActualLen)
}

func TestSet_GetReturnsWhatWasSet(t *testing.T) {
	t.Parallel()

	r, err := record.New(stock(t, schema.WithExtensionFields()),
		map[string]any{"name": "GOOG", "shares": 1, "price": 1.0})
	require.NoError(t, err)

	writes := map[string]any{"name": "AAPL", "shares": uint8(7), "price": 2.5, "note": []string{"x"}}
	for field, value := range writes {
		require.NoError(t, r.Set(field, value), field)
		got, err := r.Get(field)
		require.NoError(t, err)
		assert.Equal(t, value, got, field)
	}
	assert.Equal(t, []string{"note"}, r.Extensions())
}

func TestSet_UnknownField(t *testing.T) {
	t.Parallel()

	r, err := record.New(stock(t), map[string]any{"name": "GOOG", "shares": 1, "price": 1.0})
	require.NoError(t, err)

	assert.ErrorIs(t, r.Set("volume", 1), schema.ErrUnknownField)
	_, err = r.Get("volume")
	assert.ErrorIs(t, err, schema.ErrUnknownField)
}

func TestNewPositional(t *testing.T) {
	t.Parallel()
	point, err := schema.FromFields("point", []string{"x", "y"})
	require.NoError(t, err)

	t.Run("binds in field order", func(t *testing.T) {
		t.Parallel()
		r, err := record.NewPositional(point, []any{2, 3}, nil)
		require.NoError(t, err)
		x, _ := r.Get("x")
		y, _ := r.Get("y")
		assert.Equal(t, 2, x)
		assert.Equal(t, 3, y)
	})

	t.Run("too few values", func(t *testing.T) {
		t.Parallel()
		_, err := record.NewPositional(point, []any{2}, nil)
		var arity *record.ArityMismatchError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, 2, arity.Expected)
		assert.Equal(t, 1, arity.Actual)
	})

	t.Run("too many values", func(t *testing.T) {
		t.Parallel()
		_, err := record.NewPositional(point, []any{1, 2, 3}, nil)
		var arity *record.ArityMismatchError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, 3, arity.Actual)
	})

	t.Run("keywords complete positional values", func(t *testing.T) {
		t.Parallel()
		r, err := record.NewPositional(point, []any{2}, map[string]any{"y": 9})
		require.NoError(t, err)
		y, _ := r.Get("y")
		assert.Equal(t, 9, y)
	})

	t.Run("duplicate value", func(t *testing.T) {
		t.Parallel()
		_, err := record.NewPositional(point, []any{2, 3}, map[string]any{"x": 9})
		var dup *record.DuplicateValueError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "x", dup.Field)
		assert.ErrorIs(t, err, record.ErrDuplicateValue)
	})

	t.Run("unknown keyword", func(t *testing.T) {
		t.Parallel()
		_, err := record.NewPositional(point, []any{2, 3}, map[string]any{"z": 9})
		assert.ErrorIs(t, err, schema.ErrUnknownField)
	})
}

func TestAs(t *testing.T) {
	t.Parallel()

	r, err := record.New(stock(t), map[string]any{"name": "GOOG", "shares": 100, "price": 490.1})
	require.NoError(t, err)

	shares, err := record.As[int](r, "shares")
	require.NoError(t, err)
	assert.Equal(t, 100, shares)

	_, err = record.As[string](r, "shares")
	var mismatch *validator.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "string", mismatch.Expected)
	assert.Equal(t, "int", mismatch.Actual)

	_, err = record.As[int](r, "missing")
	assert.ErrorIs(t, err, schema.ErrUnknownField)
}
