package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

type position struct {
	Name   string  `json:"name" check:"max_len=8"`
	Shares int     `json:"shares" check:"min=0"`
	Price  float64 `json:"price"`
	Side   string  `json:"side,omitempty" check:"one_of=buy|sell"`
	Note   *string `json:"note"`
	Ticker string  `check:"pattern=^[A-Z]{1,4}(,[A-Z]{1,4})*$"`
	Cache  any     `check:"-"`
	Hidden string  `json:"-"`
	secret string
}

func TestInfer(t *testing.T) {
	t.Parallel()

	s, err := schema.Infer[position]()
	require.NoError(t, err)
	assert.Equal(t, "position", s.Name())
	assert.Equal(t, []string{"name", "shares", "price", "side", "note", "ticker"}, s.Fields())

	assert.ErrorIs(t, s.ValidateWrite("name", "ABRACADABRA"), validator.ErrSizeExceeded)
	assert.ErrorIs(t, s.ValidateWrite("name", 1), validator.ErrTypeMismatch)
	assert.ErrorIs(t, s.ValidateWrite("shares", -1), validator.ErrBelowMinimum)
	assert.ErrorIs(t, s.ValidateWrite("price", 1), validator.ErrTypeMismatch)
	assert.ErrorIs(t, s.ValidateWrite("side", "hold"), validator.ErrNotAllowed)
	assert.NoError(t, s.ValidateWrite("note", nil))
	assert.NoError(t, s.ValidateWrite("note", "hello"))
	assert.NoError(t, s.ValidateWrite("ticker", "GOOG,AAPL"))
	assert.ErrorIs(t, s.ValidateWrite("ticker", "goog"), validator.ErrPatternMismatch)
}

func TestInfer_Format(t *testing.T) {
	t.Parallel()

	type account struct {
		ID    string `json:"id" check:"format=uuid"`
		Email string `json:"email" check:"max_len=64,format=email"`
	}

	s, err := schema.Infer[account]()
	require.NoError(t, err)
	assert.NoError(t, s.ValidateWrite("id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.ErrorIs(t, s.ValidateWrite("id", "42"), validator.ErrFormatMismatch)
	assert.NoError(t, s.ValidateWrite("email", "ops@example.com"))
	assert.ErrorIs(t, s.ValidateWrite("email", "ops"), validator.ErrFormatMismatch)
}

func TestInfer_Errors(t *testing.T) {
	t.Parallel()

	type badRule struct {
		A int `check:"minimum=1"`
	}
	_, err := schema.Infer[badRule]()
	assert.ErrorIs(t, err, schema.ErrInvalidTag)

	type badNumber struct {
		A int `check:"min=abc"`
	}
	_, err = schema.Infer[badNumber]()
	assert.ErrorIs(t, err, schema.ErrInvalidTag)

	type incompatible struct {
		A string `check:"min=1"`
	}
	_, err = schema.Infer[incompatible]()
	assert.ErrorIs(t, err, validator.ErrIncompatibleChain)

	_, err = schema.Infer[int]()
	assert.ErrorIs(t, err, schema.ErrInvalidDefinition)
}

func TestValuesOf(t *testing.T) {
	t.Parallel()

	note := "long"
	values, err := schema.ValuesOf(&position{Name: "GOOG", Shares: 100, Price: 490.1, Note: &note})
	require.NoError(t, err)
	assert.Equal(t, "GOOG", values["name"])
	assert.Equal(t, 100, values["shares"])
	assert.Equal(t, "long", values["note"])
	assert.NotContains(t, values, "cache")
	assert.NotContains(t, values, "secret")

	values, err = schema.ValuesOf(position{})
	require.NoError(t, err)
	assert.Nil(t, values["note"])

	_, err = schema.ValuesOf(42)
	assert.ErrorIs(t, err, schema.ErrInvalidDefinition)
}
