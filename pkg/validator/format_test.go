package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/validator"
)

func TestFormatCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format validator.Format
		valid  []string
		bad    []string
	}{
		{validator.FormatEmail, []string{"user@example.com", "a.b+c@mail.example.org"}, []string{"user", "user@localhost", "@example.com", "user@example..com", "Bob <bob@example.com>"}},
		{validator.FormatURL, []string{"https://example.com/path?q=1", "ftp://files.example.com"}, []string{"example.com", "/relative/path", "https://"}},
		{validator.FormatUUID, []string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, []string{"6ba7b8109dad11d180b400c04fd430c8", "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", "not-a-uuid"}},
		{validator.FormatIP, []string{"192.168.1.1", "::1"}, []string{"999.1.1.1", "host"}},
		{validator.FormatIPv4, []string{"10.0.0.1"}, []string{"::1", "::ffff:10.0.0.1"}},
		{validator.FormatIPv6, []string{"2001:db8::1", "::ffff:10.0.0.1"}, []string{"10.0.0.1"}},
		{validator.FormatMAC, []string{"00:1a:2b:3c:4d:5e"}, []string{"00:1a:2b"}},
		{validator.FormatPhone, []string{"+14155552671", "+44 20 7946 0958"}, []string{"12", "+0123456789", "phone"}},
		{validator.FormatHostname, []string{"example.com", "api.example-host.io"}, []string{"localhost", "-bad.com", "example.c0m", "example.c"}},
		{validator.FormatSlug, []string{"hello-world", "v2"}, []string{"Hello", "-lead", "trail-", "double--dash"}},
		{validator.FormatAlpha, []string{"ACME"}, []string{"ACME1"}},
		{validator.FormatAlphanumeric, []string{"ACME1"}, []string{"ACME-1"}},
		{validator.FormatDigits, []string{"0042"}, []string{"4.2", "-1"}},
		{validator.FormatHex, []string{"deadBEEF"}, []string{"xyz"}},
		{validator.FormatBase64, []string{"aGVsbG8=", "YWJj"}, []string{"aGVsbG8", "a@bc"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			check := validator.MatchFormat(tt.format)
			for _, v := range tt.valid {
				assert.NoError(t, check.Check(v), v)
			}
			for _, v := range tt.bad {
				var mismatch *validator.FormatMismatchError
				if assert.ErrorAs(t, check.Check(v), &mismatch, v) {
					assert.Equal(t, tt.format, mismatch.Format)
					assert.Equal(t, v, mismatch.Actual)
				}
			}
		})
	}
}

func TestFormatCheck_Errors(t *testing.T) {
	t.Parallel()

	check := validator.MatchFormat(validator.FormatEmail)

	t.Run("blank strings are rejected", func(t *testing.T) {
		err := check.Check("   ")
		assert.ErrorIs(t, err, validator.ErrFormatMismatch)
		assert.ErrorIs(t, err, validator.ErrRejected)
		assert.EqualError(t, err, "must be a valid email")
	})

	t.Run("non strings are type mismatches", func(t *testing.T) {
		assert.ErrorIs(t, check.Check(42), validator.ErrTypeMismatch)
		assert.ErrorIs(t, check.Check(nil), validator.ErrTypeMismatch)
	})

	t.Run("translation values", func(t *testing.T) {
		var tr validator.Translatable
		require.ErrorAs(t, check.Check("nope"), &tr)
		assert.Equal(t, "validation.format", tr.TranslationKey())
		assert.Equal(t, map[string]any{"format": "email", "actual": "nope"}, tr.TranslationValues())
	})

	t.Run("cannot follow a numeric type check", func(t *testing.T) {
		chain := validator.Compose(validator.Typed(validator.TagInt), check)
		assert.ErrorIs(t, chain.Verify(), validator.ErrIncompatibleChain)
	})
}

func TestNewFormat(t *testing.T) {
	t.Parallel()

	c, err := validator.NewFormat(" UUID ")
	require.NoError(t, err)
	assert.Equal(t, validator.FormatUUID, c.Format())
	assert.Equal(t, "format(uuid)", c.String())

	_, err = validator.NewFormat("")
	assert.ErrorIs(t, err, validator.ErrMissingParameter)

	_, err = validator.NewFormat("isbn")
	assert.ErrorIs(t, err, validator.ErrInvalidParameter)
	assert.ErrorIs(t, err, validator.ErrConfiguration)

	assert.Contains(t, validator.Formats(), validator.FormatHostname)
	assert.Panics(t, func() { validator.MatchFormat("isbn") })
}
