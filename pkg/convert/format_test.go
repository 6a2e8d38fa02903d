package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldconv/pkg/convert"
)

func TestGroupThousands(t *testing.T) {
	t.Parallel()

	t.Run("groups every three integral digits", func(t *testing.T) {
		assert.Equal(t, "1,000,000", convert.GroupThousands("1000000", ",", "."))
		assert.Equal(t, "1,000", convert.GroupThousands("1000", ",", "."))
		assert.Equal(t, "100", convert.GroupThousands("100", ",", "."))
		assert.Equal(t, "0", convert.GroupThousands("0", ",", "."))
	})

	t.Run("keeps the fractional part intact", func(t *testing.T) {
		assert.Equal(t, "1,234.5678", convert.GroupThousands("1234.5678", ",", "."))
	})

	t.Run("preserves leading sign and symbols", func(t *testing.T) {
		assert.Equal(t, "-1,234.5", convert.GroupThousands("-1234.5", ",", "."))
		assert.Equal(t, "$-12,345", convert.GroupThousands("$-12345", ",", "."))
	})

	t.Run("honors alternate separators", func(t *testing.T) {
		assert.Equal(t, "1.234.567,89", convert.GroupThousands("1234567,89", ".", ","))
	})

	t.Run("empty decimal separator disables the split", func(t *testing.T) {
		assert.Equal(t, "1,234", convert.GroupThousands("1234", ",", ""))
	})
}

func TestRenderResult(t *testing.T) {
	t.Parallel()

	t.Run("display result", func(t *testing.T) {
		r := convert.Display("$1.00")
		assert.True(t, r.Formatted())
		assert.Equal(t, "$1.00", r.String())
		assert.Equal(t, "$1.00", r.Value())
	})

	t.Run("pass-through result keeps the original", func(t *testing.T) {
		r := convert.PassThrough(42)
		assert.False(t, r.Formatted())
		assert.Equal(t, 42, r.Value())
		assert.Equal(t, "42", r.String())
	})

	t.Run("nil pass-through stringifies empty", func(t *testing.T) {
		r := convert.PassThrough(nil)
		assert.Empty(t, r.String())
		assert.Nil(t, r.Value())
	})
}
