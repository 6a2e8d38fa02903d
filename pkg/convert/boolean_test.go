package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldconv/pkg/convert"
	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

func TestBooleanParse(t *testing.T) {
	t.Parallel()

	c := convert.Boolean{}

	t.Run("recognizes true words", func(t *testing.T) {
		for _, in := range []string{"true", "T", "yes", "Y", "on", "1", "yeah", "yup"} {
			v, err := c.Parse(in)
			require.NoError(t, err, "input %q", in)
			assert.Equal(t, true, v, "input %q", in)
		}
	})

	t.Run("recognizes false words", func(t *testing.T) {
		for _, in := range []string{"false", "f", "NO", "n", "off", "0", "nah"} {
			v, err := c.Parse(in)
			require.NoError(t, err, "input %q", in)
			assert.Equal(t, false, v, "input %q", in)
		}
	})

	t.Run("none words yield an absent value", func(t *testing.T) {
		v, err := c.Parse("None")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("bool input passes through", func(t *testing.T) {
		v, err := c.Parse(true)
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("numeric input uses truthiness", func(t *testing.T) {
		v, err := c.Parse(1)
		require.NoError(t, err)
		assert.Equal(t, true, v)

		v, err = c.Parse(0)
		require.NoError(t, err)
		assert.Equal(t, false, v)
	})

	t.Run("unrecognized words are rejected", func(t *testing.T) {
		_, err := c.Parse("wtf")
		require.Error(t, err)
		assert.ErrorIs(t, err, validation.ErrInvalidFormat)
		assert.EqualError(t, err, `must be "yes" or "no"`)
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		v, err := c.Parse(nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestBooleanRender(t *testing.T) {
	t.Parallel()

	t.Run("renders bools", func(t *testing.T) {
		assert.Equal(t, "true", convert.Boolean{}.Render(true).String())
		assert.Equal(t, "false", convert.Boolean{}.Render(false).String())
	})

	t.Run("non-bool values pass through", func(t *testing.T) {
		assert.False(t, convert.Boolean{}.Render("true").Formatted())
	})
}
