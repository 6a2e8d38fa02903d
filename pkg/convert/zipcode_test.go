package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldconv/pkg/convert"
	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

func TestZipCode(t *testing.T) {
	t.Parallel()

	c := convert.NewZipCode()

	t.Run("accepts five digits", func(t *testing.T) {
		v, err := c.Parse("02115")
		require.NoError(t, err)
		assert.Equal(t, "02115", v)
	})

	t.Run("accepts integer input", func(t *testing.T) {
		v, err := c.Parse(12115)
		require.NoError(t, err)
		assert.Equal(t, "12115", v)
	})

	t.Run("truncates excess without error", func(t *testing.T) {
		v, err := c.Parse("123456")
		require.NoError(t, err)
		assert.Equal(t, "12345", v)

		v, err = c.Parse("12345-6789")
		require.NoError(t, err)
		assert.Equal(t, "12345", v)
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := c.Parse("1234")
		require.Error(t, err)
		assert.ErrorIs(t, err, validation.ErrInvalidFormat)
		assert.EqualError(t, err, "must be a zip code of 5 digits: [1234]")
	})

	t.Run("rejects mixed characters", func(t *testing.T) {
		_, err := c.Parse("o2115")
		assert.ErrorIs(t, err, validation.ErrInvalidFormat)
	})
}

func TestZipCodeExt(t *testing.T) {
	t.Parallel()

	c := convert.NewZipCodeExt()

	t.Run("accepts four digits", func(t *testing.T) {
		v, err := c.Parse("1234")
		require.NoError(t, err)
		assert.Equal(t, "1234", v)
	})

	t.Run("truncates excess without error", func(t *testing.T) {
		v, err := c.Parse("12345")
		require.NoError(t, err)
		assert.Equal(t, "1234", v)
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := c.Parse("123")
		require.Error(t, err)
		assert.EqualError(t, err, "must be a zip code extension of 4 digits: [123]")
	})
}
