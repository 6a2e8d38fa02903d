package validation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldconv/pkg/validation"
)

func TestResolveWarnings(t *testing.T) {
	t.Parallel()

	warn := validation.NewWarning(validation.WarningUser, "rate", 150, "rate looks unusually high")
	hard := validation.New("must be an integer")

	t.Run("acknowledged warning is removed", func(t *testing.T) {
		errs := validation.Errors{"rate": warn, "qty": hard}
		out := validation.ResolveWarnings(errs, validation.AckSet{warn.WarningKey: true})
		assert.False(t, out.Has("rate"))
		assert.True(t, out.Has("qty"))
	})

	t.Run("unacknowledged warning is kept", func(t *testing.T) {
		errs := validation.Errors{"rate": warn}
		out := validation.ResolveWarnings(errs, validation.AckSet{})
		assert.True(t, out.Has("rate"))
	})

	t.Run("false acknowledgment does not remove", func(t *testing.T) {
		errs := validation.Errors{"rate": warn}
		out := validation.ResolveWarnings(errs, validation.AckSet{warn.WarningKey: false})
		assert.True(t, out.Has("rate"))
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		errs := validation.Errors{"rate": warn, "qty": hard}
		acks := validation.AckSet{warn.WarningKey: true}
		once := validation.ResolveWarnings(errs, acks)
		twice := validation.ResolveWarnings(once, acks)
		assert.Equal(t, once, twice)
	})

	t.Run("input collection is not modified", func(t *testing.T) {
		errs := validation.Errors{"rate": warn}
		_ = validation.ResolveWarnings(errs, validation.AckSet{warn.WarningKey: true})
		assert.True(t, errs.Has("rate"))
	})

	t.Run("nil acknowledgments keep everything", func(t *testing.T) {
		errs := validation.Errors{"rate": warn}
		out := validation.ResolveWarnings(errs, nil)
		assert.True(t, out.Has("rate"))
	})

	t.Run("nil collection resolves to nil", func(t *testing.T) {
		assert.Nil(t, validation.ResolveWarnings(nil, validation.AckSet{}))
	})
}

func TestOverrideRegistry(t *testing.T) {
	t.Parallel()

	t.Run("registers and answers keys", func(t *testing.T) {
		reg := validation.NewOverrideRegistry()
		assert.False(t, reg.Acknowledged("k1"))

		reg.Register("k1", "k2")
		assert.True(t, reg.Acknowledged("k1"))
		assert.True(t, reg.Acknowledged("k2"))
		assert.False(t, reg.Acknowledged("k3"))
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("registering twice is idempotent", func(t *testing.T) {
		reg := validation.NewOverrideRegistry()
		reg.Register("k1")
		reg.Register("k1")
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		reg := validation.NewOverrideRegistry()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reg.Register("shared")
				_ = reg.Acknowledged("shared")
			}()
		}
		wg.Wait()
		assert.True(t, reg.Acknowledged("shared"))
	})

	t.Run("feeds ResolveWarnings", func(t *testing.T) {
		warn := validation.NewWarning(validation.WarningInternal, "carrier", "X1", "carrier X1 is on probation")
		errs := validation.Errors{"carrier": warn}

		reg := validation.NewOverrideRegistry()
		assert.True(t, validation.ResolveWarnings(errs, reg).Has("carrier"))

		reg.Register(warn.WarningKey)
		assert.False(t, validation.ResolveWarnings(errs, reg).Has("carrier"))
	})
}
