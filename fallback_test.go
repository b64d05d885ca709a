package termclip_test

import (
	"testing"

	"github.com/fwojciec/termclip"
	"github.com/fwojciec/termclip/mock"
	"github.com/stretchr/testify/assert"
)

// countingTransport returns a mock that reports support and counts writes.
func countingTransport(supported bool, writes *int) *mock.Transport {
	return &mock.Transport{
		IsSupportedFn: func() bool { return supported },
		SetClipboardFn: func(termclip.SelectionTarget, []byte) bool {
			*writes++
			return true
		},
	}
}

func TestFallback(t *testing.T) {
	t.Parallel()

	t.Run("prefers primary", func(t *testing.T) {
		t.Parallel()

		var primary, secondary int
		f := &termclip.Fallback{
			Primary:   countingTransport(true, &primary),
			Secondary: countingTransport(true, &secondary),
		}

		assert.True(t, f.IsSupported())
		assert.True(t, f.SetClipboard(termclip.ClipboardBuffer, []byte("eA==")))
		assert.Equal(t, 1, primary)
		assert.Zero(t, secondary)
	})

	t.Run("falls back to secondary", func(t *testing.T) {
		t.Parallel()

		var primary, secondary int
		f := &termclip.Fallback{
			Primary:   countingTransport(false, &primary),
			Secondary: countingTransport(true, &secondary),
		}

		assert.True(t, f.IsSupported())
		assert.True(t, f.SetClipboard(termclip.ClipboardBuffer, []byte("eA==")))
		assert.Zero(t, primary)
		assert.Equal(t, 1, secondary)
	})

	t.Run("unsupported when neither is", func(t *testing.T) {
		t.Parallel()

		var primary, secondary int
		f := &termclip.Fallback{
			Primary:   countingTransport(false, &primary),
			Secondary: countingTransport(false, &secondary),
		}

		assert.False(t, f.IsSupported())
		assert.False(t, f.SetClipboard(termclip.ClipboardBuffer, []byte("eA==")))
		assert.Zero(t, primary+secondary)

		cb := termclip.NewClipboard(f)
		assert.False(t, cb.Copy("x"))
		assert.Zero(t, primary+secondary)
	})
}
