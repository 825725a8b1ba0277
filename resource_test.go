package ansimd_test

import (
	"testing"

	"github.com/ansimd/ansimd"
	"github.com/stretchr/testify/assert"
)

func TestLocalOnly(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-file urls", func(t *testing.T) {
		t.Parallel()
		l := ansimd.NewLocalOnly("/docs")
		assert.False(t, l.Permits("https://example.com/cat.png"))
	})

	t.Run("permits file urls under base dir with no patterns", func(t *testing.T) {
		t.Parallel()
		l := ansimd.NewLocalOnly("/docs")
		assert.True(t, l.Permits("file:///docs/images/cat.png"))
	})

	t.Run("rejects file urls outside base dir", func(t *testing.T) {
		t.Parallel()
		l := ansimd.NewLocalOnly("/docs")
		assert.False(t, l.Permits("file:///etc/passwd"))
	})

	t.Run("honours glob allow-list", func(t *testing.T) {
		t.Parallel()
		l := ansimd.NewLocalOnly("/docs", "images/**/*.png")
		assert.True(t, l.Permits("file:///docs/images/sub/cat.png"))
		assert.False(t, l.Permits("file:///docs/images/cat.jpg"))
	})
}

func TestAllowAll(t *testing.T) {
	t.Parallel()
	assert.True(t, ansimd.AllowAll{}.Permits("anything"))
}
