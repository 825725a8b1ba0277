package ansimd_test

import (
	"testing"

	"github.com/ansimd/ansimd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReference(t *testing.T) {
	t.Parallel()

	t.Run("absolute url parses directly", func(t *testing.T) {
		t.Parallel()
		u, ok := ansimd.ResolveReference("https://example.com/a.png", "/docs")
		require.True(t, ok)
		assert.Equal(t, "https", u.Scheme)
	})

	t.Run("relative path joins against base dir as file url", func(t *testing.T) {
		t.Parallel()
		u, ok := ansimd.ResolveReference("images/cat.png", "/docs")
		require.True(t, ok)
		assert.Equal(t, "file", u.Scheme)
		assert.Equal(t, "/docs/images/cat.png", u.Path)
	})
}
