package highlight_test

import (
	"testing"

	"github.com/ansimd/ansimd/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_Highlight(t *testing.T) {
	t.Parallel()

	t.Run("unknown language reports failure", func(t *testing.T) {
		t.Parallel()
		b := highlight.New("monokai")
		_, ok := b.Highlight("not-a-real-language-xyz", "whatever\n")
		assert.False(t, ok)
	})

	t.Run("known language tokenises into styled lines", func(t *testing.T) {
		t.Parallel()
		b := highlight.New("monokai")
		lines, ok := b.Highlight("go", "package main\n")
		require.True(t, ok)
		require.NotEmpty(t, lines)
	})

	t.Run("multi-line source splits across HighlightedLine entries", func(t *testing.T) {
		t.Parallel()
		b := highlight.New("monokai")
		lines, ok := b.Highlight("go", "package main\n\nfunc main() {}\n")
		require.True(t, ok)
		assert.GreaterOrEqual(t, len(lines), 2)
	})
}

func TestBridge_Resolves(t *testing.T) {
	t.Parallel()

	b := highlight.New("monokai")
	assert.True(t, b.Resolves("go"))
	assert.True(t, b.Resolves("python"))
	assert.False(t, b.Resolves("not-a-real-language-xyz"))
	assert.False(t, b.Resolves(""))
}
