package ansiterm_test

import (
	"testing"

	"github.com/ansimd/ansimd/ansiterm"
	"github.com/stretchr/testify/assert"
)

func TestLinkAdapter_Render(t *testing.T) {
	t.Parallel()
	out := ansiterm.LinkAdapter{}.Render("https://example.com", "click me")
	assert.Contains(t, out, "click me")
	assert.Contains(t, out, "https://example.com")
}

func TestMarkAdapter_Mark(t *testing.T) {
	t.Parallel()
	out := ansiterm.MarkAdapter{}.Mark()
	assert.Contains(t, out, "1337")
	assert.Contains(t, out, "SetMark")
}
