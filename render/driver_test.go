package render_test

import (
	"bytes"
	"testing"

	"github.com/ansimd/ansimd"
	"github.com/ansimd/ansimd/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainSettings() ansimd.Settings {
	s := ansimd.DefaultSettings()
	s.Capabilities.Style = ansimd.StyleCapNone{}
	s.Capabilities.Link = ansimd.LinkCapNone{}
	return s
}

func paragraph(text string) []ansimd.Event {
	return []ansimd.Event{
		ansimd.Start{Tag: ansimd.Paragraph{}},
		ansimd.Text{Value: text},
		ansimd.End{Tag: ansimd.Paragraph{}},
	}
}

func TestDriver_Run(t *testing.T) {
	t.Parallel()

	t.Run("plain paragraph is written verbatim", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		require.NoError(t, d.Run(paragraph("hello world")))
		assert.Contains(t, buf.String(), "hello world")
	})

	t.Run("two paragraphs get a blank line between them", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		events := append(paragraph("first"), paragraph("second")...)
		require.NoError(t, d.Run(events))
		assert.Equal(t, "first\n\nsecond\n", buf.String())
	})

	t.Run("heading text is prefixed by one dotted mark per level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.Heading{Level: 2}},
			ansimd.Text{Value: "Title"},
			ansimd.End{Tag: ansimd.Heading{Level: 2}},
		}
		require.NoError(t, d.Run(events))
		assert.Contains(t, buf.String(), "┄┄Title")
	})

	t.Run("unordered list item gets a bullet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.List{}},
			ansimd.Start{Tag: ansimd.Item{}},
			ansimd.Text{Value: "one"},
			ansimd.End{Tag: ansimd.Item{}},
			ansimd.End{Tag: ansimd.List{}},
		}
		require.NoError(t, d.Run(events))
		assert.Contains(t, buf.String(), "• one")
	})

	t.Run("ordered list item is numbered from its start value", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		start := uint64(5)
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.List{Start: &start}},
			ansimd.Start{Tag: ansimd.Item{}},
			ansimd.Text{Value: "five"},
			ansimd.End{Tag: ansimd.Item{}},
			ansimd.End{Tag: ansimd.List{Start: &start}},
		}
		require.NoError(t, d.Run(events))
		assert.Contains(t, buf.String(), " 5. five")
	})

	t.Run("task list marker renders a checkbox glyph", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.List{}},
			ansimd.Start{Tag: ansimd.Item{}},
			ansimd.TaskListMarker{Checked: true},
			ansimd.Text{Value: "done"},
			ansimd.End{Tag: ansimd.Item{}},
			ansimd.End{Tag: ansimd.List{}},
		}
		require.NoError(t, d.Run(events))
		assert.Contains(t, buf.String(), "☑ done")
	})

	t.Run("reference link without OSC8 gets a bracketed index", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.Paragraph{}},
			ansimd.Start{Tag: ansimd.Link{Destination: "https://example.com", Title: "Example"}},
			ansimd.Text{Value: "a link"},
			ansimd.End{Tag: ansimd.Link{Destination: "https://example.com", Title: "Example"}},
			ansimd.End{Tag: ansimd.Paragraph{}},
		}
		require.NoError(t, d.Run(events))
		out := buf.String()
		assert.Contains(t, out, "a link[1]")
		assert.Contains(t, out, "[1]: https://example.com Example")
	})

	t.Run("autolink does not repeat its destination as a reference", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.Paragraph{}},
			ansimd.Start{Tag: ansimd.Link{Type: ansimd.LinkAutolink, Destination: "https://example.com"}},
			ansimd.Text{Value: "https://example.com"},
			ansimd.End{Tag: ansimd.Link{Type: ansimd.LinkAutolink, Destination: "https://example.com"}},
			ansimd.End{Tag: ansimd.Paragraph{}},
		}
		require.NoError(t, d.Run(events))
		assert.NotContains(t, buf.String(), "[1]")
	})

	t.Run("rule is capped at the terminal width", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		settings := plainSettings()
		settings.TerminalSize.Width = 10
		d := render.New(&buf, settings, nil)
		require.NoError(t, d.Run([]ansimd.Event{ansimd.Rule{}}))
		assert.Equal(t, "══════════\n", buf.String())
	})

	t.Run("image without a capable terminal falls back to a destination annotation", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		settings := plainSettings()
		settings.BaseDir = "/docs"
		d := render.New(&buf, settings, nil)
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.Paragraph{}},
			ansimd.Start{Tag: ansimd.Image{Destination: "cat.png"}},
			ansimd.Text{Value: "a cat"},
			ansimd.End{Tag: ansimd.Image{Destination: "cat.png"}},
			ansimd.End{Tag: ansimd.Paragraph{}},
		}
		require.NoError(t, d.Run(events))
		assert.Contains(t, buf.String(), "a cat (cat.png)")
	})

	t.Run("fenced code block with an unknown language falls back to a literal block", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		kind := ansimd.FencedCodeBlock{Language: "rust"}
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.CodeBlock{Kind: kind}},
			ansimd.Text{Value: "fn f(){}\n"},
			ansimd.End{Tag: ansimd.CodeBlock{Kind: kind}},
		}
		require.NoError(t, d.Run(events))
		assert.Contains(t, buf.String(), "fn f(){}\n")
	})

	t.Run("indented code block body renders literally", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		kind := ansimd.IndentedCodeBlock{}
		events := []ansimd.Event{
			ansimd.Start{Tag: ansimd.CodeBlock{Kind: kind}},
			ansimd.Text{Value: "plain text\n"},
			ansimd.End{Tag: ansimd.CodeBlock{Kind: kind}},
		}
		require.NoError(t, d.Run(events))
		assert.Contains(t, buf.String(), "plain text\n")
	})

	t.Run("unbalanced stream reports an error instead of panicking out", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		err := d.Run([]ansimd.Event{ansimd.Start{Tag: ansimd.Paragraph{}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ansimd.ErrUnbalancedStream)
	})

	t.Run("impossible transition recovers into an error", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := render.New(&buf, plainSettings(), nil)
		err := d.Run([]ansimd.Event{ansimd.End{Tag: ansimd.Paragraph{}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ansimd.ErrImpossibleTransition)
	})
}

func TestLinkRegistry_FlushesBeforeHeadings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := render.New(&buf, plainSettings(), nil)
	events := []ansimd.Event{
		ansimd.Start{Tag: ansimd.Paragraph{}},
		ansimd.Start{Tag: ansimd.Link{Destination: "https://first.example", Title: ""}},
		ansimd.Text{Value: "first"},
		ansimd.End{Tag: ansimd.Link{Destination: "https://first.example", Title: ""}},
		ansimd.End{Tag: ansimd.Paragraph{}},
		ansimd.Start{Tag: ansimd.Heading{Level: 1}},
		ansimd.Text{Value: "Section"},
		ansimd.End{Tag: ansimd.Heading{Level: 1}},
	}
	require.NoError(t, d.Run(events))

	out := buf.String()
	linkRefIdx := indexOf(out, "[1]: https://first.example")
	headingIdx := indexOf(out, "┄Section")
	require.GreaterOrEqual(t, linkRefIdx, 0)
	require.GreaterOrEqual(t, headingIdx, 0)
	assert.Less(t, linkRefIdx, headingIdx, "pending links must flush before the heading that follows them")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
