package mdevents_test

import (
	"testing"

	"github.com/ansimd/ansimd"
	"github.com/ansimd/ansimd/mdevents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducer_Parse(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields no events", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte(""))
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("plain paragraph brackets text in Start/End Paragraph", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("hello world\n"))
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, ansimd.Start{Tag: ansimd.Paragraph{}}, events[0])
		assert.Equal(t, ansimd.Text{Value: "hello world"}, events[1])
		assert.Equal(t, ansimd.End{Tag: ansimd.Paragraph{}}, events[2])
	})

	t.Run("heading level is preserved", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("## Title\n"))
		require.NoError(t, err)
		require.NotEmpty(t, events)
		assert.Equal(t, ansimd.Start{Tag: ansimd.Heading{Level: 2}}, events[0])
	})

	t.Run("fenced code block carries its language token", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("```go\npackage main\n```\n"))
		require.NoError(t, err)
		require.NotEmpty(t, events)
		start, ok := events[0].(ansimd.Start)
		require.True(t, ok)
		block, ok := start.Tag.(ansimd.CodeBlock)
		require.True(t, ok)
		fenced, ok := block.Kind.(ansimd.FencedCodeBlock)
		require.True(t, ok)
		assert.Equal(t, "go", fenced.Language)
	})

	t.Run("fenced code block body is a Text event, not a Code event", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("```go\npackage main\n```\n"))
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, ansimd.Text{Value: "package main\n"}, events[1])
	})

	t.Run("unordered list has no start number", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("- one\n- two\n"))
		require.NoError(t, err)
		require.NotEmpty(t, events)
		start, ok := events[0].(ansimd.Start)
		require.True(t, ok)
		list, ok := start.Tag.(ansimd.List)
		require.True(t, ok)
		assert.Nil(t, list.Start)
	})

	t.Run("ordered list records its start number", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("3. one\n4. two\n"))
		require.NoError(t, err)
		start, ok := events[0].(ansimd.Start)
		require.True(t, ok)
		list, ok := start.Tag.(ansimd.List)
		require.True(t, ok)
		require.NotNil(t, list.Start)
		assert.Equal(t, uint64(3), *list.Start)
	})

	t.Run("task list marker reports checked state", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("- [x] done\n- [ ] not done\n"))
		require.NoError(t, err)
		var markers []ansimd.TaskListMarker
		for _, e := range events {
			if m, ok := e.(ansimd.TaskListMarker); ok {
				markers = append(markers, m)
			}
		}
		require.Len(t, markers, 2)
		assert.True(t, markers[0].Checked)
		assert.False(t, markers[1].Checked)
	})

	t.Run("strikethrough wraps its text", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("~~gone~~\n"))
		require.NoError(t, err)
		var sawStart, sawEnd bool
		for _, e := range events {
			switch ev := e.(type) {
			case ansimd.Start:
				if _, ok := ev.Tag.(ansimd.Strikethrough); ok {
					sawStart = true
				}
			case ansimd.End:
				if _, ok := ev.Tag.(ansimd.Strikethrough); ok {
					sawEnd = true
				}
			}
		}
		assert.True(t, sawStart)
		assert.True(t, sawEnd)
	})

	t.Run("autolink is distinguished from an inline link", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("<https://example.com>\n"))
		require.NoError(t, err)
		start, ok := events[1].(ansimd.Start)
		require.True(t, ok)
		link, ok := start.Tag.(ansimd.Link)
		require.True(t, ok)
		assert.Equal(t, ansimd.LinkAutolink, link.Type)
		assert.Equal(t, "https://example.com", link.Destination)
	})

	t.Run("thematic break emits a Rule event", func(t *testing.T) {
		t.Parallel()
		events, err := mdevents.New().Parse([]byte("---\n"))
		require.NoError(t, err)
		assert.Contains(t, events, ansimd.Rule{})
	})
}
