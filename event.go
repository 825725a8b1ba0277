// Package ansimd implements a streaming Markdown-to-ANSI rendering engine.
//
// The engine consumes a flat stream of [Event] values — the same shape a
// pull-based Markdown parser produces — and writes styled, indented,
// optionally hyperlink- and image-enriched text to a [Sink]. It never
// retains the document as a tree: every nested construct (lists inside
// quotes, emphasis inside headings, code blocks inside list items) is
// tracked through an explicit stack of frames threaded through the render
// state machine in package render.
package ansimd

// Event is a sealed interface representing one item of a Markdown event
// stream. The unexported marker method prevents external implementations,
// mirroring the closed set of variants a pull-based Markdown parser emits.
type Event interface {
	event()
}

// Start opens a block or inline construct. Every Start(T) must be matched
// by an End(T) before the stream returns to TopLevel for that subtree.
type Start struct {
	Tag Tag
}

func (Start) event() {}

// End closes the most recently opened construct with the same Tag.
type End struct {
	Tag Tag
}

func (End) event() {}

// Text is literal inline text, already entity-decoded.
type Text struct {
	Value string
}

func (Text) event() {}

// Code is an inline code span's literal text (between backticks).
type Code struct {
	Value string
}

func (Code) event() {}

// Html is a raw HTML span or block, passed through without escaping.
type Html struct {
	Value string
}

func (Html) event() {}

// SoftBreak is a line break in the source that does not force a new line
// in rendered output beyond a single space, except inside the engine where
// it is rendered as a newline plus re-indent (§4.1 style propagation).
type SoftBreak struct{}

func (SoftBreak) event() {}

// HardBreak is an explicit forced line break (two trailing spaces, or a
// backslash, in CommonMark source).
type HardBreak struct{}

func (HardBreak) event() {}

// Rule is a thematic break ("---" in Markdown source).
type Rule struct{}

func (Rule) event() {}

// TaskListMarker is a GFM task-list checkbox; Checked reports its state.
// Valid only inside a list item's inline text.
type TaskListMarker struct {
	Checked bool
}

func (TaskListMarker) event() {}

// Interface compliance checks.
var (
	_ Event = Start{}
	_ Event = End{}
	_ Event = Text{}
	_ Event = Code{}
	_ Event = Html{}
	_ Event = SoftBreak{}
	_ Event = HardBreak{}
	_ Event = Rule{}
	_ Event = TaskListMarker{}
)
