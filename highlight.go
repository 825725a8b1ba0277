package ansimd

// StyledSpan is one contiguous run of text sharing a single Style, as
// produced by a HighlightBridge for one line of a highlighted code block.
type StyledSpan struct {
	Style Style
	Text  string
}

// HighlightBridge is the façade the render state machine calls into for
// fenced code blocks (§4.5). Given a language token and the block's full
// source text, it returns the source split into lines of styled spans, or
// reports ok=false when the language is unrecognised — in which case the
// state machine falls back to an unhighlighted literal block (§7).
//
// Concrete implementations (package highlight) own a syntax-highlighting
// library and any per-block parser/highlighter state; the bridge itself
// must not retain state across unrelated code blocks.
type HighlightBridge interface {
	Highlight(language, source string) ([]HighlightedLine, bool)
}

// HighlightedLine is one physical line of highlighted source.
type HighlightedLine struct {
	Spans []StyledSpan
}
