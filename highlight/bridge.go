// Package highlight implements ansimd.HighlightBridge (§4.5) over
// alecthomas/chroma. It is grounded in the syntax-highlighting renderers
// found across the retrieval pack (e.g. the chroma-backed markdown
// renderers in deepnoodle-ai/wonton and WaylonWalker/markata-go): resolve a
// language token via chroma's lexer registry, tokenise the block's source
// against a named chroma style, and translate chroma's token stream into
// ansimd.StyledSpan runs.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/ansimd/ansimd"
)

// Bridge adapts chroma to ansimd.HighlightBridge. Unlike a line-oriented
// incremental highlighter, chroma tokenises a complete source string, so
// Bridge is only ever handed one fenced code block's full text at a time —
// it never buffers across blocks or across the wider document (§4.5).
type Bridge struct {
	styleName string
}

var (
	_ ansimd.HighlightBridge = (*Bridge)(nil)
	_ ansimd.SyntaxSet       = (*Bridge)(nil)
)

// New returns a Bridge that renders tokens through the named chroma style
// (falling back to chroma's built-in default if the name is unknown).
func New(styleName string) *Bridge {
	return &Bridge{styleName: styleName}
}

// Highlight resolves language via chroma's lexer registry and, on success,
// tokenises source and maps each token's chroma style entry onto an
// ansimd.Style, split into per-line spans. It reports ok=false for an
// unrecognised language so callers fall back to a literal block.
func (b *Bridge) Highlight(language, source string) ([]ansimd.HighlightedLine, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + language)
	}
	if lexer == nil {
		return nil, false
	}
	lexer = chroma.Coalesce(lexer)

	theme := styles.Get(b.styleName)
	if theme == nil {
		theme = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, false
	}

	var lines []ansimd.HighlightedLine
	var current ansimd.HighlightedLine

	for _, tok := range iterator.Tokens() {
		entry := theme.Get(tok.Type)
		style := chromaStyle(entry)

		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = ansimd.HighlightedLine{}
			}
			if part != "" {
				current.Spans = append(current.Spans, ansimd.StyledSpan{Style: style, Text: part})
			}
		}
	}
	if len(current.Spans) > 0 {
		lines = append(lines, current)
	}
	return lines, true
}

// Resolves reports whether chroma's lexer registry recognises token, either
// as a lexer name or a file-extension alias (e.g. "go" or "main.go"). It
// implements ansimd.SyntaxSet, letting the render package decide whether a
// fenced block is worth tokenising before it ever calls Highlight.
func (b *Bridge) Resolves(token string) bool {
	if token == "" {
		return false
	}
	return lexers.Get(token) != nil || lexers.Match("file."+token) != nil
}

func chromaStyle(entry chroma.StyleEntry) ansimd.Style {
	s := ansimd.Style{Foreground: ansimd.NoColor, Background: ansimd.NoColor}
	if entry.Bold == chroma.Yes {
		s.Bold = true
	}
	if entry.Italic == chroma.Yes {
		s.Italic = true
	}
	if entry.Colour.IsSet() {
		s = s.WithForegroundRGB(ansimd.RGB{
			R: entry.Colour.Red(),
			G: entry.Colour.Green(),
			B: entry.Colour.Blue(),
		})
	}
	// Background colors are intentionally not carried: the teacher's
	// tui-markdown renderer leaves the terminal's own background visible
	// rather than painting a chroma theme's background behind code.
	return s
}
