package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ansimd/ansimd"
	"github.com/ansimd/ansimd/ansiterm"
)

// writeIndent writes level spaces, grounded on write_indent in the
// original renderer's render/write.rs.
func writeIndent(w io.Writer, level int) error {
	if level <= 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat(" ", level))
	return err
}

// writeStyled writes text through whichever StyleCap is active, grounded
// on write_styled in render/write.rs: StyleCapNone writes text verbatim,
// StyleCapANSI dispatches to the lipgloss-backed adapter.
func writeStyled(w io.Writer, caps ansimd.Capabilities, style ansimd.Style, text string) error {
	switch caps.Style.(type) {
	case ansimd.StyleCapNone:
		_, err := io.WriteString(w, text)
		return err
	case ansimd.StyleCapANSI:
		_, err := io.WriteString(w, ansiterm.StyleAdapter{}.Render(style, text))
		return err
	default:
		return fmt.Errorf("%w: unknown style capability %T", ansimd.ErrImpossibleTransition, caps.Style)
	}
}

// writeMark emits a shell-integration mark ahead of a top-level heading,
// grounded on write_mark in render/write.rs.
func writeMark(w io.Writer, caps ansimd.Capabilities) error {
	switch caps.Mark.(type) {
	case ansimd.MarkCapNone:
		return nil
	case ansimd.MarkCapITerm2:
		_, err := io.WriteString(w, ansiterm.MarkAdapter{}.Mark())
		return err
	default:
		return fmt.Errorf("%w: unknown mark capability %T", ansimd.ErrImpossibleTransition, caps.Mark)
	}
}

// writeRule writes a horizontal rule of the given display width, grounded
// on write_rule in render/write.rs.
func writeRule(w io.Writer, caps ansimd.Capabilities, width int) error {
	if width < 0 {
		width = 0
	}
	rule := strings.Repeat("═", width)
	style := ansimd.DefaultStyle().WithForeground(ansimd.Green)
	return writeStyled(w, caps, style, rule)
}

// writeBorder writes a code-block border, capped at 20 columns even on
// wide terminals, grounded exactly on write_border in render/write.rs
// ("\u{2500}".repeat(terminal_size.width.min(20))).
func writeBorder(w io.Writer, caps ansimd.Capabilities, size ansimd.TerminalSize) error {
	length := size.Width
	if length > 20 {
		length = 20
	}
	separator := strings.Repeat("─", length)
	style := ansimd.DefaultStyle().WithForeground(ansimd.Green)
	if err := writeStyled(w, caps, style, separator); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writelnReturningToTopLevel writes a trailing blank line only when
// returnTo is the top-level state, grounded on
// writeln_returning_to_toplevel in render/write.rs — a nested list ending
// inside another block must not insert its own blank line.
func writelnReturningToTopLevel(w io.Writer, returnTo State) error {
	if !IsTopLevel(returnTo) {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeLinkRefs flushes the link registry's pending entries as "[N]: url
// title" lines, grounded on write_link_refs in render/write.rs. It is
// called before every heading and once more at finalization (§4.3).
func writeLinkRefs(w io.Writer, caps ansimd.Capabilities, links []ansimd.PendingLink) error {
	if len(links) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	style := ansimd.DefaultStyle().WithForeground(ansimd.Blue)
	for _, link := range links {
		text := fmt.Sprintf("[%d]: %s %s", link.Index, link.Destination, link.Title)
		if err := writeStyled(w, caps, style, text); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeStartCodeBlock writes a code block's opening border and indent and
// decides whether its contents will be highlighted or rendered literally,
// grounded on write_start_code_block in render/write.rs: a fenced block
// with a non-empty language token resolved by the configured syntax set
// becomes a HighlightBlockFrame; everything else (indented blocks, fenced
// blocks with no or unrecognised language, or a terminal with no style
// capability) becomes a LiteralBlockFrame.
func writeStartCodeBlock(
	w io.Writer,
	settings ansimd.Settings,
	returnTo State,
	indent int,
	style ansimd.Style,
	kind ansimd.CodeBlockKind,
) (State, error) {
	if err := writeIndent(w, indent); err != nil {
		return nil, err
	}
	if err := writeBorder(w, settings.Capabilities, settings.TerminalSize); err != nil {
		return nil, err
	}
	if err := writeIndent(w, indent); err != nil {
		return nil, err
	}

	if _, ansi := settings.Capabilities.Style.(ansimd.StyleCapANSI); ansi {
		if fenced, ok := kind.(ansimd.FencedCodeBlock); ok && fenced.Language != "" {
			if settings.SyntaxSet != nil && settings.SyntaxSet.Resolves(fenced.Language) {
				return NestedState{
					ReturnTo: returnTo,
					Inner: HighlightBlockFrame{
						Indent:   indent,
						Language: fenced.Language,
					},
				}, nil
			}
		}
	}

	return NestedState{
		ReturnTo: returnTo,
		Inner: LiteralBlockFrame{
			Indent: indent,
			Style:  style.WithForeground(ansimd.Yellow),
		},
	}, nil
}
