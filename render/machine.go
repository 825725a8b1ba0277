package render

import (
	"fmt"
	"io"

	"github.com/ansimd/ansimd"
	"github.com/mattn/go-runewidth"
)

// headingMark is the dotted glyph prefixed to a heading's text, one rune
// per level (an ATX "###" becomes three of these). U+2504 is the same
// "BOX DRAWINGS LIGHT TRIPLE DASH HORIZONTAL" rune the original renderer
// uses for this purpose.
const headingMarkRune = '┄'

func headingMark(level int) string {
	runes := make([]rune, level)
	for i := range runes {
		runes[i] = headingMarkRune
	}
	return string(runes)
}

// impossible mirrors the original renderer's catch-all panic for a
// (state, event) pair that cannot occur for any well-formed input stream.
// Driver.Run recovers this panic and turns it back into a Go error
// (§7, the "fatal unsupported construct" Open Question decision recorded
// in SPEC_FULL.md), preserving the original's fail-fast intent without
// forcing every caller to handle an unrecoverable condition as a
// first-class return value.
func impossible(state State, event ansimd.Event) State {
	panic(fmt.Errorf("%w: %#v in state %#v", ansimd.ErrImpossibleTransition, event, state))
}

// step is the total transition function over (State, Event) pairs
// (§4.1). It writes styled, indented output to w as a side effect and
// threads the link registry and supplied settings/highlighter through
// every call. It is grounded line-for-line on write_event in the original
// renderer's render/mod.rs, generalised from pulldown-cmark's borrowed
// Event<'a> to ansimd.Event and from syntect to an ansimd.HighlightBridge.
func step(
	w io.Writer,
	settings ansimd.Settings,
	bridge ansimd.HighlightBridge,
	links *ansimd.LinkRegistry,
	state State,
	event ansimd.Event,
) State {
	caps := settings.Capabilities

	switch s := state.(type) {
	case TopLevelState:
		switch e := event.(type) {
		case ansimd.Start:
			switch tag := e.Tag.(type) {
			case ansimd.Paragraph:
				mustWriteln(w, s.MarginBefore != NoMargin)
				return NestedState{
					ReturnTo: TopLevelState{MarginBefore: Margin},
					Inner:    InlineFrame{Sub: InlineText, Style: ansimd.DefaultStyle()},
				}
			case ansimd.Heading:
				must(writeLinkRefs(w, caps, links.Drain()))
				mustWriteln(w, s.MarginBefore != NoMargin)
				must(writeMark(w, caps))
				style := ansimd.DefaultStyle().WithForeground(ansimd.Blue).WithBold()
				must(writeStyled(w, caps, style, headingMark(tag.Level)))
				return NestedState{
					ReturnTo: TopLevelState{MarginBefore: Margin},
					Inner:    InlineFrame{Sub: InlineText, Style: style},
				}
			case ansimd.BlockQuote:
				mustWriteln(w, s.MarginBefore != NoMargin)
				return NestedState{
					ReturnTo: TopLevelState{MarginBefore: Margin},
					Inner: StyledBlockFrame{
						MarginBefore: NoMargin,
						Style:        ansimd.DefaultStyle().WithItalicToggled().WithForeground(ansimd.Green),
						Indent:       4,
					},
				}
			case ansimd.CodeBlock:
				mustWriteln(w, s.MarginBefore != NoMargin)
				return mustState(writeStartCodeBlock(w, settings, TopLevelState{MarginBefore: Margin}, 0, ansimd.DefaultStyle(), tag.Kind))
			case ansimd.List:
				mustWriteln(w, s.MarginBefore != NoMargin)
				return NestedState{
					ReturnTo: TopLevelState{MarginBefore: Margin},
					Inner:    ListBlockFrame{ItemType: listItemType(tag.Start), Style: ansimd.DefaultStyle()},
				}
			}
		case ansimd.Rule:
			mustWriteln(w, s.MarginBefore != NoMargin)
			must(writeRule(w, caps, settings.TerminalSize.Width))
			mustWriteln(w, true)
			return TopLevelState{MarginBefore: Margin}
		case ansimd.Html:
			mustWriteln(w, s.MarginBefore == Margin)
			must(writeStyled(w, caps, ansimd.DefaultStyle().WithForeground(ansimd.Green), e.Value))
			return TopLevelState{MarginBefore: NoMarginForHTMLOnly}
		}

	case NestedState:
		switch inner := s.Inner.(type) {
		case StyledBlockFrame:
			return stepStyledBlock(w, settings, s.ReturnTo, inner, event)
		case ListBlockFrame:
			return stepListBlock(w, settings, s.ReturnTo, inner, event)
		case LiteralBlockFrame:
			return stepLiteralBlock(w, settings, s.ReturnTo, inner, event)
		case HighlightBlockFrame:
			return stepHighlightBlock(w, settings, bridge, s.ReturnTo, inner, event)
		case InlineFrame:
			return stepInline(w, settings, links, s.ReturnTo, inner, event)
		}
	}

	return impossible(state, event)
}

func stepStyledBlock(w io.Writer, settings ansimd.Settings, returnTo State, attrs StyledBlockFrame, event ansimd.Event) State {
	caps := settings.Capabilities
	switch e := event.(type) {
	case ansimd.Start:
		switch tag := e.Tag.(type) {
		case ansimd.Paragraph:
			mustWriteln(w, attrs.MarginBefore != NoMargin)
			must(writeIndent(w, attrs.Indent))
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs.withMarginBefore()},
				Inner:    InlineFrame{Sub: InlineText, Style: attrs.Style, Indent: attrs.Indent},
			}
		case ansimd.Heading:
			mustWriteln(w, attrs.MarginBefore != NoMargin)
			must(writeIndent(w, attrs.Indent))
			// Nested headings are deliberately not marked (§4.1): marks are a
			// top-level-only affordance.
			style := attrs.Style.WithBold()
			must(writeStyled(w, caps, style, headingMark(tag.Level)))
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs.withMarginBefore()},
				Inner:    InlineFrame{Sub: InlineText, Style: style, Indent: attrs.Indent},
			}
		case ansimd.List:
			mustWriteln(w, attrs.MarginBefore != NoMargin)
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs},
				Inner:    ListBlockFrame{ItemType: listItemType(tag.Start), Style: attrs.Style, Indent: attrs.Indent},
			}
		case ansimd.CodeBlock:
			mustWriteln(w, attrs.MarginBefore != NoMargin)
			return mustState(writeStartCodeBlock(w, settings, NestedState{ReturnTo: returnTo, Inner: attrs}, attrs.Indent, attrs.Style, tag.Kind))
		}
	case ansimd.Rule:
		mustWriteln(w, attrs.MarginBefore != NoMargin)
		must(writeIndent(w, attrs.Indent))
		must(writeRule(w, caps, settings.TerminalSize.Width-attrs.Indent))
		mustWriteln(w, true)
		return NestedState{ReturnTo: returnTo, Inner: attrs.withMarginBefore()}
	case ansimd.Html:
		mustWriteln(w, attrs.MarginBefore == Margin)
		must(writeIndent(w, attrs.Indent))
		must(writeStyled(w, caps, attrs.Style.WithForeground(ansimd.Green), e.Value))
		return NestedState{ReturnTo: returnTo, Inner: attrs.withoutMarginForHTMLOnly()}
	case ansimd.End:
		if _, ok := e.Tag.(ansimd.Item); ok {
			return returnTo
		}
		if _, ok := e.Tag.(ansimd.BlockQuote); ok {
			return returnTo
		}
	}
	return impossible(NestedState{ReturnTo: returnTo, Inner: attrs}, event)
}

func stepListBlock(w io.Writer, settings ansimd.Settings, returnTo State, attrs ListBlockFrame, event ansimd.Event) State {
	switch e := event.(type) {
	case ansimd.Start:
		if _, ok := e.Tag.(ansimd.Item); ok {
			mustWriteln(w, attrs.NewlineBefore)
			must(writeIndent(w, attrs.Indent))
			indent := attrs.Indent
			switch t := attrs.ItemType; {
			case t.Ordered:
				bullet := fmt.Sprintf("%2d. ", t.Number)
				must(writeRaw(w, bullet))
				indent += runewidth.StringWidth(bullet)
			default:
				const bullet = "• "
				must(writeRaw(w, bullet))
				indent += runewidth.StringWidth(bullet)
			}
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs.nextItem()},
				Inner:    InlineFrame{Sub: ListItemText, Style: attrs.Style, Indent: indent},
			}
		}
	case ansimd.End:
		if _, ok := e.Tag.(ansimd.List); ok {
			must(writelnReturningToTopLevel(w, returnTo))
			return returnTo
		}
	}
	return impossible(NestedState{ReturnTo: returnTo, Inner: attrs}, event)
}

func stepLiteralBlock(w io.Writer, settings ansimd.Settings, returnTo State, attrs LiteralBlockFrame, event ansimd.Event) State {
	caps := settings.Capabilities
	switch e := event.(type) {
	case ansimd.Text:
		writeLiteralLines(w, caps, attrs.Style, attrs.Indent, e.Value)
		return NestedState{ReturnTo: returnTo, Inner: attrs}
	case ansimd.End:
		if _, ok := e.Tag.(ansimd.CodeBlock); ok {
			must(writeBorder(w, caps, settings.TerminalSize))
			return returnTo
		}
	}
	return impossible(NestedState{ReturnTo: returnTo, Inner: attrs}, event)
}

// writeLiteralLines writes text a line at a time, re-indenting after every
// embedded newline, grounded on the LinesWithEndings loop in the original
// renderer's literal-block Text handler.
func writeLiteralLines(w io.Writer, caps ansimd.Capabilities, style ansimd.Style, indent int, text string) {
	for _, line := range splitLinesWithEndings(text) {
		must(writeStyled(w, caps, style, line))
		if endsWithNewline(line) {
			must(writeIndent(w, indent))
		}
	}
}

func stepHighlightBlock(
	w io.Writer,
	settings ansimd.Settings,
	bridge ansimd.HighlightBridge,
	returnTo State,
	attrs HighlightBlockFrame,
	event ansimd.Event,
) State {
	caps := settings.Capabilities
	switch e := event.(type) {
	case ansimd.Text:
		attrs.Source += e.Value
		return NestedState{ReturnTo: returnTo, Inner: attrs}
	case ansimd.End:
		if _, ok := e.Tag.(ansimd.CodeBlock); ok {
			writeHighlighted(w, caps, bridge, attrs)
			must(writeBorder(w, caps, settings.TerminalSize))
			return returnTo
		}
	}
	return impossible(NestedState{ReturnTo: returnTo, Inner: attrs}, event)
}

// writeHighlighted tokenises the full accumulated block source in one
// shot (§4.5: chroma, unlike syntect, is not line-incremental) and writes
// each resulting line with a re-indent in between (and after the last line
// when the source ends with a newline), falling back to yellow literal
// lines if no bridge is configured or the bridge reports failure after
// all — the latter can only happen if the syntax set resolved a token the
// bridge itself does not recognise, which should not occur but is handled
// rather than panicking mid-document.
func writeHighlighted(w io.Writer, caps ansimd.Capabilities, bridge ansimd.HighlightBridge, attrs HighlightBlockFrame) {
	var lines []ansimd.HighlightedLine
	ok := false
	if bridge != nil {
		lines, ok = bridge.Highlight(attrs.Language, attrs.Source)
	}
	if !ok {
		writeLiteralLines(w, caps, ansimd.DefaultStyle().WithForeground(ansimd.Yellow), attrs.Indent, attrs.Source)
		return
	}
	for i, line := range lines {
		if i > 0 {
			mustWriteln(w, true)
			must(writeIndent(w, attrs.Indent))
		}
		for _, span := range line.Spans {
			must(writeStyled(w, caps, span.Style, span.Text))
		}
	}
	if endsWithNewline(attrs.Source) {
		mustWriteln(w, true)
		must(writeIndent(w, attrs.Indent))
	}
}

func stepInline(
	w io.Writer,
	settings ansimd.Settings,
	links *ansimd.LinkRegistry,
	returnTo State,
	attrs InlineFrame,
	event ansimd.Event,
) State {
	caps := settings.Capabilities
	switch e := event.(type) {
	case ansimd.Start:
		// A list item's lead-in text can fall straight back to block level —
		// a loose item's paragraph, a nested list, a code block — without an
		// intervening End(Item). These three cases get no output of their
		// own beyond what the block-level handler writes, grounded on the
		// "Inside list items" section of the original renderer's mod.rs.
		if attrs.Sub == ListItemText {
			switch tag := e.Tag.(type) {
			case ansimd.Paragraph:
				return NestedState{
					ReturnTo: NestedState{ReturnTo: returnTo, Inner: StyledBlockFrame{MarginBefore: Margin, Style: attrs.Style, Indent: attrs.Indent}},
					Inner:    InlineFrame{Sub: InlineText, Style: attrs.Style, Indent: attrs.Indent},
				}
			case ansimd.List:
				mustWriteln(w, true)
				return NestedState{
					ReturnTo: NestedState{ReturnTo: returnTo, Inner: StyledBlockFrame{MarginBefore: Margin, Style: attrs.Style, Indent: attrs.Indent}},
					Inner:    ListBlockFrame{ItemType: listItemType(tag.Start), Indent: attrs.Indent, Style: attrs.Style},
				}
			case ansimd.CodeBlock:
				mustWriteln(w, true)
				return mustState(writeStartCodeBlock(
					w, settings,
					NestedState{ReturnTo: returnTo, Inner: StyledBlockFrame{MarginBefore: Margin, Style: attrs.Style, Indent: attrs.Indent}},
					attrs.Indent, attrs.Style, tag.Kind,
				))
			}
		}
		switch tag := e.Tag.(type) {
		case ansimd.Emphasis:
			style := attrs.Style.WithItalicToggled()
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs},
				Inner:    InlineFrame{Sub: InlineText, Style: style, Indent: attrs.Indent},
			}
		case ansimd.Strong:
			style := attrs.Style.WithBold()
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs},
				Inner:    InlineFrame{Sub: InlineText, Style: style, Indent: attrs.Indent},
			}
		case ansimd.Strikethrough:
			style := attrs.Style.WithStrikethrough()
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs},
				Inner:    InlineFrame{Sub: InlineText, Style: style, Indent: attrs.Indent},
			}
		case ansimd.Link:
			// Valid from any inline substate, including ListItemText: a
			// tight list item's lead-in text may start directly with a
			// link, not only after emphasis/strong has already switched it
			// to InlineText.
			style := attrs.Style.WithForeground(ansimd.Blue)
			if _, osc8 := caps.Link.(ansimd.LinkCapOSC8); osc8 {
				if resolved, ok := ansimd.ResolveReference(tag.Destination, settings.BaseDir); ok {
					must(writeLinkOpen(w, resolved.String()))
					return NestedState{
						ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs},
						Inner:    InlineFrame{Sub: InlineLink, Style: style, Indent: attrs.Indent},
					}
				}
			}
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs},
				Inner:    InlineFrame{Sub: InlineText, Style: style, Indent: attrs.Indent},
			}
		case ansimd.Image:
			success := false
			if resolved, ok := ansimd.ResolveReference(tag.Destination, settings.BaseDir); ok {
				resolvedURL := resolved.String()
				if settings.ResourceAccess == nil || settings.ResourceAccess.Permits(resolvedURL) {
					success = caps.Image.RenderInline(w, settings.TerminalSize, resolvedURL)
				}
			}
			return NestedState{
				ReturnTo: NestedState{ReturnTo: returnTo, Inner: attrs},
				Inner:    InlineFrame{Sub: attrs.Sub, Style: attrs.Style, Indent: attrs.Indent, Suppressed: success},
			}
		}
	case ansimd.End:
		switch tag := e.Tag.(type) {
		case ansimd.Emphasis, ansimd.Strong, ansimd.Strikethrough:
			return returnTo
		case ansimd.Link:
			switch attrs.Sub {
			case InlineLink:
				must(writeLinkClose(w))
				return returnTo
			default:
				if tag.Type == ansimd.LinkAutolink || tag.Type == ansimd.LinkEmail {
					return returnTo
				}
				index := links.Add(tag.Destination, tag.Title)
				must(writeStyled(w, caps, attrs.Style.WithForeground(ansimd.Blue), fmt.Sprintf("[%d]", index)))
				return returnTo
			}
		case ansimd.Image:
			if !attrs.Suppressed {
				must(writeStyled(w, caps, attrs.Style.WithForeground(ansimd.Blue), fmt.Sprintf(" (%s)", tag.Destination)))
			}
			return returnTo
		case ansimd.Item:
			if attrs.Sub == ListItemText {
				return returnTo
			}
		case ansimd.Paragraph, ansimd.Heading:
			mustWriteln(w, true)
			return returnTo
		}
	case ansimd.Code:
		must(writeStyled(w, caps, attrs.Style.WithForeground(ansimd.Yellow), e.Value))
		return NestedState{ReturnTo: returnTo, Inner: attrs}
	case ansimd.TaskListMarker:
		if attrs.Sub != ListItemText {
			break
		}
		marker := "☐ "
		if e.Checked {
			marker = "☑ "
		}
		must(writeStyled(w, caps, attrs.Style, marker))
		return NestedState{ReturnTo: returnTo, Inner: attrs}
	case ansimd.SoftBreak, ansimd.HardBreak:
		mustWriteln(w, true)
		must(writeIndent(w, attrs.Indent))
		return NestedState{ReturnTo: returnTo, Inner: attrs}
	case ansimd.Text:
		if !attrs.Suppressed {
			must(writeStyled(w, caps, attrs.Style, e.Value))
		}
		return NestedState{ReturnTo: returnTo, Inner: attrs}
	case ansimd.Html:
		must(writeStyled(w, caps, attrs.Style.WithForeground(ansimd.Green), e.Value))
		return NestedState{ReturnTo: returnTo, Inner: attrs}
	case ansimd.Rule:
		if attrs.Sub != ListItemText {
			break
		}
		// A rule shouldn't go beneath the list item's bullet.
		mustWriteln(w, true)
		must(writeIndent(w, attrs.Indent))
		must(writeRule(w, caps, settings.TerminalSize.Width-attrs.Indent))
		mustWriteln(w, true)
		return NestedState{
			ReturnTo: returnTo,
			Inner:    StyledBlockFrame{MarginBefore: Margin, Style: attrs.Style, Indent: attrs.Indent},
		}
	}
	return impossible(NestedState{ReturnTo: returnTo, Inner: attrs}, event)
}

func writeLinkOpen(w io.Writer, url string) error {
	_, err := io.WriteString(w, linkAdapterOpen(url))
	return err
}

func writeLinkClose(w io.Writer) error {
	_, err := io.WriteString(w, linkAdapterClose())
	return err
}

func listItemType(start *uint64) ListItemType {
	if start == nil {
		return ListItemType{Ordered: false}
	}
	return ListItemType{Ordered: true, Number: *start}
}

func writeRaw(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustWriteln(w io.Writer, write bool) {
	if !write {
		return
	}
	must(writeRaw(w, "\n"))
}

func mustState(state State, err error) State {
	must(err)
	return state
}
