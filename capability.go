package ansimd

import "io"

// StyleCap is a sealed tagged union over the engine's style-emission
// policy (§4.4). A flat closed set of variants, matched exhaustively by
// callers, is preferred here over an open interface hierarchy because the
// terminal either supports ANSI SGR styling or it doesn't — there is no
// third option to extend.
type StyleCap interface {
	styleCap()
}

// StyleCapNone renders plain text with no escape sequences at all.
type StyleCapNone struct{}

func (StyleCapNone) styleCap() {}

// StyleCapANSI wraps text in SGR escape sequences.
type StyleCapANSI struct{}

func (StyleCapANSI) styleCap() {}

// LinkCap selects how (or whether) hyperlinks are emitted.
type LinkCap interface {
	linkCap()
}

// LinkCapNone never emits a clickable hyperlink; the render state machine
// falls back to reference-style "[N]" markers.
type LinkCapNone struct{}

func (LinkCapNone) linkCap() {}

// LinkCapOSC8 emits OSC 8 open/close escape sequences around link text.
type LinkCapOSC8 struct{}

func (LinkCapOSC8) linkCap() {}

// MarkCap selects whether headings get a shell-integration mark.
type MarkCap interface {
	markCap()
}

// MarkCapNone emits no mark.
type MarkCapNone struct{}

func (MarkCapNone) markCap() {}

// MarkCapITerm2 emits an iTerm2 OSC 1337 SetMark before each top-level
// heading.
type MarkCapITerm2 struct{}

func (MarkCapITerm2) markCap() {}

// ImageCap selects which (if any) inline-image protocol the terminal
// understands.
type ImageCap interface {
	imageCap()
	// RenderInline attempts to render the image at url inline into sink,
	// constrained to size. It reports success; on failure the caller falls
	// back to the "(url)" annotation path (§4.1, §7).
	RenderInline(sink io.Writer, size TerminalSize, url string) bool
}

// ImageCapNone never renders images inline.
type ImageCapNone struct{}

func (ImageCapNone) imageCap() {}

// RenderInline always reports failure, so every image falls back to its
// trailing "(url)" annotation.
func (ImageCapNone) RenderInline(io.Writer, TerminalSize, string) bool { return false }

var (
	_ StyleCap = StyleCapNone{}
	_ StyleCap = StyleCapANSI{}
	_ LinkCap  = LinkCapNone{}
	_ LinkCap  = LinkCapOSC8{}
	_ MarkCap  = MarkCapNone{}
	_ MarkCap  = MarkCapITerm2{}
	_ ImageCap = ImageCapNone{}
)
