package ansiterm

import (
	"fmt"

	"github.com/muesli/termenv"
)

// LinkAdapter renders clickable hyperlinks via OSC 8, the concrete
// backing for ansimd.LinkCapOSC8. It delegates the escape sequence itself
// to termenv, already part of the teacher's indirect dependency closure
// through bubbletea/lipgloss.
type LinkAdapter struct{}

// Render wraps text in an OSC 8 hyperlink pointing at url in one shot,
// for callers that have the link's full text available up front.
func (LinkAdapter) Render(url, text string) string {
	return termenv.Hyperlink(url, text)
}

// Open and Close split the OSC 8 escape sequence around an unknown amount
// of intervening styled output, mirroring the original renderer's
// osc8.set_link_url/clear_link pair: the render state machine opens a
// link at Start(Link) and closes it only once End(Link) is reached, with
// arbitrary inline markup emitted in between. termenv's own Hyperlink
// helper only wraps a complete string, so the open/close halves of its
// escape format are reproduced directly here.
func (LinkAdapter) Open(url string) string {
	return fmt.Sprintf("\x1b]8;;%s\x1b\\", url)
}

func (LinkAdapter) Close() string {
	return "\x1b]8;;\x1b\\"
}

// MarkAdapter emits an iTerm2 OSC 1337 SetMark before a top-level heading,
// the concrete backing for ansimd.MarkCapITerm2. No pack dependency wraps
// this proprietary iTerm2-only protocol, so the escape sequence is
// hand-written (documented in the design ledger).
type MarkAdapter struct{}

// Mark returns the raw OSC 1337 SetMark escape sequence.
func (MarkAdapter) Mark() string {
	return "\x1b]1337;SetMark\a"
}
