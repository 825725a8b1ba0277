// Package ansiterm implements the concrete Capability Adapters (§4.4):
// StyleAdapter, LinkAdapter, MarkAdapter and the per-protocol ImageAdapter
// variants. It is grounded on the teacher's bubbletea/styles.go, which
// maps a pipe.Theme's ANSI color indices onto lipgloss.Style values via
// the same ansiColor(int) -> lipgloss.TerminalColor helper generalised
// here to ansimd.Style.
package ansiterm

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ansimd/ansimd"
)

// StyleAdapter renders an ansimd.Style through lipgloss, the concrete
// backing for ansimd.StyleCapANSI.
type StyleAdapter struct{}

// renderer has its color profile fixed to true color, so the escape
// sequences emitted do not depend on whether the process's stdout is a
// terminal.
var renderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}()

// Render returns text wrapped in the SGR escape sequences implied by
// style, or text unchanged if style carries no attributes.
func (StyleAdapter) Render(style ansimd.Style, text string) string {
	return renderer.NewStyle().
		Foreground(terminalColor(style)).
		Bold(style.Bold).
		Italic(style.Italic).
		Strikethrough(style.Strikethrough).
		Render(text)
}

func terminalColor(style ansimd.Style) lipgloss.TerminalColor {
	if style.ForegroundRGB != nil {
		return lipgloss.Color(rgbHex(*style.ForegroundRGB))
	}
	return ansiColor(style.Foreground)
}

func ansiColor(c ansimd.Color) lipgloss.TerminalColor {
	if c == ansimd.NoColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(int(c)))
}

func rgbHex(rgb ansimd.RGB) string {
	const hexDigits = "0123456789abcdef"
	buf := [7]byte{'#'}
	put := func(off int, v uint8) {
		buf[off] = hexDigits[v>>4]
		buf[off+1] = hexDigits[v&0xf]
	}
	put(1, rgb.R)
	put(3, rgb.G)
	put(5, rgb.B)
	return string(buf[:])
}
