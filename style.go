package ansimd

// Color is an ANSI SGR color. NoColor leaves the terminal's default color
// untouched, matching the teacher's convention of a negative sentinel index
// meaning "don't touch this attribute" (see its Theme.ansiColor helper).
type Color int

const (
	NoColor Color = -1
	Black   Color = 0
	Red     Color = 1
	Green   Color = 2
	Yellow  Color = 3
	Blue    Color = 4
	Magenta Color = 5
	Cyan    Color = 6
	White   Color = 7
)

// RGB is a true-color override, used by the syntax-highlighting bridge
// (§4.5) where a chroma theme specifies exact pixel colors rather than one
// of the 8 base ANSI colors.
type RGB struct {
	R, G, B uint8
}

// Style is a composable visual style record (§3 Style entity). A child
// style extends its parent: each With* builder returns a copy with one
// attribute changed, leaving everything else inherited. ForegroundRGB, when
// non-nil, takes precedence over Foreground for capability adapters that
// understand true color.
type Style struct {
	Foreground    Color
	Background    Color
	ForegroundRGB *RGB
	Bold          bool
	Italic        bool
	Strikethrough bool
}

// DefaultStyle is the style in effect at TopLevel, before any inline markup
// has pushed a frame.
func DefaultStyle() Style {
	return Style{Foreground: NoColor, Background: NoColor}
}

// WithForeground returns a copy of s with its foreground color replaced.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBold returns a copy of s with bold set.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// WithItalicToggled returns a copy of s with italic flipped. Nested
// emphasis toggles back to upright per §4.1's Style propagation rule.
func (s Style) WithItalicToggled() Style {
	s.Italic = !s.Italic
	return s
}

// WithStrikethrough returns a copy of s with strikethrough set.
func (s Style) WithStrikethrough() Style {
	s.Strikethrough = true
	return s
}

// WithForegroundRGB returns a copy of s with a true-color foreground
// override.
func (s Style) WithForegroundRGB(rgb RGB) Style {
	s.ForegroundRGB = &rgb
	return s
}
