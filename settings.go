package ansimd

// TerminalSize carries the column/row dimensions used for rule and border
// widths and as the upper bound on inline image dimensions (§6).
type TerminalSize struct {
	Width  int
	Height int
}

// Capabilities groups the four independent terminal-feature axes the
// engine dispatches on (§4.4). Each axis is probed and set by the caller —
// terminal probing itself is out of scope (§2).
type Capabilities struct {
	Style StyleCap
	Link  LinkCap
	Mark  MarkCap
	Image ImageCap
}

// DefaultCapabilities assumes nothing about the terminal: every axis is
// the conservative "None" variant.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Style: StyleCapNone{},
		Link:  LinkCapNone{},
		Mark:  MarkCapNone{},
		Image: ImageCapNone{},
	}
}

// SyntaxSet resolves a fenced code block's language token to whatever a
// concrete Highlight Bridge needs to recognise it (§4.5, §6). The render
// engine only ever asks "do you know this token", never how the lookup
// works — that keeps the syntax-highlighting library fully behind the
// interface the spec requires.
type SyntaxSet interface {
	Resolves(token string) bool
}

// ResourceAccess filters which resolved URLs the engine is willing to
// fetch for inline images (§6, e.g. "local only").
type ResourceAccess interface {
	Permits(url string) bool
}

// AllowAll permits every resolved URL.
type AllowAll struct{}

// Permits always reports true.
func (AllowAll) Permits(string) bool { return true }

// Settings is the engine's full configuration (§6).
type Settings struct {
	TerminalSize   TerminalSize
	Capabilities   Capabilities
	SyntaxSet      SyntaxSet
	Theme          string
	ResourceAccess ResourceAccess
	BaseDir        string
}

// DefaultSettings returns conservative settings: an 80-column terminal, no
// terminal capabilities, no syntax set, and unrestricted resource access.
func DefaultSettings() Settings {
	return Settings{
		TerminalSize:   TerminalSize{Width: 80, Height: 24},
		Capabilities:   DefaultCapabilities(),
		Theme:          "monokai",
		ResourceAccess: AllowAll{},
		BaseDir:        ".",
	}
}
