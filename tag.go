package ansimd

// Tag identifies which block or inline construct a Start/End event pair
// brackets. It is a sealed interface over a closed set of variants; any
// Markdown extension not represented here (tables, footnotes, ...) is
// explicitly out of scope and rejected by the event producer in package
// mdevents.
type Tag interface {
	tag()
}

// Paragraph is a plain paragraph of inline content.
type Paragraph struct{}

func (Paragraph) tag() {}

// Heading is an ATX or Setext heading. Level is 1-6.
type Heading struct {
	Level int
}

func (Heading) tag() {}

// BlockQuote is a ">" quoted block.
type BlockQuote struct{}

func (BlockQuote) tag() {}

// CodeBlockKind distinguishes fenced code blocks (with an optional
// language token) from indented code blocks.
type CodeBlockKind interface {
	codeBlockKind()
}

// FencedCodeBlock is a ``` or ~~~ fenced block; Language is the info-string
// token (empty if none was given).
type FencedCodeBlock struct {
	Language string
}

func (FencedCodeBlock) codeBlockKind() {}

// IndentedCodeBlock is a four-space indented code block, which carries no
// language token and is never eligible for highlighting.
type IndentedCodeBlock struct{}

func (IndentedCodeBlock) codeBlockKind() {}

// CodeBlock is a fenced or indented code block.
type CodeBlock struct {
	Kind CodeBlockKind
}

func (CodeBlock) tag() {}

// List is an ordered or unordered list. Start is non-nil for an ordered
// list and holds its first item number; nil means unordered.
type List struct {
	Start *uint64
}

func (List) tag() {}

// Item is one list item inside an enclosing List.
type Item struct{}

func (Item) tag() {}

// Emphasis is single emphasis (italic in CommonMark's usual rendering).
type Emphasis struct{}

func (Emphasis) tag() {}

// Strong is strong emphasis (bold).
type Strong struct{}

func (Strong) tag() {}

// Strikethrough is GFM's "~~deleted~~" span.
type Strikethrough struct{}

func (Strikethrough) tag() {}

// LinkType distinguishes how a link or image was written in the source.
// It affects how End(Link) behaves (§4.1): autolinks and email links never
// emit a trailing reference marker because their text already equals their
// destination.
type LinkType int

const (
	LinkInline LinkType = iota
	LinkReference
	LinkAutolink
	LinkEmail
	LinkShortcut
	LinkCollapsed
)

func (t LinkType) String() string {
	switch t {
	case LinkInline:
		return "inline"
	case LinkReference:
		return "reference"
	case LinkAutolink:
		return "autolink"
	case LinkEmail:
		return "email"
	case LinkShortcut:
		return "shortcut"
	case LinkCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// Link is a hyperlink: Type records its source form, Destination its raw
// target as written, Title its optional title text.
type Link struct {
	Type        LinkType
	Destination string
	Title       string
}

func (Link) tag() {}

// Image is an inline image reference, identical in shape to Link.
type Image struct {
	Type        LinkType
	Destination string
	Title       string
}

func (Image) tag() {}

// Interface compliance checks.
var (
	_ Tag = Paragraph{}
	_ Tag = Heading{}
	_ Tag = BlockQuote{}
	_ Tag = CodeBlock{}
	_ Tag = List{}
	_ Tag = Item{}
	_ Tag = Emphasis{}
	_ Tag = Strong{}
	_ Tag = Strikethrough{}
	_ Tag = Link{}
	_ Tag = Image{}

	_ CodeBlockKind = FencedCodeBlock{}
	_ CodeBlockKind = IndentedCodeBlock{}
)
