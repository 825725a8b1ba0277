// Package mdevents adapts goldmark's tree-based parser into the flat
// ansimd.Event stream the render state machine consumes. It is grounded
// on the teacher's goldmark/renderer.go, whose walkBlock/renderBlock and
// collectInline/renderInline tree-walk this package generalises from
// "render directly to a lipgloss-styled string" into "emit one event per
// node boundary" — the AST-to-stream translation the spec calls out as
// the one piece a pull-based parser would give for free.
package mdevents

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ansimd/ansimd"
)

// Producer parses CommonMark (plus GFM strikethrough and task lists) and
// emits an ansimd.Event stream. Tables and footnotes are never enabled
// (§2 Non-goals), so source containing that syntax is simply parsed as
// plain paragraphs rather than rejected — there is no table/footnote AST
// node for the walker to ever encounter.
type Producer struct {
	md goldmark.Markdown
}

// New returns a Producer configured with the extensions the spec's Tag
// set actually covers: GFM strikethrough and task-list checkboxes.
func New() *Producer {
	return &Producer{md: goldmark.New(goldmark.WithExtensions(
		extension.Strikethrough,
		extension.TaskList,
	))}
}

// Parse walks source's parse tree and returns the equivalent flat event
// stream, or an error wrapping ansimd.ErrUnsupportedConstruct if the tree
// contains a node kind the walker does not recognise.
func (p *Producer) Parse(source []byte) ([]ansimd.Event, error) {
	reader := text.NewReader(source)
	doc := p.md.Parser().Parse(reader)

	w := &walker{source: source}
	if err := w.walkBlocks(doc); err != nil {
		return nil, err
	}
	return w.events, nil
}

type walker struct {
	source []byte
	events []ansimd.Event
}

func (w *walker) emit(e ansimd.Event) {
	w.events = append(w.events, e)
}

func (w *walker) walkBlocks(parent ast.Node) error {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if err := w.walkBlock(c); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkBlock(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Paragraph:
		w.emit(ansimd.Start{Tag: ansimd.Paragraph{}})
		if err := w.walkInlines(n); err != nil {
			return err
		}
		w.emit(ansimd.End{Tag: ansimd.Paragraph{}})

	case *ast.TextBlock:
		// A tight list item's lead-in text: no Paragraph wrapper at all
		// (§4.1's ListItemText inline substate receives these events
		// directly, without an intervening block transition).
		return w.walkInlines(n)

	case *ast.Heading:
		tag := ansimd.Heading{Level: n.Level}
		w.emit(ansimd.Start{Tag: tag})
		if err := w.walkInlines(n); err != nil {
			return err
		}
		w.emit(ansimd.End{Tag: tag})

	case *ast.Blockquote:
		w.emit(ansimd.Start{Tag: ansimd.BlockQuote{}})
		if err := w.walkBlocks(n); err != nil {
			return err
		}
		w.emit(ansimd.End{Tag: ansimd.BlockQuote{}})

	case *ast.FencedCodeBlock:
		kind := ansimd.FencedCodeBlock{Language: string(n.Language(w.source))}
		w.emit(ansimd.Start{Tag: ansimd.CodeBlock{Kind: kind}})
		w.emitCode(n.Lines())
		w.emit(ansimd.End{Tag: ansimd.CodeBlock{Kind: kind}})

	case *ast.CodeBlock:
		kind := ansimd.IndentedCodeBlock{}
		w.emit(ansimd.Start{Tag: ansimd.CodeBlock{Kind: kind}})
		w.emitCode(n.Lines())
		w.emit(ansimd.End{Tag: ansimd.CodeBlock{Kind: kind}})

	case *ast.List:
		tag := w.listTag(n)
		w.emit(ansimd.Start{Tag: tag})
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			item, ok := c.(*ast.ListItem)
			if !ok {
				continue
			}
			w.emit(ansimd.Start{Tag: ansimd.Item{}})
			if err := w.walkListItem(item); err != nil {
				return err
			}
			w.emit(ansimd.End{Tag: ansimd.Item{}})
		}
		w.emit(ansimd.End{Tag: tag})

	case *ast.ThematicBreak:
		w.emit(ansimd.Rule{})

	case *ast.HTMLBlock:
		var buf bytes.Buffer
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(w.source))
		}
		w.emit(ansimd.Html{Value: buf.String()})

	default:
		return fmt.Errorf("%w: block node %T", ansimd.ErrUnsupportedConstruct, node)
	}
	return nil
}

// walkListItem walks an item's block children. A task-list checkbox, if
// present, surfaces as an *extast.TaskCheckBox inline node inside the
// item's first paragraph/text-block child and is handled by walkInline
// like any other inline node.
func (w *walker) walkListItem(item *ast.ListItem) error {
	return w.walkBlocks(item)
}

func (w *walker) listTag(n *ast.List) ansimd.List {
	if !n.IsOrdered() {
		return ansimd.List{}
	}
	start := uint64(n.Start)
	return ansimd.List{Start: &start}
}

// emitCode emits a code block's raw body as a single Text event (not
// Code — that event is reserved for inline code spans, §3 Event entity).
// The render state machine's LiteralBlockFrame/HighlightBlockFrame
// handlers split this text on embedded newlines themselves.
func (w *walker) emitCode(lines *text.Segments) {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(w.source))
	}
	w.emit(ansimd.Text{Value: buf.String()})
}

func (w *walker) walkInlines(parent ast.Node) error {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if err := w.walkInline(c); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkInline(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Text:
		value := string(n.Segment.Value(w.source))
		if value != "" {
			w.emit(ansimd.Text{Value: value})
		}
		switch {
		case n.HardLineBreak():
			w.emit(ansimd.HardBreak{})
		case n.SoftLineBreak():
			w.emit(ansimd.SoftBreak{})
		}

	case *ast.String:
		w.emit(ansimd.Text{Value: string(n.Value)})

	case *ast.Emphasis:
		tag := emphasisTag(n.Level)
		w.emit(ansimd.Start{Tag: tag})
		if err := w.walkInlines(n); err != nil {
			return err
		}
		w.emit(ansimd.End{Tag: tag})

	case *ast.CodeSpan:
		var buf bytes.Buffer
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Segment.Value(w.source))
			}
		}
		w.emit(ansimd.Code{Value: buf.String()})

	case *ast.Link:
		tag := ansimd.Link{
			Type:        ansimd.LinkInline,
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}
		w.emit(ansimd.Start{Tag: tag})
		if err := w.walkInlines(n); err != nil {
			return err
		}
		w.emit(ansimd.End{Tag: tag})

	case *ast.AutoLink:
		url := string(n.URL(w.source))
		linkType := ansimd.LinkAutolink
		if n.AutoLinkType == ast.AutoLinkEmail {
			linkType = ansimd.LinkEmail
		}
		tag := ansimd.Link{Type: linkType, Destination: url}
		w.emit(ansimd.Start{Tag: tag})
		w.emit(ansimd.Text{Value: url})
		w.emit(ansimd.End{Tag: tag})

	case *ast.Image:
		tag := ansimd.Image{
			Type:        ansimd.LinkInline,
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}
		w.emit(ansimd.Start{Tag: tag})
		if err := w.walkInlines(n); err != nil {
			return err
		}
		w.emit(ansimd.End{Tag: tag})

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(w.source))
		}
		w.emit(ansimd.Html{Value: buf.String()})

	case *extast.Strikethrough:
		tag := ansimd.Strikethrough{}
		w.emit(ansimd.Start{Tag: tag})
		if err := w.walkInlines(n); err != nil {
			return err
		}
		w.emit(ansimd.End{Tag: tag})

	case *extast.TaskCheckBox:
		w.emit(ansimd.TaskListMarker{Checked: n.IsChecked})

	default:
		return fmt.Errorf("%w: inline node %T", ansimd.ErrUnsupportedConstruct, node)
	}
	return nil
}

// emphasisTag maps goldmark's emphasis level (1 = "*x*", 2 = "**x**") onto
// the two distinct tags the engine understands. Goldmark represents
// "***x***" as nested level-1-inside-level-2 Emphasis nodes, so no level
// above 2 is ever produced (grounded on the same observation in the
// teacher's goldmark/renderer.go renderInline).
func emphasisTag(level int) ansimd.Tag {
	if level >= 2 {
		return ansimd.Strong{}
	}
	return ansimd.Emphasis{}
}
