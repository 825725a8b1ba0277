// Command mdcat renders a Markdown file to the terminal as styled ANSI
// text.
//
// Usage:
//
//	mdcat [flags] [file]
//
// With no file argument, mdcat reads from stdin.
//
// Flags:
//
//	-style string   Style capability: ansi, none (default "ansi")
//	-link string    Link capability: osc8, none (default "none")
//	-mark string    Mark capability: iterm2, none (default "none")
//	-image string   Image capability: iterm2, kitty, terminology, none (default "none")
//	-theme string   chroma syntax-highlighting theme name (default "monokai")
//	-base-dir string Base directory for resolving relative image/link paths (default ".")
//	-width int      Terminal width in columns (default 80)
//	-height int     Terminal height in rows (default 24)
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ansimd/ansimd"
	"github.com/ansimd/ansimd/ansiterm"
	"github.com/ansimd/ansimd/highlight"
	"github.com/ansimd/ansimd/mdevents"
	"github.com/ansimd/ansimd/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdcat: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		styleFlag = flag.String("style", "ansi", "Style capability: ansi, none")
		linkFlag  = flag.String("link", "none", "Link capability: osc8, none")
		markFlag  = flag.String("mark", "none", "Mark capability: iterm2, none")
		imageFlag = flag.String("image", "none", "Image capability: iterm2, kitty, terminology, none")
		theme     = flag.String("theme", "monokai", "chroma syntax-highlighting theme name")
		baseDir   = flag.String("base-dir", ".", "Base directory for resolving relative image/link paths")
		width     = flag.Int("width", 80, "Terminal width in columns")
		height    = flag.Int("height", 24, "Terminal height in rows")
	)
	flag.Parse()

	source, err := readSource(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	events, err := mdevents.New().Parse(source)
	if err != nil {
		return fmt.Errorf("parse markdown: %w", err)
	}

	styleCap, err := resolveStyleCap(*styleFlag)
	if err != nil {
		return err
	}
	linkCap, err := resolveLinkCap(*linkFlag)
	if err != nil {
		return err
	}
	markCap, err := resolveMarkCap(*markFlag)
	if err != nil {
		return err
	}
	imageCap, err := resolveImageCap(*imageFlag)
	if err != nil {
		return err
	}

	bridge := highlight.New(*theme)
	settings := ansimd.Settings{
		TerminalSize: ansimd.TerminalSize{Width: *width, Height: *height},
		Capabilities: ansimd.Capabilities{
			Style: styleCap,
			Link:  linkCap,
			Mark:  markCap,
			Image: imageCap,
		},
		SyntaxSet:      bridge,
		Theme:          *theme,
		ResourceAccess: ansimd.AllowAll{},
		BaseDir:        *baseDir,
	}

	driver := render.New(os.Stdout, settings, bridge)
	return driver.Run(events)
}

func readSource(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func resolveStyleCap(name string) (ansimd.StyleCap, error) {
	switch name {
	case "ansi":
		return ansimd.StyleCapANSI{}, nil
	case "none":
		return ansimd.StyleCapNone{}, nil
	default:
		return nil, fmt.Errorf("unknown -style %q", name)
	}
}

func resolveLinkCap(name string) (ansimd.LinkCap, error) {
	switch name {
	case "osc8":
		return ansimd.LinkCapOSC8{}, nil
	case "none":
		return ansimd.LinkCapNone{}, nil
	default:
		return nil, fmt.Errorf("unknown -link %q", name)
	}
}

func resolveMarkCap(name string) (ansimd.MarkCap, error) {
	switch name {
	case "iterm2":
		return ansimd.MarkCapITerm2{}, nil
	case "none":
		return ansimd.MarkCapNone{}, nil
	default:
		return nil, fmt.Errorf("unknown -mark %q", name)
	}
}

func resolveImageCap(name string) (ansimd.ImageCap, error) {
	switch name {
	case "iterm2":
		return ansiterm.ITerm2ImageAdapter{}, nil
	case "kitty":
		return ansiterm.KittyImageAdapter{}, nil
	case "terminology":
		return ansiterm.TerminologyImageAdapter{}, nil
	case "none":
		return ansimd.ImageCapNone{}, nil
	default:
		return nil, fmt.Errorf("unknown -image %q", name)
	}
}
