package render

import (
	"strings"

	"github.com/ansimd/ansimd/ansiterm"
)

// splitLinesWithEndings splits text into lines that retain their trailing
// newline (if any), mirroring syntect's LinesWithEndings iterator used by
// the original renderer's literal-block Text handler — re-indenting must
// happen once per embedded newline, not once per logical line, since the
// final line of a chunk is usually not newline-terminated.
func splitLinesWithEndings(text string) []string {
	var lines []string
	for len(text) > 0 {
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			lines = append(lines, text[:idx+1])
			text = text[idx+1:]
			continue
		}
		lines = append(lines, text)
		break
	}
	return lines
}

func endsWithNewline(line string) bool {
	return strings.HasSuffix(line, "\n")
}

func linkAdapterOpen(url string) string {
	return ansiterm.LinkAdapter{}.Open(url)
}

func linkAdapterClose() string {
	return ansiterm.LinkAdapter{}.Close()
}
