// Package renders formats review results for the terminal.
package renders

import (
	"os"

	markdown "github.com/MichaelMure/go-term-markdown"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	leftPad      = 2
)

// RenderMarkdown renders markdown content for the current terminal,
// falling back to a fixed width when stdout is not a TTY.
func RenderMarkdown(content string) string {
	if content == "" {
		return ""
	}

	width := defaultWidth
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return string(markdown.Render(content, width, leftPad))
}
