// Package render is the CLI's display surface ( C11): an ASCII
// canvas rendering of a workspace's layout tree, and a table printer for the
// window listing, rather than the platform border overlay (C9)
// itself.
package render

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"
)

// Options controls how RenderTree draws a workspace.
type Options struct {
	UseUnicode bool
	TermWidth  int
	TermHeight int
}

var focusedColor = color.New(color.FgCyan, color.Bold)
var floatingColor = color.New(color.FgYellow)
var markedColor = color.New(color.FgMagenta)

// TerminalSize reports the current terminal's dimensions, falling back to
// 80x24 when stdout isn't a terminal.
func TerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// SupportsUnicode reports whether the environment's locale advertises UTF-8.
func SupportsUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")
	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}
