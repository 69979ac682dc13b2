// Package log prints coloured status messages for the solid CLI.
//
// Status messages go to stderr so stdout carries only demo narration.
package log

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var banner = color.New(color.FgCyan, color.Bold).FprintfFunc()

// Setup turns colour off when noColor is set or stdout is not a terminal.
func Setup(noColor bool) {
	color.NoColor = noColor || !term.IsTerminal(int(os.Stdout.Fd()))
}

// ErrorMsg prints an error message to stderr in red.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// Section writes a banner line announcing title.
func Section(w io.Writer, title string) {
	banner(w, "━━━ %s ━━━\n", title)
}
