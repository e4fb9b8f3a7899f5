// SPDX-License-Identifier: MIT

// Package printer renders CLI output with optional colors.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes user-facing messages to out and errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	bold   *color.Color
}

// New returns a Printer. With useColor false every message is plain text.
func New(out, errOut io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.green, p.yellow, p.red, p.cyan, p.bold} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Success prints a message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	p.green.Fprint(p.out, msg)
}

// Info prints a plain message.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warning prints a message in yellow with a warning prefix.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	p.yellow.Fprint(p.out, msg)
}

// Step prints an emphasised step line.
func (p *Printer) Step(format string, a ...any) {
	p.cyan.Fprintf(p.out, "→ %s", fmt.Sprintf(format, a...))
}

// Field prints an indented "key: value" line with a bold key.
func (p *Printer) Field(key string, value any) {
	fmt.Fprintf(p.out, "  %s %v\n", p.bold.Sprint(key+":"), value)
}

// Error prints title, explanation and suggestions to errOut and returns an
// error carrying only the title, for cobra to report the exit status.
func (p *Printer) Error(title, explanation string, suggestions []string) error {
	p.red.Fprintf(p.errOut, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(p.errOut, "\n%s\n", explanation)
	}
	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(p.errOut, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(p.errOut, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, s)
		}
	}

	return fmt.Errorf("%s", title)
}
