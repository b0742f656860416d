// Package diag renders semantic.Diagnostic values as one-line
// "file:line:col: severity: message" text, with an ANSI-colored severity
// tag when the output stream is a color-capable terminal.
package diag

import (
	"fmt"
	"strings"

	"github.com/Scoutboy06/tsc-go/internal/semantic"
)

// LineCol converts a byte offset into a 1-indexed (line, column) pair.
func LineCol(source string, offset int) (line, col int) {
	line = 1
	col = 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// Format renders one diagnostic as a single line, `useColor` controlling
// whether the severity tag is wrapped in ANSI color codes.
func Format(file, source string, d semantic.Diagnostic, useColor bool) string {
	line, col := LineCol(source, d.Span.Start)
	sev := severityTag(d.Severity, useColor)
	return fmt.Sprintf("%s:%d:%d: %s: %s", file, line, col, sev, d.Message())
}

func severityTag(sev semantic.Severity, useColor bool) string {
	var tag, color string
	switch sev {
	case semantic.Critical:
		tag, color = "error", "\x1b[31m"
	default:
		tag, color = "warning", "\x1b[33m"
	}
	if !useColor {
		return tag
	}
	return color + tag + "\x1b[0m"
}

// FormatAll renders every diagnostic in order, one per line.
func FormatAll(file, source string, diags []semantic.Diagnostic, useColor bool) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(Format(file, source, d, useColor))
		b.WriteByte('\n')
	}
	return b.String()
}
