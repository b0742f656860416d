package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Scoutboy06/tsc-go/internal/token"
)

// ErrorKind classifies a fatal parse error.
type ErrorKind uint8

const (
	InvalidToken ErrorKind = iota
	InternalError
	Todo
)

// Error is a fatal parser error: the parser aborts on the first one rather
// than attempting recovery, unlike the semantic analyzer's accumulating
// diagnostics.
type Error struct {
	Kind    ErrorKind
	Token   token.Token
	Message string
	Source  string
}

func (e *Error) Error() string {
	return e.Message
}

const errorOutMaxWidth = 40

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Print renders a formatted source snippet for the error: the line before
// and after the offending token for context, the current line with the
// token highlighted in red, and a caret line pointing at it. When the
// token falls past errorOutMaxWidth columns, the printed window scrolls
// right so the token is always visible rather than being cropped away.
func (e *Error) Print() string {
	var out bytes.Buffer
	out.WriteString("An error occured:\n")

	lineStart, lineEnd, lineNbr := findLine(e.Source, e.Token.Span.Start)
	gutterWidth := countDigits(lineNbr+1) + 2

	skipLeft := 0
	if lineStart+errorOutMaxWidth < e.Token.Span.End {
		skipLeft = e.Token.Span.Start - lineStart
	}

	if lineNbr > 1 {
		prevStart, prevEnd := lineBounds(e.Source, lineStart-1)
		writeLine(&out, lineNbr-1, e.Source[prevStart:prevEnd], gutterWidth, skipLeft)
	}

	windowed := cropWindow(e.Source[lineStart:lineEnd], skipLeft)

	tokStart := e.Token.Span.Start - lineStart - skipLeft
	if tokStart < 0 {
		tokStart = 0
	}
	tokEnd := tokStart + (e.Token.Span.End - e.Token.Span.Start)
	if tokEnd > len(windowed) {
		tokEnd = len(windowed)
	}
	before := windowed[:tokStart]
	tokenText := windowed[tokStart:tokEnd]
	after := windowed[tokEnd:]

	writeGutterPad(&out, gutterWidth, lineNbr)
	fmt.Fprintf(&out, "%d| %s%s%s%s%s\n", lineNbr, before, ansiRed, tokenText, ansiReset, after)

	for i := 0; i < gutterWidth+len(before); i++ {
		out.WriteByte(' ')
	}
	caretLen := len(tokenText)
	if caretLen == 0 {
		caretLen = 1
	}
	out.WriteString(ansiRed)
	out.WriteString(strings.Repeat("^", caretLen))
	out.WriteString(ansiReset)
	out.WriteByte('\n')

	for i := 0; i < gutterWidth+len(before); i++ {
		out.WriteByte(' ')
	}
	out.WriteString(ansiRed)
	out.WriteString(e.Message)
	out.WriteString(ansiReset)
	out.WriteByte('\n')

	if lineEnd < len(e.Source) {
		nextStart, nextEnd := lineBounds(e.Source, lineEnd+1)
		writeLine(&out, lineNbr+1, e.Source[nextStart:nextEnd], gutterWidth, skipLeft)
	}

	return out.String()
}

// findLine returns the [start,end) byte bounds of the line containing
// offset, plus its 1-indexed line number.
func findLine(source string, offset int) (start, end, lineNbr int) {
	lineNbr = 1
	start = 0
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			start = i + 1
			lineNbr++
		}
	}
	end = len(source)
	for i := offset; i < len(source); i++ {
		if source[i] == '\n' {
			end = i
			break
		}
	}
	return
}

func lineBounds(source string, lineStartOffset int) (start, end int) {
	start = 0
	for i := 0; i < lineStartOffset && i < len(source); i++ {
		if source[i] == '\n' {
			start = i + 1
		}
	}
	end = len(source)
	for i := start; i < len(source); i++ {
		if source[i] == '\n' {
			end = i
			break
		}
	}
	return
}

func countDigits(n int) int {
	if n == 0 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

// writeGutterPad right-aligns lineNbr within gutterWidth (minus the "| "
// separator) by padding with leading spaces.
func writeGutterPad(out *bytes.Buffer, gutterWidth, lineNbr int) {
	for i := 0; i < gutterWidth-2-countDigits(lineNbr); i++ {
		out.WriteByte(' ')
	}
}

// cropWindow slices text to the errorOutMaxWidth-wide window starting at
// skipLeft, clamping to the text's actual bounds.
func cropWindow(text string, skipLeft int) string {
	if skipLeft > len(text) {
		skipLeft = len(text)
	}
	text = text[skipLeft:]
	if len(text) > errorOutMaxWidth {
		text = text[:errorOutMaxWidth]
	}
	return text
}

func writeLine(out *bytes.Buffer, lineNbr int, text string, gutterWidth, skipLeft int) {
	writeGutterPad(out, gutterWidth, lineNbr)
	fmt.Fprintf(out, "%d| %s\n", lineNbr, cropWindow(text, skipLeft))
}
