package calclang

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type DiagnosticKind uint8

const (
	// InvalidCharacter: the lexer found a byte that cannot start any token.
	InvalidCharacter DiagnosticKind = iota
	// UnexpectedToken: the parser found a token that does not match the
	// grammar at that point, or tokens were left over after a complete
	// parse.
	UnexpectedToken
	// EndOfStream: the parser needed a token but none remained.
	EndOfStream
)

// Diagnostic describes a lexing or parsing failure. Offset is a byte offset
// into Source; for EndOfStream it is one past the end. A Diagnostic holds a
// reference to the source line and must not outlive it.
type Diagnostic struct {
	Kind   DiagnosticKind
	Offset int
	Source string
}

func (d *Diagnostic) Message() string {
	switch d.Kind {
	case InvalidCharacter:
		r, _ := utf8.DecodeRuneInString(d.Source[d.Offset:])
		return "Error: Unexpected Character: " + strconv.QuoteRune(r)
	case UnexpectedToken:
		return "Error: Unexpected Token"
	case EndOfStream:
		return "Error: Unexpected End Of Stream"
	}
	return "Error"
}

func (d *Diagnostic) Error() string {
	return d.Message() + " at offset " + strconv.Itoa(d.Offset)
}

// Render formats the diagnostic as three lines: the message, the source line
// indented by margin spaces, and a caret under the offending column. margin
// is the width of the prompt the caller printed before the source line.
func (d *Diagnostic) Render(margin int) string {
	var sb strings.Builder
	sb.WriteString(d.Message())
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", margin))
	sb.WriteString(d.Source)
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", margin))
	for i := 0; i < d.Offset && i < len(d.Source); {
		r, sz := utf8.DecodeRuneInString(d.Source[i:])
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for k := 0; k < runeWidth(r); k++ {
				sb.WriteString(" ")
			}
		}
		i += sz
	}
	sb.WriteString("^---- Here")
	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
