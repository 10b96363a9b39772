// Package csxerr formats lexer errors with line/column information and,
// when available, a short window of surrounding source text.
package csxerr

import (
	"fmt"
	"strings"

	"github.com/cslang/csxlex/internal/token"
)

// Kind classifies the fatal error conditions the lexer can raise, per the
// error-handling design: unrecognised characters, malformed numeric
// literals, unterminated string/char literals, and unsupported constructs
// (triple-quoted raw strings).
type Kind int

const (
	UnrecognisedCharacter Kind = iota
	MalformedNumericLiteral
	UnterminatedLiteral
	UnsupportedConstruct
	UnknownEscapeSequence
)

func (k Kind) String() string {
	switch k {
	case UnrecognisedCharacter:
		return "unrecognised character"
	case MalformedNumericLiteral:
		return "malformed numeric literal"
	case UnterminatedLiteral:
		return "unterminated literal"
	case UnsupportedConstruct:
		return "unsupported construct"
	case UnknownEscapeSequence:
		return "unknown escape sequence"
	default:
		return "error"
	}
}

// Diagnostic is a single fatal lexer error: what went wrong, where, and
// (for UnrecognisedCharacter) a short window of surrounding source text.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     token.Position
	Context string
	// TokenCount is the number of tokens successfully emitted before this
	// error was raised, included per spec §7 ("running token count").
	TokenCount int
	File       string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic's kind and position, its context window
// (if any) on a "near:" line, and the message. No caret line is drawn.
// When color is true, ANSI escapes highlight the message.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%s\n", d.Kind, d.File, d.Pos)
	} else {
		fmt.Fprintf(&sb, "%s at %s\n", d.Kind, d.Pos)
	}

	if d.Context != "" {
		sb.WriteString("  near: ")
		sb.WriteString(d.Context)
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	if d.TokenCount > 0 {
		fmt.Fprintf(&sb, " (after %d token(s))", d.TokenCount)
	}

	return sb.String()
}

// Context builds the "≈5 characters either side" window spec §7 calls for
// around the rune at index idx within src. width is the number of
// runes shown on each side.
func Context(src []rune, idx, width int) string {
	start := idx - width
	if start < 0 {
		start = 0
	}
	end := idx + width + 1
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return ""
	}
	return string(src[start:end])
}
