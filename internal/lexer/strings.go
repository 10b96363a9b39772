package lexer

import (
	"github.com/cslang/csxlex/internal/csxerr"
	"github.com/cslang/csxlex/internal/token"
)

// stringFlags records which sigils introduced a string literal: verbatim
// (leading '@', doubled-quote escaping, literal backslashes) and/or
// interpolated (leading '$', brace-nested holes). Both set means a
// verbatim-interpolated combination, in either sigil order.
type stringFlags struct {
	verbatim     bool
	interpolated bool
}

// readString scans a string literal body starting at the opening '"' (the
// cursor is positioned on the quote; any '@'/'$' sigils have already been
// consumed into the lexeme by the caller). It returns once the literal is
// closed, per spec §4.4's termination rules for each variant.
func (l *Lexer) readString(flags stringFlags, startPos token.Position) error {
	l.cur.consume() // opening quote

	depth := 0 // interpolation-hole brace depth

	for {
		if l.cur.isAtEnd() {
			return &csxerr.Diagnostic{
				Kind:    csxerr.UnterminatedLiteral,
				Message: "unterminated string literal",
				Pos:     startPos,
			}
		}

		ch := l.cur.peekCurrent()

		switch {
		case ch == '"':
			if flags.verbatim && l.cur.peek(1) == '"' {
				l.cur.consume()
				l.cur.consume()
				continue
			}
			if depth > 0 {
				// Quotes inside an interpolation hole belong to the
				// embedded expression, not the outer literal.
				l.cur.consume()
				continue
			}
			l.cur.consume()
			return nil

		case flags.interpolated && ch == '{':
			l.cur.consume()
			if l.cur.peekCurrent() == '{' && depth == 0 {
				l.cur.consume() // literal "{{"
				continue
			}
			depth++
			continue

		case flags.interpolated && ch == '}':
			l.cur.consume()
			if l.cur.peekCurrent() == '}' && depth == 0 {
				l.cur.consume() // literal "}}"
				continue
			}
			if depth > 0 {
				depth--
			}
			continue

		case !flags.verbatim && ch == '\\':
			l.cur.consume()
			if !l.cur.isAtEnd() {
				l.cur.consume() // escape target, preserved verbatim
			}
			continue

		case ch == '\n' && depth == 0 && !flags.verbatim:
			return &csxerr.Diagnostic{
				Kind:    csxerr.UnterminatedLiteral,
				Message: "unterminated string literal: newline before closing quote",
				Pos:     startPos,
			}

		default:
			l.cur.consume()
		}
	}
}

// readCharLiteral scans a character literal starting at the opening '\''.
// It reads one character (two if escaped) and the closing quote.
func (l *Lexer) readCharLiteral(startPos token.Position) error {
	l.cur.consume() // opening quote

	if l.cur.isAtEnd() {
		return &csxerr.Diagnostic{Kind: csxerr.UnterminatedLiteral, Message: "unterminated character literal", Pos: startPos}
	}

	if l.cur.peekCurrent() == '\\' {
		l.cur.consume()
		if l.cur.isAtEnd() {
			return &csxerr.Diagnostic{Kind: csxerr.UnterminatedLiteral, Message: "unterminated character literal", Pos: startPos}
		}
		l.cur.consume()
	} else {
		l.cur.consume()
	}

	if l.cur.peekCurrent() != '\'' {
		return &csxerr.Diagnostic{Kind: csxerr.UnterminatedLiteral, Message: "character literal must contain exactly one character", Pos: startPos}
	}
	l.cur.consume()
	return nil
}
