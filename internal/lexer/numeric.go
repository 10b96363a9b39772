package lexer

import (
	"strconv"
	"strings"

	"github.com/cslang/csxlex/internal/csxerr"
	"github.com/cslang/csxlex/internal/token"
	"github.com/shopspring/decimal"
)

func isDecimalDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDecimalDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isSuffixChar(ch rune) bool {
	switch ch {
	case 'u', 'U', 'l', 'L', 'f', 'F', 'd', 'D', 'm', 'M':
		return true
	}
	return false
}

func isLetterOrDigit(ch rune) bool {
	return isDecimalDigit(ch) || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// consumeSuffix consumes one suffix character already confirmed present at
// the cursor, plus its partner in the ul/lu two-character pair if present.
func (l *Lexer) consumeSuffix() {
	first := l.cur.consume()
	next := l.cur.peekCurrent()
	switch {
	case (first == 'u' || first == 'U') && (next == 'l' || next == 'L'):
		l.cur.consume()
	case (first == 'l' || first == 'L') && (next == 'u' || next == 'U'):
		l.cur.consume()
	}
}

// readNumericLexeme scans the lexeme of a numeric literal starting at the
// cursor's current position (which may be a digit, '.', '0x'/'0X', or
// '0b'/'0B'), per spec §4.3's Reader stage.
func (l *Lexer) readNumericLexeme() (string, error) {
	start := l.cur.offset()
	startPos := l.cur.pos()

	switch {
	case l.cur.peekCurrent() == '0' && (l.cur.peek(1) == 'x' || l.cur.peek(1) == 'X'):
		l.cur.consume()
		l.cur.consume()
		if err := l.readHexDigits(startPos, start); err != nil {
			return "", err
		}
	case l.cur.peekCurrent() == '0' && (l.cur.peek(1) == 'b' || l.cur.peek(1) == 'B'):
		l.cur.consume()
		l.cur.consume()
		if err := l.readBinaryDigits(startPos, start); err != nil {
			return "", err
		}
	default:
		if err := l.readDecimalDigits(); err != nil {
			return "", err
		}
	}

	lexeme := l.cur.slice(start, l.cur.offset())
	if strings.HasSuffix(lexeme, "_") {
		return lexeme, &csxerr.Diagnostic{
			Kind:    csxerr.MalformedNumericLiteral,
			Message: "numeric literal has a trailing underscore: " + lexeme,
			Pos:     startPos,
		}
	}
	return lexeme, nil
}

func (l *Lexer) readHexDigits(startPos token.Position, start int) error {
	digitStart := l.cur.offset()
	for {
		ch := l.cur.peekCurrent()
		switch {
		case isHexDigit(ch) || ch == '_':
			l.cur.consume()
			continue
		case isSuffixChar(ch):
			l.consumeSuffix()
		}
		break
	}
	if l.cur.offset() == digitStart {
		return &csxerr.Diagnostic{
			Kind:    csxerr.MalformedNumericLiteral,
			Message: "hexadecimal literal requires at least one digit after '0x'",
			Pos:     startPos,
		}
	}
	_ = start
	return nil
}

func (l *Lexer) readBinaryDigits(startPos token.Position, start int) error {
	digitStart := l.cur.offset()
	sawBadDigit := false
	for {
		ch := l.cur.peekCurrent()
		switch {
		case ch == '0' || ch == '1' || ch == '_':
			l.cur.consume()
			continue
		case isSuffixChar(ch):
			l.consumeSuffix()
		case isDecimalDigit(ch):
			// 2-9 inside a binary literal: consume so the error context
			// includes the whole malformed run, then report.
			sawBadDigit = true
			l.cur.consume()
			continue
		}
		break
	}
	if sawBadDigit {
		return &csxerr.Diagnostic{
			Kind:    csxerr.MalformedNumericLiteral,
			Message: "binary literal contains a non-binary digit: " + l.cur.slice(start, l.cur.offset()),
			Pos:     startPos,
		}
	}
	if l.cur.offset() == digitStart {
		return &csxerr.Diagnostic{
			Kind:    csxerr.MalformedNumericLiteral,
			Message: "binary literal requires at least one digit after '0b'",
			Pos:     startPos,
		}
	}
	return nil
}

func (l *Lexer) readDecimalDigits() error {
	sawDot := false

	// A literal beginning with '.' (dispatched only when the following
	// character is a digit) starts mid-loop already past the dot.
	if l.cur.peekCurrent() == '.' {
		sawDot = true
		l.cur.consume()
	}

	for isDecimalDigit(l.cur.peekCurrent()) || l.cur.peekCurrent() == '_' {
		l.cur.consume()
	}

	if !sawDot && l.cur.peekCurrent() == '.' && isLetterOrDigit(l.cur.peek(1)) {
		sawDot = true
		l.cur.consume()
		for isDecimalDigit(l.cur.peekCurrent()) || l.cur.peekCurrent() == '_' {
			l.cur.consume()
		}
	}

	// Exponent (scientific notation), e.g. 1.5e10, 2.0E+3.
	if ch := l.cur.peekCurrent(); ch == 'e' || ch == 'E' {
		if next := l.cur.peek(1); isDecimalDigit(next) || ((next == '+' || next == '-') && isDecimalDigit(l.cur.peek(2))) {
			l.cur.consume()
			if l.cur.peekCurrent() == '+' || l.cur.peekCurrent() == '-' {
				l.cur.consume()
			}
			for isDecimalDigit(l.cur.peekCurrent()) || l.cur.peekCurrent() == '_' {
				l.cur.consume()
			}
		}
	}

	for isSuffixChar(l.cur.peekCurrent()) {
		l.consumeSuffix()
		break
	}

	return nil
}

// parseNumericValue converts a cleaned numeric lexeme into its typed
// value, per spec §4.3's Parser stage.
func parseNumericValue(lexeme string, pos token.Position) (*token.Value, error) {
	normalized := strings.ToLower(strings.ReplaceAll(lexeme, "_", ""))

	switch {
	case strings.HasPrefix(normalized, "0x"):
		return parseRadixLiteral(normalized[2:], 16, pos)
	case strings.HasPrefix(normalized, "0b"):
		return parseRadixLiteral(normalized[2:], 2, pos)
	default:
		return parseDecimalLiteral(normalized, pos)
	}
}

func splitSuffix(s string, allowed string) (digits, suffix string) {
	i := len(s)
	for i > 0 && strings.ContainsRune(allowed, rune(s[i-1])) {
		i--
	}
	return s[:i], s[i:]
}

func parseRadixLiteral(s string, base int, pos token.Position) (*token.Value, error) {
	digits, suffix := splitSuffix(s, "ul")
	for _, c := range suffix {
		if c != 'u' && c != 'l' {
			return nil, &csxerr.Diagnostic{
				Kind:    csxerr.MalformedNumericLiteral,
				Message: "suffix " + suffix + " is not valid on a hexadecimal/binary literal",
				Pos:     pos,
			}
		}
	}
	if digits == "" {
		return nil, &csxerr.Diagnostic{Kind: csxerr.MalformedNumericLiteral, Message: "empty numeric literal", Pos: pos}
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return nil, &csxerr.Diagnostic{
			Kind:    csxerr.MalformedNumericLiteral,
			Message: "numeric literal overflows 64 bits: " + digits,
			Pos:     pos,
		}
	}
	return narrowUnsigned(u), nil
}

func parseDecimalLiteral(s string, pos token.Position) (*token.Value, error) {
	digits, suffix := splitSuffix(s, "ufldm")
	if strings.Count(digits, ".") > 1 {
		return nil, &csxerr.Diagnostic{Kind: csxerr.MalformedNumericLiteral, Message: "numeric literal has multiple fractional dots: " + s, Pos: pos}
	}
	if digits == "" {
		return nil, &csxerr.Diagnostic{Kind: csxerr.MalformedNumericLiteral, Message: "empty numeric literal", Pos: pos}
	}
	if strings.HasPrefix(digits, ".") {
		digits = "0" + digits
	}

	isFloat := strings.Contains(digits, ".") || strings.Contains(digits, "e") ||
		strings.ContainsAny(suffix, "fdm")

	if !isFloat {
		u, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return nil, &csxerr.Diagnostic{Kind: csxerr.MalformedNumericLiteral, Message: "numeric literal overflows 64 bits: " + digits, Pos: pos}
		}
		return narrowUnsigned(u), nil
	}

	switch {
	case strings.Contains(suffix, "f"):
		f, err := strconv.ParseFloat(digits, 32)
		if err != nil {
			return nil, &csxerr.Diagnostic{Kind: csxerr.MalformedNumericLiteral, Message: "invalid float literal: " + digits, Pos: pos}
		}
		return &token.Value{Kind: token.Float32, F32: float32(f)}, nil
	case strings.Contains(suffix, "m"):
		d, err := decimal.NewFromString(digits)
		if err != nil {
			return nil, &csxerr.Diagnostic{Kind: csxerr.MalformedNumericLiteral, Message: "invalid decimal literal: " + digits, Pos: pos}
		}
		return &token.Value{Kind: token.Decimal128, Decimal: d}, nil
	default:
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return nil, &csxerr.Diagnostic{Kind: csxerr.MalformedNumericLiteral, Message: "invalid float literal: " + digits, Pos: pos}
		}
		return &token.Value{Kind: token.Float64, F64: f}, nil
	}
}

// narrowUnsigned picks the narrowest of i32/u32/i64/u64 that represents u,
// the explicit narrowing chain spec §4.3/§9 require instead of relying on
// any language-supplied generic numeric conversion.
func narrowUnsigned(u uint64) *token.Value {
	switch {
	case u <= uint64(1<<31-1):
		return &token.Value{Kind: token.Int32, I32: int32(u)}
	case u <= uint64(1<<32-1):
		return &token.Value{Kind: token.UInt32, U32: uint32(u)}
	case u <= uint64(1<<63-1):
		return &token.Value{Kind: token.Int64, I64: int64(u)}
	default:
		return &token.Value{Kind: token.UInt64, U64: u}
	}
}
