package lexer

import "github.com/cslang/csxlex/internal/token"

// cursor is a buffered, random-access view over the source text: a
// decoded-once []rune slice plus a read index, line, and column. It owns
// a read-only reference to the input; it performs no I/O and never
// mutates the source.
//
// column counts runes already consumed since the start of the current
// line (0 at line start); Pos reports column+1, the 1-based column of the
// next unconsumed rune.
type cursor struct {
	src    []rune
	idx    int
	line   int
	column int
}

func newCursor(text string) *cursor {
	return &cursor{src: []rune(text), line: 1}
}

// isAtEnd reports whether every rune has been consumed.
func (c *cursor) isAtEnd() bool {
	return c.idx >= len(c.src)
}

// peekCurrent returns the next unconsumed rune without advancing, or NUL
// (0) past the end of input.
func (c *cursor) peekCurrent() rune {
	return c.peek(0)
}

// peek returns the rune offset positions ahead of the next unconsumed
// rune, or NUL if that position is out of range. peek(0) is the same
// rune peekCurrent returns.
func (c *cursor) peek(offset int) rune {
	i := c.idx + offset
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// canPeek reports whether peek(offset) would return an in-range rune.
func (c *cursor) canPeek(offset int) bool {
	i := c.idx + offset
	return i >= 0 && i < len(c.src)
}

// consume returns the current rune and advances past it, updating line
// and column. Consuming past the end of input is a no-op that returns
// NUL.
func (c *cursor) consume() rune {
	if c.isAtEnd() {
		return 0
	}
	ch := c.src[c.idx]
	c.idx++
	if ch == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	return ch
}

// consumeIfMatch consumes and returns true only if the current rune
// equals expected; otherwise the cursor is left unchanged.
func (c *cursor) consumeIfMatch(expected rune) bool {
	if c.peekCurrent() == expected {
		c.consume()
		return true
	}
	return false
}

// pos returns the position of the next unconsumed rune — the position an
// about-to-be-scanned token's first character would be stamped with.
func (c *cursor) pos() token.Position {
	return token.Position{Line: c.line, Column: c.column + 1}
}

// offset exposes the current rune index, used by sub-readers to slice
// lexeme substrings out of the source without re-decoding UTF-8.
func (c *cursor) offset() int {
	return c.idx
}

// slice returns the substring of runes between two offsets previously
// obtained from offset().
func (c *cursor) slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(c.src) {
		end = len(c.src)
	}
	if start >= end {
		return ""
	}
	return string(c.src[start:end])
}
