// Package token defines the token vocabulary produced by the lexer: token
// kinds, the reserved-word set, and the Token value type itself.
package token

import "fmt"

// Position identifies the line and column of the first character of a
// token's lexeme. Both are 1-based. Column counts Unicode code points
// (runes) from the start of the line, not bytes or display width.
//
// Per spec, position tracking stops at line/column: no byte offset or
// richer source-span information is carried.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
