// Package lexer implements a hand-written, single-pass scanner for a
// C#-flavoured curly-brace language.
package lexer

import (
	"fmt"

	"github.com/cslang/csxlex/internal/csxerr"
	"github.com/cslang/csxlex/internal/token"
)

// Lexer is a lexical scanner over an in-memory source string.
//
// # Unicode and column positions
//
// Column positions are reported as rune counts from the start of the
// current line, not byte offsets and not display widths: a multi-byte
// rune (e.g. 'Δ', '中', an emoji) advances the column by exactly one,
// the same as an ASCII character. Identifier characters themselves stay
// restricted to ASCII letters, digits, underscore, and a leading '@',
// independent of this column-counting rule.
//
// A Lexer is single-use and not safe for concurrent use. It performs no
// I/O: the caller decodes the source into memory first.
type Lexer struct {
	cur          *cursor
	trackTrivia  bool
	contextWidth int
	filename     string
	buffer       []token.Token
	tokenCount   int
}

// State is a snapshot of a Lexer's internal position, suitable for
// backtracking during parser lookahead. Obtain one with SaveState and
// return to it with RestoreState.
type State struct {
	cur        cursor
	buffer     []token.Token
	tokenCount int
}

// New constructs a Lexer over text, applying any supplied Options.
func New(text string, opts ...Option) *Lexer {
	l := &Lexer{
		cur:          newCursor(text),
		contextWidth: 5,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lex scans the entire input and returns its token sequence, always
// ending in exactly one EndOfFile token. Per the error-handling design,
// the first fatal diagnostic halts the run: the returned slice holds
// every token scanned before the error, and the error is non-nil.
func (l *Lexer) Lex() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == token.EndOfFile {
			return out, nil
		}
	}
}

// NextToken returns the next token from the stream, consuming it. It is
// the single-step counterpart to Lex, used by callers that want to
// interleave scanning with their own control flow.
func (l *Lexer) NextToken() (token.Token, error) {
	if len(l.buffer) > 0 {
		tok := l.buffer[0]
		l.buffer = l.buffer[1:]
		return tok, nil
	}
	return l.scanToken()
}

// Peek returns the token n positions ahead without consuming it.
// Peek(0) is the same token NextToken would return next. Tokens are
// buffered lazily; once EndOfFile has been buffered, further Peeks
// keep returning it.
func (l *Lexer) Peek(n int) (token.Token, error) {
	for len(l.buffer) <= n {
		if len(l.buffer) > 0 && l.buffer[len(l.buffer)-1].Kind == token.EndOfFile {
			break
		}
		tok, err := l.scanToken()
		if err != nil {
			return token.Token{}, err
		}
		l.buffer = append(l.buffer, tok)
	}
	if n < len(l.buffer) {
		return l.buffer[n], nil
	}
	return l.buffer[len(l.buffer)-1], nil
}

// SaveState captures the lexer's current position for later restoration.
func (l *Lexer) SaveState() State {
	bufCopy := make([]token.Token, len(l.buffer))
	copy(bufCopy, l.buffer)
	return State{cur: *l.cur, buffer: bufCopy, tokenCount: l.tokenCount}
}

// RestoreState returns the lexer to a previously saved State.
func (l *Lexer) RestoreState(s State) {
	cur := s.cur
	l.cur = &cur
	l.buffer = s.buffer
	l.tokenCount = s.tokenCount
}

// scanToken skips whitespace, comments, and preprocessor lines (which
// produce no token, or a Comment pseudo-token when trackTrivia is on),
// then dispatches to scan exactly one real token.
func (l *Lexer) scanToken() (token.Token, error) {
	for {
		if l.cur.isAtEnd() {
			return l.countToken(token.New(token.EndOfFile, "", l.cur.pos())), nil
		}

		ch := l.cur.peekCurrent()

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.cur.consume()
			continue

		case ch == '/' && l.cur.peek(1) == '/':
			tok, ok := l.skipLineComment()
			if ok {
				return l.countToken(tok), nil
			}
			continue

		case ch == '/' && l.cur.peek(1) == '*':
			tok, ok := l.skipBlockComment()
			if ok {
				return l.countToken(tok), nil
			}
			continue

		case ch == '#':
			l.skipPreprocessorLine()
			continue

		default:
			tok, err := l.scanRealToken()
			if err != nil {
				if diag, ok := err.(*csxerr.Diagnostic); ok {
					diag.File = l.filename
					diag.TokenCount = l.tokenCount
				}
				return token.Token{}, err
			}
			return l.countToken(tok), nil
		}
	}
}

func (l *Lexer) countToken(tok token.Token) token.Token {
	l.tokenCount++
	return tok
}

func (l *Lexer) skipLineComment() (token.Token, bool) {
	start := l.cur.offset()
	startPos := l.cur.pos()
	for !l.cur.isAtEnd() && l.cur.peekCurrent() != '\n' {
		l.cur.consume()
	}
	if !l.trackTrivia {
		return token.Token{}, false
	}
	return token.New(token.Comment, l.cur.slice(start, l.cur.offset()), startPos), true
}

// skipBlockComment consumes a /* ... */ comment. An unterminated block
// comment runs to end of input silently, per the error-handling design's
// policy that comments are never a source of fatal errors.
func (l *Lexer) skipBlockComment() (token.Token, bool) {
	start := l.cur.offset()
	startPos := l.cur.pos()
	l.cur.consume() // '/'
	l.cur.consume() // '*'
	for !l.cur.isAtEnd() {
		if l.cur.peekCurrent() == '*' && l.cur.peek(1) == '/' {
			l.cur.consume()
			l.cur.consume()
			break
		}
		l.cur.consume()
	}
	if !l.trackTrivia {
		return token.Token{}, false
	}
	return token.New(token.Comment, l.cur.slice(start, l.cur.offset()), startPos), true
}

func (l *Lexer) skipPreprocessorLine() {
	for !l.cur.isAtEnd() && l.cur.peekCurrent() != '\n' {
		l.cur.consume()
	}
}

func isAsciiLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentStart(ch rune) bool {
	return isAsciiLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDecimalDigit(ch)
}

// scanRealToken dispatches on the current character, per the driver's
// maximal-munch rules, and returns exactly one token.
func (l *Lexer) scanRealToken() (token.Token, error) {
	start := l.cur.offset()
	startPos := l.cur.pos()
	ch := l.cur.peekCurrent()

	single := func(k token.Kind) (token.Token, error) {
		l.cur.consume()
		return token.New(k, l.cur.slice(start, l.cur.offset()), startPos), nil
	}

	switch ch {
	case ';':
		return single(token.Semicolon)
	case ',':
		return single(token.Comma)
	case '{':
		return single(token.OpenBrace)
	case '}':
		return single(token.CloseBrace)
	case '(':
		return single(token.OpenParen)
	case ')':
		return single(token.CloseParen)
	case '[':
		return single(token.OpenBracket)
	case ']':
		return single(token.CloseBracket)
	case '~':
		return single(token.Tilde)

	case ':':
		l.cur.consume()
		if l.cur.consumeIfMatch(':') {
			return l.tok(token.ColonColon, start, startPos), nil
		}
		return l.tok(token.Colon, start, startPos), nil

	case '/':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.SlashEquals, start, startPos), nil
		}
		return l.tok(token.Slash, start, startPos), nil

	case '=':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.EqualsEquals, start, startPos), nil
		}
		if l.cur.consumeIfMatch('>') {
			return l.tok(token.EqualsGreaterThan, start, startPos), nil
		}
		return l.tok(token.Equals, start, startPos), nil

	case '.':
		if isDecimalDigit(l.cur.peek(1)) {
			return l.scanNumeric()
		}
		l.cur.consume()
		if l.cur.consumeIfMatch('.') {
			return l.tok(token.DotDot, start, startPos), nil
		}
		return l.tok(token.Dot, start, startPos), nil

	case '+':
		l.cur.consume()
		if l.cur.consumeIfMatch('+') {
			return l.tok(token.PlusPlus, start, startPos), nil
		}
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.PlusEquals, start, startPos), nil
		}
		return l.tok(token.Plus, start, startPos), nil

	case '-':
		l.cur.consume()
		// Compares against '-', not '+': a double-minus is "--".
		if l.cur.consumeIfMatch('-') {
			return l.tok(token.MinusMinus, start, startPos), nil
		}
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.MinusEquals, start, startPos), nil
		}
		return l.tok(token.Minus, start, startPos), nil

	case '?':
		l.cur.consume()
		if l.cur.consumeIfMatch('?') {
			if l.cur.consumeIfMatch('=') {
				return l.tok(token.QuestionQuestionEquals, start, startPos), nil
			}
			return l.tok(token.QuestionQuestion, start, startPos), nil
		}
		return l.tok(token.Question, start, startPos), nil

	case '!':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.ExclamationEquals, start, startPos), nil
		}
		return l.tok(token.Exclamation, start, startPos), nil

	case '&':
		l.cur.consume()
		if l.cur.consumeIfMatch('&') {
			return l.tok(token.AmpersandAmpersand, start, startPos), nil
		}
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.AmpersandEquals, start, startPos), nil
		}
		return l.tok(token.Ampersand, start, startPos), nil

	case '|':
		l.cur.consume()
		if l.cur.consumeIfMatch('|') {
			return l.tok(token.BarBar, start, startPos), nil
		}
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.BarEquals, start, startPos), nil
		}
		return l.tok(token.Bar, start, startPos), nil

	case '%':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.PercentEquals, start, startPos), nil
		}
		return l.tok(token.Percent, start, startPos), nil

	case '>':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.GreaterThanEquals, start, startPos), nil
		}
		return l.tok(token.GreaterThan, start, startPos), nil

	case '<':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.LessThanEquals, start, startPos), nil
		}
		return l.tok(token.LessThan, start, startPos), nil

	case '^':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.CaretEquals, start, startPos), nil
		}
		return l.tok(token.Caret, start, startPos), nil

	case '*':
		l.cur.consume()
		if l.cur.consumeIfMatch('=') {
			return l.tok(token.AsteriskEquals, start, startPos), nil
		}
		return l.tok(token.Asterisk, start, startPos), nil

	case '\'':
		return l.scanCharLiteral(start, startPos)

	case '"':
		if l.cur.peek(1) == '"' && l.cur.peek(2) == '"' {
			return token.Token{}, l.tripleQuoteError(start, startPos)
		}
		return l.scanStringLiteral(start, startPos, stringFlags{})

	case '@':
		return l.scanAtSigil(start, startPos)

	case '$':
		return l.scanDollarSigil(start, startPos)

	default:
		switch {
		case isDecimalDigit(ch):
			return l.scanNumeric()
		case isIdentStart(ch):
			return l.scanIdentifier(start, startPos, false)
		default:
			return token.Token{}, l.unrecognizedCharError(start, startPos, ch)
		}
	}
}

func (l *Lexer) tok(kind token.Kind, start int, pos token.Position) token.Token {
	return token.New(kind, l.cur.slice(start, l.cur.offset()), pos)
}

func (l *Lexer) scanAtSigil(start int, startPos token.Position) (token.Token, error) {
	l.cur.consume() // '@'
	switch {
	case l.cur.peekCurrent() == '"':
		return l.scanStringLiteral(start, startPos, stringFlags{verbatim: true})
	case l.cur.peekCurrent() == '$' && l.cur.peek(1) == '"':
		l.cur.consume() // '$'
		return l.scanStringLiteral(start, startPos, stringFlags{verbatim: true, interpolated: true})
	default:
		return l.scanIdentifier(start, startPos, true)
	}
}

func (l *Lexer) scanDollarSigil(start int, startPos token.Position) (token.Token, error) {
	l.cur.consume() // '$'
	switch {
	case l.cur.peekCurrent() == '"':
		return l.scanStringLiteral(start, startPos, stringFlags{interpolated: true})
	case l.cur.peekCurrent() == '@' && l.cur.peek(1) == '"':
		l.cur.consume() // '@'
		return l.scanStringLiteral(start, startPos, stringFlags{verbatim: true, interpolated: true})
	default:
		return token.Token{}, l.unrecognizedCharError(start, startPos, '$')
	}
}

// scanIdentifier consumes an identifier/keyword lexeme. escaped is true
// when a leading '@' (already consumed by the caller) forces Identifier
// regardless of whether the name matches a reserved word.
func (l *Lexer) scanIdentifier(start int, startPos token.Position, escaped bool) (token.Token, error) {
	for isIdentPart(l.cur.peekCurrent()) {
		l.cur.consume()
	}
	lexeme := l.cur.slice(start, l.cur.offset())
	name := lexeme
	if escaped {
		name = lexeme[len("@"):]
	}
	kind := token.LookupIdent(name, escaped)
	return token.New(kind, lexeme, startPos), nil
}

func (l *Lexer) scanNumeric() (token.Token, error) {
	startPos := l.cur.pos()
	lexeme, err := l.readNumericLexeme()
	if err != nil {
		return token.Token{}, err
	}
	value, err := parseNumericValue(lexeme, startPos)
	if err != nil {
		return token.Token{}, err
	}
	return token.NewNumeric(lexeme, startPos, value), nil
}

func (l *Lexer) scanCharLiteral(start int, startPos token.Position) (token.Token, error) {
	if err := l.readCharLiteral(startPos); err != nil {
		return token.Token{}, err
	}
	return token.New(token.CharLiteral, l.cur.slice(start, l.cur.offset()), startPos), nil
}

func (l *Lexer) scanStringLiteral(start int, startPos token.Position, flags stringFlags) (token.Token, error) {
	if err := l.readString(flags, startPos); err != nil {
		return token.Token{}, err
	}
	kind := token.StringLiteral
	if flags.interpolated {
		kind = token.InterpolatedStringLiteral
	}
	return token.New(kind, l.cur.slice(start, l.cur.offset()), startPos), nil
}

func (l *Lexer) tripleQuoteError(start int, pos token.Position) error {
	return &csxerr.Diagnostic{
		Kind:       csxerr.UnsupportedConstruct,
		Message:    "triple-quoted raw strings are not supported",
		Pos:        pos,
		Context:    csxerr.Context(l.cur.src, start, l.contextWidth),
		TokenCount: l.tokenCount,
		File:       l.filename,
	}
}

func (l *Lexer) unrecognizedCharError(start int, pos token.Position, ch rune) error {
	l.cur.consume()
	return &csxerr.Diagnostic{
		Kind:       csxerr.UnrecognisedCharacter,
		Message:    fmt.Sprintf("unrecognised character %q", ch),
		Pos:        pos,
		Context:    csxerr.Context(l.cur.src, start, l.contextWidth),
		TokenCount: l.tokenCount,
		File:       l.filename,
	}
}
