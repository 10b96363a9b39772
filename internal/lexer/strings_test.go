package lexer

import (
	"testing"

	"github.com/cslang/csxlex/internal/token"
)

func TestPlainStringPreservesEscapesVerbatim(t *testing.T) {
	toks := lexAll(t, `"line\nbreak"`)
	if len(toks) != 2 || toks[0].Kind != token.StringLiteral {
		t.Fatalf("unexpected tokens: %v", kinds(toks))
	}
	if toks[0].Lexeme != `"line\nbreak"` {
		t.Fatalf("lexeme = %q, want escapes preserved verbatim", toks[0].Lexeme)
	}
}

func TestVerbatimStringDoubledQuote(t *testing.T) {
	toks := lexAll(t, `@"a""b"`)
	if len(toks) != 2 || toks[0].Kind != token.StringLiteral {
		t.Fatalf("unexpected tokens: %v", kinds(toks))
	}
	if toks[0].Lexeme != `@"a""b"` {
		t.Fatalf("lexeme = %q, want %q", toks[0].Lexeme, `@"a""b"`)
	}
}

func TestVerbatimStringBackslashIsLiteral(t *testing.T) {
	toks := lexAll(t, `@"C:\temp"`)
	if toks[0].Lexeme != `@"C:\temp"` {
		t.Fatalf("lexeme = %q, want backslash untouched", toks[0].Lexeme)
	}
}

func TestInterpolatedStringHoleDoesNotTerminate(t *testing.T) {
	toks := lexAll(t, `$"x={1+2}"`)
	if len(toks) != 2 || toks[0].Kind != token.InterpolatedStringLiteral {
		t.Fatalf("unexpected tokens: %v", kinds(toks))
	}
	if toks[0].Lexeme != `$"x={1+2}"` {
		t.Fatalf("lexeme = %q", toks[0].Lexeme)
	}
}

func TestInterpolatedStringQuoteInsideHole(t *testing.T) {
	toks := lexAll(t, `$"x={"nested"}"`)
	if len(toks) != 2 || toks[0].Kind != token.InterpolatedStringLiteral {
		t.Fatalf("unexpected tokens: %v", kinds(toks))
	}
}

func TestInterpolatedStringLiteralBraces(t *testing.T) {
	toks := lexAll(t, `$"{{literal}}"`)
	if len(toks) != 2 || toks[0].Kind != token.InterpolatedStringLiteral {
		t.Fatalf("unexpected tokens: %v", kinds(toks))
	}
}

func TestVerbatimInterpolatedCombination(t *testing.T) {
	for _, src := range []string{`@$"x={1}"`, `$@"x={1}"`} {
		toks := lexAll(t, src)
		if len(toks) != 2 || toks[0].Kind != token.InterpolatedStringLiteral {
			t.Fatalf("lex(%q) = %v", src, kinds(toks))
		}
		if toks[0].Lexeme != src {
			t.Fatalf("lexeme = %q, want %q", toks[0].Lexeme, src)
		}
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	if _, err := New(`"unterminated`).Lex(); err == nil {
		t.Fatal("expected an unterminated-literal error")
	}
}

func TestCharLiteral(t *testing.T) {
	toks := lexAll(t, `'a'`)
	if len(toks) != 2 || toks[0].Kind != token.CharLiteral || toks[0].Lexeme != `'a'` {
		t.Fatalf("unexpected tokens: %v", kinds(toks))
	}
	escaped := lexAll(t, `'\n'`)
	if escaped[0].Lexeme != `'\n'` {
		t.Fatalf("lexeme = %q, want %q", escaped[0].Lexeme, `'\n'`)
	}
}

func TestUnterminatedCharLiteralIsFatal(t *testing.T) {
	if _, err := New(`'a`).Lex(); err == nil {
		t.Fatal("expected an unterminated-literal error")
	}
}
