package lexer

import (
	"testing"

	"github.com/cslang/csxlex/internal/token"
)

func numericValue(t *testing.T, src string) *token.Value {
	t.Helper()
	toks := lexAll(t, src)
	if len(toks) != 2 || toks[0].Kind != token.NumericLiteral {
		t.Fatalf("lex(%q) = %v, want a single numeric literal", src, kinds(toks))
	}
	return toks[0].Value
}

func TestNumericNarrowing(t *testing.T) {
	tests := []struct {
		src  string
		kind token.NumericKind
	}{
		{"0", token.Int32},
		{"2147483647", token.Int32},
		{"2147483648", token.UInt32},
		{"4294967296", token.Int64},
	}
	for _, tt := range tests {
		v := numericValue(t, tt.src)
		if v.Kind != tt.kind {
			t.Errorf("lex(%q).Kind = %s, want %s", tt.src, v.Kind, tt.kind)
		}
	}
}

func TestDigitSeparatorsAreIgnored(t *testing.T) {
	a := numericValue(t, "1_000_000")
	b := numericValue(t, "1000000")
	if a.Kind != b.Kind || a.I32 != b.I32 {
		t.Fatalf("1_000_000 = %+v, want same as 1000000 = %+v", a, b)
	}
}

func TestRadixLiterals(t *testing.T) {
	hex := numericValue(t, "0xFF")
	if hex.Kind != token.Int32 || hex.I32 != 255 {
		t.Fatalf("0xFF = %+v, want i32(255)", hex)
	}
	bin := numericValue(t, "0b1010")
	if bin.Kind != token.Int32 || bin.I32 != 10 {
		t.Fatalf("0b1010 = %+v, want i32(10)", bin)
	}
	hexU := numericValue(t, "0xFFFFFFFFu")
	if hexU.Kind != token.UInt32 || hexU.U32 != 4294967295 {
		t.Fatalf("0xFFFFFFFFu = %+v, want u32(4294967295)", hexU)
	}
}

func TestFloatAndDecimalSuffixes(t *testing.T) {
	f := numericValue(t, "1.5f")
	if f.Kind != token.Float32 {
		t.Fatalf("1.5f.Kind = %s, want f32", f.Kind)
	}
	d := numericValue(t, "1.5d")
	if d.Kind != token.Float64 {
		t.Fatalf("1.5d.Kind = %s, want f64", d.Kind)
	}
	m := numericValue(t, "1.5m")
	if m.Kind != token.Decimal128 {
		t.Fatalf("1.5m.Kind = %s, want decimal128", m.Kind)
	}
	bare := numericValue(t, "1.5")
	if bare.Kind != token.Float64 {
		t.Fatalf("1.5.Kind = %s, want f64 (default)", bare.Kind)
	}
}

func TestExponentNotation(t *testing.T) {
	v := numericValue(t, "1.5e2")
	if v.Kind != token.Float64 || v.F64 != 150 {
		t.Fatalf("1.5e2 = %+v, want f64(150)", v)
	}
	v2 := numericValue(t, "2.0E+3")
	if v2.Kind != token.Float64 || v2.F64 != 2000 {
		t.Fatalf("2.0E+3 = %+v, want f64(2000)", v2)
	}
}

func TestMalformedNumericLiteralsAreFatal(t *testing.T) {
	for _, src := range []string{"1__", "0b12", "0x"} {
		if _, err := New(src).Lex(); err == nil {
			t.Errorf("lex(%q) did not return an error", src)
		}
	}
}
