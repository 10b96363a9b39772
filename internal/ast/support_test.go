package ast

import (
	"testing"

	"github.com/cslang/csxlex/internal/token"
)

func TestTypeReferenceWithGenericArguments(t *testing.T) {
	tr := &TypeReference{
		Name: ident("List"),
		TypeArguments: &TypeArgumentList{
			Args: []*TypeReference{typeRef("int")},
		},
	}
	if got, want := tr.String(), "List<int>"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestTypeReferenceQualified(t *testing.T) {
	tr := &TypeReference{
		Qualified: &QualifiedName{Parts: []*Identifier{ident("System"), ident("String")}},
	}
	if got, want := tr.String(), "System.String"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParameterByRefAndOut(t *testing.T) {
	byRef := &Parameter{Type: typeRef("int"), Name: ident("x"), ByRef: true}
	if got, want := byRef.String(), "ref int x"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	out := &Parameter{Type: typeRef("int"), Name: ident("x"), Out: true}
	if got, want := out.String(), "out int x"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParameterListRendersCommaSeparated(t *testing.T) {
	pl := &ParameterList{Parameters: []*Parameter{
		{Type: typeRef("int"), Name: ident("a")},
		{Type: typeRef("string"), Name: ident("b")},
	}}
	if got, want := pl.String(), "(int a, string b)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestArgumentNamedAndBracketed(t *testing.T) {
	named := &Argument{Name: ident("count"), Value: numLit("1")}
	if got, want := named.String(), "count: 1"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	bracketed := &Argument{Value: ident("x"), Bracketed: true}
	if got, want := bracketed.String(), "[x]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNilOptionalListsRenderEmptyParens(t *testing.T) {
	var pl *ParameterList
	if got, want := pl.String(), "()"; got != want {
		t.Fatalf("nil ParameterList.String() = %q, want %q", got, want)
	}
	var al *ArgumentList
	if got, want := al.String(), "()"; got != want {
		t.Fatalf("nil ArgumentList.String() = %q, want %q", got, want)
	}
	var ta *TypeArgumentList
	if got, want := ta.String(), ""; got != want {
		t.Fatalf("nil TypeArgumentList.String() = %q, want %q", got, want)
	}
}

func TestQualifiedNameChildrenInOrder(t *testing.T) {
	qn := &QualifiedName{Parts: []*Identifier{ident("a"), ident("b"), ident("c")}}
	children := qn.Children()
	if len(children) != 3 {
		t.Fatalf("Children() = %d, want 3", len(children))
	}
	if children[0].(*Identifier).Value != "a" || children[2].(*Identifier).Value != "c" {
		t.Fatalf("Children() out of order: %v", children)
	}
}

func TestTokenLiteralFromUnderlyingToken(t *testing.T) {
	p := &Parameter{Token: token.New(token.Keyword, "ref", token.Position{Line: 2, Column: 4})}
	if got, want := p.TokenLiteral(), "ref"; got != want {
		t.Fatalf("TokenLiteral() = %q, want %q", got, want)
	}
	if got, want := p.Pos().Line, 2; got != want {
		t.Fatalf("Pos().Line = %d, want %d", got, want)
	}
}
