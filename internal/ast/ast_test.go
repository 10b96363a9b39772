package ast

import (
	"testing"

	"github.com/cslang/csxlex/internal/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.New(token.Identifier, name, token.Position{Line: 1, Column: 1}), Value: name}
}

func numLit(lexeme string) *NumericLiteral {
	return &NumericLiteral{
		Token: token.New(token.NumericLiteral, lexeme, token.Position{Line: 1, Column: 1}),
		Value: &token.Value{Kind: token.Int32, I32: 1},
	}
}

func TestBinaryExprString(t *testing.T) {
	be := &BinaryExpr{
		Token: token.New(token.Plus, "+", token.Position{Line: 1, Column: 3}),
		Op:    BinAdd,
		Lhs:   ident("a"),
		Rhs:   ident("b"),
	}
	if got, want := be.String(), "(a + b)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if len(be.Children()) != 2 {
		t.Fatalf("Children() = %d, want 2", len(be.Children()))
	}
}

func TestUnaryExprPrefixAndPostfix(t *testing.T) {
	prefix := &UnaryExpr{Op: UnaryNegate, Operand: ident("x"), IsPrefix: true}
	if got, want := prefix.String(), "-x"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	postfix := &UnaryExpr{Op: UnaryIncrement, Operand: ident("x"), IsPrefix: false}
	if got, want := postfix.String(), "x++"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestChildListOmitsNilOptionalChildren(t *testing.T) {
	ifStmt := &IfStatement{
		Token:     token.New(token.Keyword, "if", token.Position{Line: 1, Column: 1}),
		Condition: ident("cond"),
		Then:      &EmptyStatement{},
		Else:      nil,
	}
	children := ifStmt.Children()
	if len(children) != 2 {
		t.Fatalf("Children() = %d, want 2 (Else omitted)", len(children))
	}
}

func TestTernaryExprString(t *testing.T) {
	te := &TernaryExpr{Condition: ident("c"), WhenTrue: ident("t"), WhenFalse: ident("f")}
	if got, want := te.String(), "(c ? t : f)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestArgumentListCollapsesPastThreshold(t *testing.T) {
	args := make([]*Argument, 11)
	for i := range args {
		args[i] = &Argument{Value: numLit("1")}
	}
	al := &ArgumentList{Arguments: args}
	if got, want := al.String(), "(... 11 arguments)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestArgumentListRendersUnderThreshold(t *testing.T) {
	al := &ArgumentList{Arguments: []*Argument{{Value: ident("a")}, {Value: ident("b")}}}
	if got, want := al.String(), "(a, b)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestMemberAndElementAccessString(t *testing.T) {
	ma := &MemberAccessExpr{Target: ident("obj"), Member: ident("field")}
	if got, want := ma.String(), "obj.field"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	ea := &ElementAccessExpr{Target: ident("arr"), Indices: []Expression{ident("i")}}
	if got, want := ea.String(), "arr[i]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestRootChildrenInSourceOrder(t *testing.T) {
	u := &UsingDirective{Path: &QualifiedName{Parts: []*Identifier{ident("System")}}}
	stmt := &ExpressionStatement{Expression: ident("x")}
	root := &Root{Usings: []*UsingDirective{u}, Statements: []Statement{stmt}}
	children := root.Children()
	if len(children) != 2 || children[0] != Node(u) || children[1] != Node(stmt) {
		t.Fatalf("Children() did not preserve source order: %v", children)
	}
}
