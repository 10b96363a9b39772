// Package ast defines the Abstract Syntax Tree node types produced by a
// parser built atop csxlex's token stream. The variant set is closed: every
// node kind in this package corresponds to a grammar production named in the
// language's closed AST schema; there is no open-ended subclassing.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cslang/csxlex/internal/token"
)

// Node is the base interface for every AST node.
type Node interface {
	// TokenLiteral returns the literal value of the token this node is
	// anchored to, mostly useful for tests and error messages.
	TokenLiteral() string

	// String renders a single-line, debugger-friendly form of the node.
	String() string

	// Pos returns the source position of the node's first token.
	Pos() token.Position

	// Children returns the node's ordered structural children, with any
	// absent optional children omitted.
	Children() []Node
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a node that introduces a name into scope: a type, a
// member, or a using-directive.
type Declaration interface {
	Node
	declarationNode()
}

// childList builds an ordered child slice from a variadic sequence of
// optional nodes, dropping any that are nil. Used by every variant's
// Children() method so optional children never leave a gap in the list.
func childList(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if isNilNode(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// isNilNode reports whether n is a nil interface or a nil pointer stored in
// a non-nil interface value — both happen when an optional *XyzNode field is
// left unset and passed straight into childList.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *NumericLiteral:
		return v == nil
	case *BooleanLiteral:
		return v == nil
	case *StringLiteral:
		return v == nil
	case *ParenthesizedExpr:
		return v == nil
	case *UnaryExpr:
		return v == nil
	case *BinaryExpr:
		return v == nil
	case *MemberAccessExpr:
		return v == nil
	case *ElementAccessExpr:
		return v == nil
	case *InvocationExpr:
		return v == nil
	case *ObjectCreationExpr:
		return v == nil
	case *GenericNameExpr:
		return v == nil
	case *TernaryExpr:
		return v == nil
	case *ExpressionStatement:
		return v == nil
	case *ReturnStatement:
		return v == nil
	case *VarDeclStatement:
		return v == nil
	case *EmptyStatement:
		return v == nil
	case *BlockStatement:
		return v == nil
	case *IfStatement:
		return v == nil
	case *WhileStatement:
		return v == nil
	case *DoWhileStatement:
		return v == nil
	case *ForStatement:
		return v == nil
	case *ForEachStatement:
		return v == nil
	case *LocalFunctionDecl:
		return v == nil
	case *TypeDecl:
		return v == nil
	case *FieldDecl:
		return v == nil
	case *PropertyDecl:
		return v == nil
	case *Accessor:
		return v == nil
	case *MethodDecl:
		return v == nil
	case *ConstructorDecl:
		return v == nil
	case *EnumMemberDecl:
		return v == nil
	case *TypeReference:
		return v == nil
	case *TypeArgumentList:
		return v == nil
	case *QualifiedName:
		return v == nil
	case *Parameter:
		return v == nil
	case *ParameterList:
		return v == nil
	case *Argument:
		return v == nil
	case *ArgumentList:
		return v == nil
	case *UsingDirective:
		return v == nil
	case *Root:
		return v == nil
	default:
		return false
	}
}

// Root is the top-level node: a compilation unit made of using-directives,
// type declarations, and top-level (global) statements, in source order.
type Root struct {
	Usings     []*UsingDirective
	Statements []Statement
}

func (r *Root) TokenLiteral() string {
	if len(r.Usings) > 0 {
		return r.Usings[0].TokenLiteral()
	}
	if len(r.Statements) > 0 {
		return r.Statements[0].TokenLiteral()
	}
	return ""
}

func (r *Root) Pos() token.Position {
	if len(r.Usings) > 0 {
		return r.Usings[0].Pos()
	}
	if len(r.Statements) > 0 {
		return r.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (r *Root) String() string {
	var out bytes.Buffer
	for _, u := range r.Usings {
		out.WriteString(u.String())
		out.WriteString("\n")
	}
	for _, stmt := range r.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (r *Root) Children() []Node {
	out := make([]Node, 0, len(r.Usings)+len(r.Statements))
	for _, u := range r.Usings {
		out = append(out, u)
	}
	for _, s := range r.Statements {
		out = append(out, s)
	}
	return out
}

// Identifier is a bare name reference: a variable, a type, a member.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()         {}
func (i *Identifier) TokenLiteral() string    { return i.Token.Lexeme }
func (i *Identifier) String() string          { return i.Value }
func (i *Identifier) Pos() token.Position     { return i.Token.Pos }
func (i *Identifier) Children() []Node        { return nil }

// NumericLiteral wraps a scanned numeric token together with its narrowed,
// typed value (see token.Value / token.NumericKind).
type NumericLiteral struct {
	Token token.Token
	Value *token.Value
}

func (n *NumericLiteral) expressionNode()      {}
func (n *NumericLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *NumericLiteral) String() string       { return n.Token.Lexeme }
func (n *NumericLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NumericLiteral) Children() []Node     { return nil }

// BooleanLiteral is the `true`/`false` keyword-token literal.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Lexeme }
func (b *BooleanLiteral) String() string       { return b.Token.Lexeme }
func (b *BooleanLiteral) Pos() token.Position  { return b.Token.Pos }
func (b *BooleanLiteral) Children() []Node     { return nil }

// StringLiteral covers all six string-token shapes the lexer can produce
// (plain, verbatim, interpolated, and their combination); Value holds the
// decoded text while Token.Lexeme keeps the original source form.
type StringLiteral struct {
	Token        token.Token
	Value        string
	Verbatim     bool
	Interpolated bool
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Lexeme }
func (s *StringLiteral) String() string       { return s.Token.Lexeme }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Pos }
func (s *StringLiteral) Children() []Node     { return nil }

// ParenthesizedExpr is an expression wrapped in `( ... )`.
type ParenthesizedExpr struct {
	Token token.Token // the '(' token
	Inner Expression
}

func (p *ParenthesizedExpr) expressionNode()      {}
func (p *ParenthesizedExpr) TokenLiteral() string { return p.Token.Lexeme }
func (p *ParenthesizedExpr) Pos() token.Position  { return p.Token.Pos }
func (p *ParenthesizedExpr) String() string       { return "(" + p.Inner.String() + ")" }
func (p *ParenthesizedExpr) Children() []Node     { return childList(p.Inner) }

// UnaryOp identifies the operator of a UnaryExpr.
type UnaryOp int

const (
	UnaryNegate UnaryOp = iota
	UnaryNot
	UnaryIncrement
	UnaryDecrement
	UnaryPlus
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNegate:
		return "-"
	case UnaryNot:
		return "!"
	case UnaryIncrement:
		return "++"
	case UnaryDecrement:
		return "--"
	case UnaryPlus:
		return "+"
	default:
		return "?"
	}
}

// UnaryExpr is a single tagged variant covering every unary operator, in
// both prefix (`-x`, `!x`, `++x`) and postfix (`x++`, `x--`) position,
// instead of one node type per operator.
type UnaryExpr struct {
	Token    token.Token
	Op       UnaryOp
	Operand  Expression
	IsPrefix bool
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) TokenLiteral() string { return u.Token.Lexeme }
func (u *UnaryExpr) Pos() token.Position  { return u.Token.Pos }
func (u *UnaryExpr) String() string {
	if u.IsPrefix {
		return u.Op.String() + u.Operand.String()
	}
	return u.Operand.String() + u.Op.String()
}
func (u *UnaryExpr) Children() []Node { return childList(u.Operand) }

// BinaryOp identifies the operator of a BinaryExpr: arithmetic, comparison,
// logical, or assignment/compound-assignment.
type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNeq
	BinLt
	BinLte
	BinGt
	BinGte
	BinAnd
	BinOr
	BinAssign
	BinAddAssign
	BinSubAssign
	BinMulAssign
	BinDivAssign
	BinModAssign
	BinAndAssign
	BinOrAssign
)

var binaryOpSymbols = map[BinaryOp]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
	BinEq: "==", BinNeq: "!=", BinLt: "<", BinLte: "<=", BinGt: ">", BinGte: ">=",
	BinAnd: "&&", BinOr: "||",
	BinAssign: "=", BinAddAssign: "+=", BinSubAssign: "-=", BinMulAssign: "*=",
	BinDivAssign: "/=", BinModAssign: "%=", BinAndAssign: "&=", BinOrAssign: "|=",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return "?"
}

// IsAssignment reports whether op is `=` or one of its compound forms.
func (op BinaryOp) IsAssignment() bool {
	return op >= BinAssign
}

// BinaryExpr is a single tagged variant covering every binary operator
// category named in the schema (arithmetic, comparison, logical, and plain
// or compound assignment) rather than a class per operator.
type BinaryExpr struct {
	Token token.Token // the operator token
	Op    BinaryOp
	Lhs   Expression
	Rhs   Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Token.Lexeme }
func (b *BinaryExpr) Pos() token.Position  { return b.Lhs.Pos() }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Lhs.String(), b.Op.String(), b.Rhs.String())
}
func (b *BinaryExpr) Children() []Node { return childList(b.Lhs, b.Rhs) }

// MemberAccessExpr is `target.Member`.
type MemberAccessExpr struct {
	Token  token.Token // the '.' token
	Target Expression
	Member *Identifier
}

func (m *MemberAccessExpr) expressionNode()      {}
func (m *MemberAccessExpr) TokenLiteral() string { return m.Token.Lexeme }
func (m *MemberAccessExpr) Pos() token.Position  { return m.Target.Pos() }
func (m *MemberAccessExpr) String() string       { return m.Target.String() + "." + m.Member.String() }
func (m *MemberAccessExpr) Children() []Node     { return childList(m.Target, m.Member) }

// ElementAccessExpr is `target[index, ...]`.
type ElementAccessExpr struct {
	Token   token.Token // the '[' token
	Target  Expression
	Indices []Expression
}

func (e *ElementAccessExpr) expressionNode()      {}
func (e *ElementAccessExpr) TokenLiteral() string { return e.Token.Lexeme }
func (e *ElementAccessExpr) Pos() token.Position  { return e.Target.Pos() }
func (e *ElementAccessExpr) String() string {
	parts := make([]string, len(e.Indices))
	for i, idx := range e.Indices {
		parts[i] = idx.String()
	}
	return e.Target.String() + "[" + strings.Join(parts, ", ") + "]"
}
func (e *ElementAccessExpr) Children() []Node {
	out := childList(e.Target)
	for _, idx := range e.Indices {
		out = append(out, idx)
	}
	return out
}

// InvocationExpr is `callee(args...)`.
type InvocationExpr struct {
	Token     token.Token // the '(' token
	Callee    Expression
	Arguments *ArgumentList
}

func (iv *InvocationExpr) expressionNode()      {}
func (iv *InvocationExpr) TokenLiteral() string { return iv.Token.Lexeme }
func (iv *InvocationExpr) Pos() token.Position  { return iv.Callee.Pos() }
func (iv *InvocationExpr) String() string {
	return iv.Callee.String() + iv.Arguments.String()
}
func (iv *InvocationExpr) Children() []Node { return childList(iv.Callee, iv.Arguments) }

// ObjectCreationExpr is `new Type(args...)`.
type ObjectCreationExpr struct {
	Token     token.Token // the 'new' token
	Type      *TypeReference
	Arguments *ArgumentList
}

func (o *ObjectCreationExpr) expressionNode()      {}
func (o *ObjectCreationExpr) TokenLiteral() string { return o.Token.Lexeme }
func (o *ObjectCreationExpr) Pos() token.Position  { return o.Token.Pos }
func (o *ObjectCreationExpr) String() string {
	args := ""
	if o.Arguments != nil {
		args = o.Arguments.String()
	}
	return "new " + o.Type.String() + args
}
func (o *ObjectCreationExpr) Children() []Node { return childList(o.Type, o.Arguments) }

// GenericNameExpr is a name applied to explicit type arguments: `List<int>`.
type GenericNameExpr struct {
	Token         token.Token
	Name          *Identifier
	TypeArguments *TypeArgumentList
}

func (g *GenericNameExpr) expressionNode()      {}
func (g *GenericNameExpr) TokenLiteral() string { return g.Token.Lexeme }
func (g *GenericNameExpr) Pos() token.Position  { return g.Name.Pos() }
func (g *GenericNameExpr) String() string       { return g.Name.String() + g.TypeArguments.String() }
func (g *GenericNameExpr) Children() []Node     { return childList(g.Name, g.TypeArguments) }

// TernaryExpr is `cond ? whenTrue : whenFalse`.
type TernaryExpr struct {
	Token     token.Token // the '?' token
	Condition Expression
	WhenTrue  Expression
	WhenFalse Expression
}

func (t *TernaryExpr) expressionNode()      {}
func (t *TernaryExpr) TokenLiteral() string { return t.Token.Lexeme }
func (t *TernaryExpr) Pos() token.Position  { return t.Condition.Pos() }
func (t *TernaryExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", t.Condition.String(), t.WhenTrue.String(), t.WhenFalse.String())
}
func (t *TernaryExpr) Children() []Node {
	return childList(t.Condition, t.WhenTrue, t.WhenFalse)
}
