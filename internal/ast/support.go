package ast

import (
	"fmt"
	"strings"

	"github.com/cslang/csxlex/internal/token"
)

// argumentCollapseThreshold is the entry count above which an ArgumentList's
// String() collapses to a count summary instead of rendering every element,
// keeping debug output scannable for large call sites.
const argumentCollapseThreshold = 10

// QualifiedName is a dotted sequence of identifiers, e.g. `System.Text`.
type QualifiedName struct {
	Token token.Token // the first identifier's token
	Parts []*Identifier
}

func (q *QualifiedName) TokenLiteral() string { return q.Token.Lexeme }
func (q *QualifiedName) Pos() token.Position  { return q.Token.Pos }
func (q *QualifiedName) String() string {
	parts := make([]string, len(q.Parts))
	for i, p := range q.Parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, ".")
}
func (q *QualifiedName) Children() []Node {
	out := make([]Node, 0, len(q.Parts))
	for _, p := range q.Parts {
		out = append(out, p)
	}
	return out
}

// TypeArgumentList is the `<T1, T2, ...>` suffix of a generic name or
// generic type reference.
type TypeArgumentList struct {
	Token token.Token // the '<' token
	Args  []*TypeReference
}

func (t *TypeArgumentList) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeArgumentList) Pos() token.Position  { return t.Token.Pos }
func (t *TypeArgumentList) String() string {
	if t == nil || len(t.Args) == 0 {
		return ""
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}
func (t *TypeArgumentList) Children() []Node {
	if t == nil {
		return nil
	}
	out := make([]Node, 0, len(t.Args))
	for _, a := range t.Args {
		out = append(out, a)
	}
	return out
}

// TypeReference is a reference to a type by name: a simple identifier or a
// qualified name, with an optional type-arguments list for generic types.
type TypeReference struct {
	Token         token.Token
	Name          *Identifier
	Qualified     *QualifiedName // non-nil when the reference is dotted
	TypeArguments *TypeArgumentList
}

func (t *TypeReference) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeReference) Pos() token.Position  { return t.Token.Pos }
func (t *TypeReference) String() string {
	if t == nil {
		return ""
	}
	var base string
	if t.Qualified != nil {
		base = t.Qualified.String()
	} else if t.Name != nil {
		base = t.Name.String()
	}
	return base + t.TypeArguments.String()
}
func (t *TypeReference) Children() []Node {
	if t == nil {
		return nil
	}
	if t.Qualified != nil {
		return childList(t.Qualified, t.TypeArguments)
	}
	return childList(t.Name, t.TypeArguments)
}

// Parameter is a single entry of a ParameterList.
type Parameter struct {
	Token token.Token
	Type  *TypeReference
	Name  *Identifier
	ByRef bool
	Out   bool
}

func (p *Parameter) TokenLiteral() string { return p.Token.Lexeme }
func (p *Parameter) Pos() token.Position  { return p.Token.Pos }
func (p *Parameter) String() string {
	prefix := ""
	switch {
	case p.ByRef:
		prefix = "ref "
	case p.Out:
		prefix = "out "
	}
	return prefix + p.Type.String() + " " + p.Name.String()
}
func (p *Parameter) Children() []Node { return childList(p.Type, p.Name) }

// ParameterList is the parenthesised parameter list of a method, constructor,
// local function, or indexed property.
type ParameterList struct {
	Token      token.Token // the '(' token
	Parameters []*Parameter
}

func (p *ParameterList) TokenLiteral() string { return p.Token.Lexeme }
func (p *ParameterList) Pos() token.Position  { return p.Token.Pos }
func (p *ParameterList) String() string {
	if p == nil {
		return "()"
	}
	parts := make([]string, len(p.Parameters))
	for i, param := range p.Parameters {
		parts[i] = param.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (p *ParameterList) Children() []Node {
	if p == nil {
		return nil
	}
	out := make([]Node, 0, len(p.Parameters))
	for _, param := range p.Parameters {
		out = append(out, param)
	}
	return out
}

// Argument is a single call-site argument, optionally named (`x: value`) and
// optionally bracketed, in which case it renders inside `[...]`.
type Argument struct {
	Token     token.Token
	Name      *Identifier // non-nil for a named argument
	Value     Expression
	Bracketed bool
}

func (a *Argument) TokenLiteral() string { return a.Token.Lexeme }
func (a *Argument) Pos() token.Position  { return a.Token.Pos }
func (a *Argument) String() string {
	s := a.Value.String()
	if a.Name != nil {
		s = a.Name.String() + ": " + s
	}
	if a.Bracketed {
		return "[" + s + "]"
	}
	return s
}
func (a *Argument) Children() []Node { return childList(a.Name, a.Value) }

// ArgumentList is the parenthesised argument list of an InvocationExpr or
// ObjectCreationExpr. Per the debug-rendering contract, a list with more
// than argumentCollapseThreshold entries collapses to a count summary.
type ArgumentList struct {
	Token     token.Token // the '(' token
	Arguments []*Argument
}

func (a *ArgumentList) TokenLiteral() string { return a.Token.Lexeme }
func (a *ArgumentList) Pos() token.Position  { return a.Token.Pos }
func (a *ArgumentList) String() string {
	if a == nil {
		return "()"
	}
	if len(a.Arguments) > argumentCollapseThreshold {
		return fmt.Sprintf("(... %d arguments)", len(a.Arguments))
	}
	parts := make([]string, len(a.Arguments))
	for i, arg := range a.Arguments {
		parts[i] = arg.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (a *ArgumentList) Children() []Node {
	if a == nil {
		return nil
	}
	out := make([]Node, 0, len(a.Arguments))
	for _, arg := range a.Arguments {
		out = append(out, arg)
	}
	return out
}
