package ast

import (
	"bytes"
	"strings"

	"github.com/cslang/csxlex/internal/token"
)

// ExpressionStatement is a bare expression used in statement position,
// e.g. a call whose result is discarded: `DoWork();`.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Lexeme }
func (e *ExpressionStatement) Pos() token.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expression == nil {
		return ";"
	}
	return e.Expression.String() + ";"
}
func (e *ExpressionStatement) Children() []Node { return childList(e.Expression) }

// ReturnStatement is `return;` or `return expr;`.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression  // nil for a bare `return;`
}

func (r *ReturnStatement) statementNode()       {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Lexeme }
func (r *ReturnStatement) Pos() token.Position  { return r.Token.Pos }
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}
func (r *ReturnStatement) Children() []Node { return childList(r.Value) }

// VarDeclStatement is a local variable declaration, optionally with an
// initialiser and/or an explicit type: `var x = 1;`, `int x;`, `int x = 1;`
type VarDeclStatement struct {
	Token       token.Token // the type/'var' token
	Type        *TypeReference
	Name        *Identifier
	Initializer Expression
}

func (v *VarDeclStatement) statementNode()       {}
func (v *VarDeclStatement) TokenLiteral() string { return v.Token.Lexeme }
func (v *VarDeclStatement) Pos() token.Position  { return v.Token.Pos }
func (v *VarDeclStatement) String() string {
	var out bytes.Buffer
	if v.Type != nil {
		out.WriteString(v.Type.String())
	} else {
		out.WriteString("var")
	}
	out.WriteString(" ")
	out.WriteString(v.Name.String())
	if v.Initializer != nil {
		out.WriteString(" = ")
		out.WriteString(v.Initializer.String())
	}
	out.WriteString(";")
	return out.String()
}
func (v *VarDeclStatement) Children() []Node {
	return childList(v.Type, v.Name, v.Initializer)
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	Token token.Token
}

func (e *EmptyStatement) statementNode()       {}
func (e *EmptyStatement) TokenLiteral() string { return e.Token.Lexeme }
func (e *EmptyStatement) Pos() token.Position  { return e.Token.Pos }
func (e *EmptyStatement) String() string       { return ";" }
func (e *EmptyStatement) Children() []Node     { return nil }

// BlockStatement is a `{ ... }` sequence of statements.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *BlockStatement) statementNode()       {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Lexeme }
func (b *BlockStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, stmt := range b.Statements {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(stmt.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
func (b *BlockStatement) Children() []Node {
	out := make([]Node, 0, len(b.Statements))
	for _, s := range b.Statements {
		out = append(out, s)
	}
	return out
}

// IfStatement is `if (cond) then` with an optional else branch.
type IfStatement struct {
	Token     token.Token // the 'if' token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (i *IfStatement) statementNode()       {}
func (i *IfStatement) TokenLiteral() string { return i.Token.Lexeme }
func (i *IfStatement) Pos() token.Position  { return i.Token.Pos }
func (i *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(i.Condition.String())
	out.WriteString(") ")
	out.WriteString(i.Then.String())
	if i.Else != nil {
		out.WriteString(" else ")
		out.WriteString(i.Else.String())
	}
	return out.String()
}
func (i *IfStatement) Children() []Node {
	return childList(i.Condition, i.Then, i.Else)
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStatement) statementNode()       {}
func (w *WhileStatement) TokenLiteral() string { return w.Token.Lexeme }
func (w *WhileStatement) Pos() token.Position  { return w.Token.Pos }
func (w *WhileStatement) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}
func (w *WhileStatement) Children() []Node { return childList(w.Condition, w.Body) }

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	Token     token.Token // the 'do' token
	Body      Statement
	Condition Expression
}

func (d *DoWhileStatement) statementNode()       {}
func (d *DoWhileStatement) TokenLiteral() string { return d.Token.Lexeme }
func (d *DoWhileStatement) Pos() token.Position  { return d.Token.Pos }
func (d *DoWhileStatement) String() string {
	return "do " + d.Body.String() + " while (" + d.Condition.String() + ");"
}
func (d *DoWhileStatement) Children() []Node { return childList(d.Body, d.Condition) }

// ForStatement is a classic C-style `for (init; cond; update) body`. Each
// clause is independently optional.
type ForStatement struct {
	Token     token.Token // the 'for' token
	Init      Statement
	Condition Expression
	Update    Expression
	Body      Statement
}

func (f *ForStatement) statementNode()       {}
func (f *ForStatement) TokenLiteral() string { return f.Token.Lexeme }
func (f *ForStatement) Pos() token.Position  { return f.Token.Pos }
func (f *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if f.Init != nil {
		out.WriteString(strings.TrimSuffix(f.Init.String(), ";"))
	}
	out.WriteString("; ")
	if f.Condition != nil {
		out.WriteString(f.Condition.String())
	}
	out.WriteString("; ")
	if f.Update != nil {
		out.WriteString(f.Update.String())
	}
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}
func (f *ForStatement) Children() []Node {
	return childList(f.Init, f.Condition, f.Update, f.Body)
}

// ForEachStatement is `foreach (Type name in collection) body`.
type ForEachStatement struct {
	Token      token.Token // the 'foreach' token
	Type       *TypeReference
	Name       *Identifier
	Collection Expression
	Body       Statement
}

func (fe *ForEachStatement) statementNode()       {}
func (fe *ForEachStatement) TokenLiteral() string { return fe.Token.Lexeme }
func (fe *ForEachStatement) Pos() token.Position  { return fe.Token.Pos }
func (fe *ForEachStatement) String() string {
	var out bytes.Buffer
	out.WriteString("foreach (")
	if fe.Type != nil {
		out.WriteString(fe.Type.String())
		out.WriteString(" ")
	}
	out.WriteString(fe.Name.String())
	out.WriteString(" in ")
	out.WriteString(fe.Collection.String())
	out.WriteString(") ")
	out.WriteString(fe.Body.String())
	return out.String()
}
func (fe *ForEachStatement) Children() []Node {
	return childList(fe.Type, fe.Name, fe.Collection, fe.Body)
}

// LocalFunctionDecl is a function declared inside another function's body.
type LocalFunctionDecl struct {
	Token      token.Token // the return-type token
	ReturnType *TypeReference
	Name       *Identifier
	Parameters *ParameterList
	Body       *BlockStatement
}

func (l *LocalFunctionDecl) statementNode()       {}
func (l *LocalFunctionDecl) TokenLiteral() string { return l.Token.Lexeme }
func (l *LocalFunctionDecl) Pos() token.Position  { return l.Token.Pos }
func (l *LocalFunctionDecl) String() string {
	var out bytes.Buffer
	out.WriteString(l.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(l.Name.String())
	out.WriteString(l.Parameters.String())
	out.WriteString(" ")
	out.WriteString(l.Body.String())
	return out.String()
}
func (l *LocalFunctionDecl) Children() []Node {
	return childList(l.ReturnType, l.Name, l.Parameters, l.Body)
}
