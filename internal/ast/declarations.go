package ast

import (
	"bytes"
	"strings"

	"github.com/cslang/csxlex/internal/token"
)

// AccessModifier is the visibility of a type or member declaration.
type AccessModifier int

const (
	AccessPrivate AccessModifier = iota
	AccessProtected
	AccessInternal
	AccessPublic
)

func (a AccessModifier) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	case AccessInternal:
		return "internal"
	case AccessPublic:
		return "public"
	default:
		return "private"
	}
}

// Modifier is one flag of a declaration's optional modifier set (`static`,
// `abstract`, `sealed`, `virtual`, `override`, `readonly`, ...). Modelled as
// a set of string tokens rather than individual bool fields per modifier,
// since the set is open-ended across declaration kinds and the grammar only
// cares that it is recorded, not that each flag gets its own accessor.
type Modifier string

const (
	ModStatic   Modifier = "static"
	ModAbstract Modifier = "abstract"
	ModSealed   Modifier = "sealed"
	ModVirtual  Modifier = "virtual"
	ModOverride Modifier = "override"
	ModReadonly Modifier = "readonly"
	ModPartial  Modifier = "partial"
)

func modifierString(mods []Modifier) string {
	if len(mods) == 0 {
		return ""
	}
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return strings.Join(parts, " ") + " "
}

// TypeDeclKind distinguishes the five declaration shapes that share the
// same parent/modifiers/name/member-list structure.
type TypeDeclKind int

const (
	DeclClass TypeDeclKind = iota
	DeclStruct
	DeclInterface
	DeclEnum
	DeclRecord
)

func (k TypeDeclKind) String() string {
	switch k {
	case DeclClass:
		return "class"
	case DeclStruct:
		return "struct"
	case DeclInterface:
		return "interface"
	case DeclEnum:
		return "enum"
	case DeclRecord:
		return "record"
	default:
		return "class"
	}
}

// TypeDecl represents a class, struct, interface, enum, or record
// declaration. All five share one node shape: an access modifier, an
// optional modifier set, a name, an optional parent/base-list, and a
// member list — only Kind and the concrete contents of Members differ.
type TypeDecl struct {
	Token     token.Token // the 'class'/'struct'/'interface'/'enum'/'record' token
	Kind      TypeDeclKind
	Access    AccessModifier
	Modifiers []Modifier
	Name      *Identifier
	BaseList  []*TypeReference
	Members   []Declaration
}

func (t *TypeDecl) declarationNode()     {}
func (t *TypeDecl) statementNode()       {}
func (t *TypeDecl) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeDecl) Pos() token.Position  { return t.Token.Pos }
func (t *TypeDecl) String() string {
	var out bytes.Buffer
	out.WriteString(t.Access.String())
	out.WriteString(" ")
	out.WriteString(modifierString(t.Modifiers))
	out.WriteString(t.Kind.String())
	out.WriteString(" ")
	out.WriteString(t.Name.String())
	if len(t.BaseList) > 0 {
		parts := make([]string, len(t.BaseList))
		for i, b := range t.BaseList {
			parts[i] = b.String()
		}
		out.WriteString(" : ")
		out.WriteString(strings.Join(parts, ", "))
	}
	out.WriteString(" {\n")
	for _, m := range t.Members {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
func (t *TypeDecl) Children() []Node {
	out := childList(t.Name)
	for _, b := range t.BaseList {
		out = append(out, b)
	}
	for _, m := range t.Members {
		out = append(out, m)
	}
	return out
}

// FieldDecl is a member-variable declaration inside a TypeDecl.
type FieldDecl struct {
	Token       token.Token
	Access      AccessModifier
	Modifiers   []Modifier
	Type        *TypeReference
	Name        *Identifier
	Initializer Expression
}

func (f *FieldDecl) declarationNode()     {}
func (f *FieldDecl) TokenLiteral() string { return f.Token.Lexeme }
func (f *FieldDecl) Pos() token.Position  { return f.Token.Pos }
func (f *FieldDecl) String() string {
	var out bytes.Buffer
	out.WriteString(f.Access.String())
	out.WriteString(" ")
	out.WriteString(modifierString(f.Modifiers))
	out.WriteString(f.Type.String())
	out.WriteString(" ")
	out.WriteString(f.Name.String())
	if f.Initializer != nil {
		out.WriteString(" = ")
		out.WriteString(f.Initializer.String())
	}
	out.WriteString(";")
	return out.String()
}
func (f *FieldDecl) Children() []Node {
	return childList(f.Type, f.Name, f.Initializer)
}

// AccessorKind distinguishes how a property accessor's body is expressed.
type AccessorKind int

const (
	AccessorAuto AccessorKind = iota
	AccessorBlock
	AccessorExpression
)

// Accessor is one `get`/`set`/`init` clause of a PropertyDecl.
type Accessor struct {
	Token      token.Token // the 'get'/'set'/'init' token
	Kind       AccessorKind
	IsInitOnly bool
	Body       *BlockStatement // non-nil only when Kind == AccessorBlock
	Expression Expression      // non-nil only when Kind == AccessorExpression
}

func (a *Accessor) TokenLiteral() string { return a.Token.Lexeme }
func (a *Accessor) Pos() token.Position  { return a.Token.Pos }
func (a *Accessor) String() string {
	name := a.Token.Lexeme
	if a.IsInitOnly {
		name = "init"
	}
	switch a.Kind {
	case AccessorBlock:
		return name + " " + a.Body.String()
	case AccessorExpression:
		return name + " => " + a.Expression.String() + ";"
	default:
		return name + ";"
	}
}
func (a *Accessor) Children() []Node { return childList(a.Body, a.Expression) }

// PropertyDecl is a property with a getter and/or setter, each independently
// auto-implemented, block-bodied, or expression-bodied.
type PropertyDecl struct {
	Token     token.Token
	Access    AccessModifier
	Modifiers []Modifier
	Type      *TypeReference
	Name      *Identifier
	Getter    *Accessor
	Setter    *Accessor
}

func (p *PropertyDecl) declarationNode()     {}
func (p *PropertyDecl) TokenLiteral() string { return p.Token.Lexeme }
func (p *PropertyDecl) Pos() token.Position  { return p.Token.Pos }
func (p *PropertyDecl) String() string {
	var out bytes.Buffer
	out.WriteString(p.Access.String())
	out.WriteString(" ")
	out.WriteString(modifierString(p.Modifiers))
	out.WriteString(p.Type.String())
	out.WriteString(" ")
	out.WriteString(p.Name.String())
	out.WriteString(" { ")
	if p.Getter != nil {
		out.WriteString(p.Getter.String())
		out.WriteString(" ")
	}
	if p.Setter != nil {
		out.WriteString(p.Setter.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}
func (p *PropertyDecl) Children() []Node {
	out := childList(p.Type, p.Name)
	if p.Getter != nil {
		out = append(out, p.Getter)
	}
	if p.Setter != nil {
		out = append(out, p.Setter)
	}
	return out
}

// MethodDecl is an ordinary method declaration inside a TypeDecl.
// Interface methods carry a nil Body (signature only, no implementation).
type MethodDecl struct {
	Token      token.Token
	Access     AccessModifier
	Modifiers  []Modifier
	ReturnType *TypeReference
	Name       *Identifier
	Parameters *ParameterList
	Body       *BlockStatement
}

func (m *MethodDecl) declarationNode()     {}
func (m *MethodDecl) TokenLiteral() string { return m.Token.Lexeme }
func (m *MethodDecl) Pos() token.Position  { return m.Token.Pos }
func (m *MethodDecl) String() string {
	var out bytes.Buffer
	out.WriteString(m.Access.String())
	out.WriteString(" ")
	out.WriteString(modifierString(m.Modifiers))
	out.WriteString(m.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(m.Name.String())
	out.WriteString(m.Parameters.String())
	if m.Body != nil {
		out.WriteString(" ")
		out.WriteString(m.Body.String())
	} else {
		out.WriteString(";")
	}
	return out.String()
}
func (m *MethodDecl) Children() []Node {
	return childList(m.ReturnType, m.Name, m.Parameters, m.Body)
}

// ConstructorDecl is a class/struct/record constructor.
type ConstructorDecl struct {
	Token      token.Token
	Access     AccessModifier
	Name       *Identifier
	Parameters *ParameterList
	Body       *BlockStatement
}

func (c *ConstructorDecl) declarationNode()     {}
func (c *ConstructorDecl) TokenLiteral() string { return c.Token.Lexeme }
func (c *ConstructorDecl) Pos() token.Position  { return c.Token.Pos }
func (c *ConstructorDecl) String() string {
	var out bytes.Buffer
	out.WriteString(c.Access.String())
	out.WriteString(" ")
	out.WriteString(c.Name.String())
	out.WriteString(c.Parameters.String())
	out.WriteString(" ")
	out.WriteString(c.Body.String())
	return out.String()
}
func (c *ConstructorDecl) Children() []Node {
	return childList(c.Name, c.Parameters, c.Body)
}

// EnumMemberDecl is a single `Name` or `Name = value` entry in an enum.
type EnumMemberDecl struct {
	Token token.Token
	Name  *Identifier
	Value Expression // nil when no explicit value is given
}

func (e *EnumMemberDecl) declarationNode()     {}
func (e *EnumMemberDecl) TokenLiteral() string { return e.Token.Lexeme }
func (e *EnumMemberDecl) Pos() token.Position  { return e.Token.Pos }
func (e *EnumMemberDecl) String() string {
	if e.Value == nil {
		return e.Name.String()
	}
	return e.Name.String() + " = " + e.Value.String()
}
func (e *EnumMemberDecl) Children() []Node { return childList(e.Name, e.Value) }

// UsingDirective is `using Namespace.Path;` or `using Alias = Namespace.Path;`.
type UsingDirective struct {
	Token token.Token // the 'using' token
	Alias *Identifier // nil when no alias is given
	Path  *QualifiedName
}

func (u *UsingDirective) declarationNode()     {}
func (u *UsingDirective) TokenLiteral() string { return u.Token.Lexeme }
func (u *UsingDirective) Pos() token.Position  { return u.Token.Pos }
func (u *UsingDirective) String() string {
	if u.Alias != nil {
		return "using " + u.Alias.String() + " = " + u.Path.String() + ";"
	}
	return "using " + u.Path.String() + ";"
}
func (u *UsingDirective) Children() []Node { return childList(u.Alias, u.Path) }
