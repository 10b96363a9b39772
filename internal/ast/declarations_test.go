package ast

import (
	"strings"
	"testing"

	"github.com/cslang/csxlex/internal/token"
)

func typeRef(name string) *TypeReference {
	return &TypeReference{Name: ident(name)}
}

func TestTypeDeclStringIncludesKindAndBaseList(t *testing.T) {
	td := &TypeDecl{
		Token:    token.New(token.Keyword, "class", token.Position{Line: 1, Column: 1}),
		Kind:     DeclClass,
		Access:   AccessPublic,
		Name:     ident("Animal"),
		BaseList: []*TypeReference{typeRef("IComparable")},
	}
	s := td.String()
	if !strings.Contains(s, "public class Animal : IComparable") {
		t.Fatalf("String() = %q, missing expected header", s)
	}
}

func TestTypeDeclChildrenIncludeBaseListAndMembers(t *testing.T) {
	field := &FieldDecl{Type: typeRef("int"), Name: ident("count")}
	td := &TypeDecl{
		Name:     ident("Box"),
		BaseList: []*TypeReference{typeRef("IBox")},
		Members:  []Declaration{field},
	}
	children := td.Children()
	if len(children) != 3 { // Name, base, member
		t.Fatalf("Children() = %d, want 3", len(children))
	}
}

func TestPropertyDeclAccessorVariants(t *testing.T) {
	auto := &PropertyDecl{
		Type:   typeRef("int"),
		Name:   ident("Count"),
		Getter: &Accessor{Token: token.New(token.Keyword, "get", token.Position{}), Kind: AccessorAuto},
		Setter: &Accessor{Token: token.New(token.Keyword, "set", token.Position{}), Kind: AccessorAuto},
	}
	if got, want := auto.Getter.String(), "get;"; got != want {
		t.Fatalf("Getter.String() = %q, want %q", got, want)
	}

	exprBodied := &Accessor{
		Token:      token.New(token.Keyword, "get", token.Position{}),
		Kind:       AccessorExpression,
		Expression: ident("backing"),
	}
	if got, want := exprBodied.String(), "get => backing;"; got != want {
		t.Fatalf("exprBodied.String() = %q, want %q", got, want)
	}

	initOnly := &Accessor{Token: token.New(token.Keyword, "set", token.Position{}), Kind: AccessorAuto, IsInitOnly: true}
	if got, want := initOnly.String(), "init;"; got != want {
		t.Fatalf("initOnly.String() = %q, want %q", got, want)
	}
}

func TestMethodDeclWithNilBodyIsSignatureOnly(t *testing.T) {
	m := &MethodDecl{
		ReturnType: typeRef("void"),
		Name:       ident("Hello"),
		Parameters: &ParameterList{},
	}
	if got, want := m.String(), "private void Hello();"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if m.Body != nil {
		t.Fatal("expected nil Body for an interface-style signature")
	}
}

func TestEnumMemberDeclWithAndWithoutValue(t *testing.T) {
	bare := &EnumMemberDecl{Name: ident("Red")}
	if got, want := bare.String(), "Red"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	valued := &EnumMemberDecl{Name: ident("Red"), Value: numLit("1")}
	if got, want := valued.String(), "Red = 1"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestUsingDirectiveWithAlias(t *testing.T) {
	u := &UsingDirective{
		Alias: ident("Collections"),
		Path:  &QualifiedName{Parts: []*Identifier{ident("System"), ident("Collections"), ident("Generic")}},
	}
	if got, want := u.String(), "using Collections = System.Collections.Generic;"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
