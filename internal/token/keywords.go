package token

// keywords is the fixed set of reserved words recognised as Keyword tokens.
// A leading '@' on an identifier suppresses this lookup entirely (the lexer
// passes escaped=true to LookupIdent) — the escaped name is always an
// Identifier.
var keywords = map[string]struct{}{
	"abstract": {}, "as": {}, "base": {}, "bool": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "checked": {}, "class": {}, "const": {},
	"continue": {}, "decimal": {}, "default": {}, "delegate": {}, "do": {}, "double": {},
	"else": {}, "enum": {}, "event": {}, "explicit": {}, "extern": {}, "false": {},
	"finally": {}, "fixed": {}, "float": {}, "for": {}, "foreach": {}, "goto": {},
	"if": {}, "implicit": {}, "in": {}, "int": {}, "interface": {}, "internal": {},
	"is": {}, "lock": {}, "long": {}, "namespace": {}, "new": {}, "null": {},
	"object": {}, "operator": {}, "out": {}, "override": {}, "params": {}, "private": {},
	"protected": {}, "public": {}, "readonly": {}, "ref": {}, "return": {}, "sbyte": {},
	"sealed": {}, "short": {}, "sizeof": {}, "stackalloc": {}, "static": {}, "string": {},
	"struct": {}, "switch": {}, "this": {}, "throw": {}, "true": {}, "try": {},
	"typeof": {}, "uint": {}, "ulong": {}, "unchecked": {}, "unsafe": {}, "ushort": {},
	"using": {}, "virtual": {}, "void": {}, "volatile": {}, "while": {},
}

// IsKeyword reports whether name (without any leading '@' escape) is one of
// the reserved words.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// LookupIdent classifies a scanned identifier-shaped name as Keyword or
// Identifier. escaped should be true when the source had a leading '@',
// which always forces Identifier regardless of the name.
func LookupIdent(name string, escaped bool) Kind {
	if !escaped && IsKeyword(name) {
		return Keyword
	}
	return Identifier
}
