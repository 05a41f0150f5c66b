package models

import "github.com/toyz/ifacegen/internal/annotations"

// Source-level declarations extracted by the scanner, before semantic
// validation. Types are carried as source expressions (strings); the
// generator re-emits them verbatim into the same package.

// ParamDecl is one parameter of an interface method.
type ParamDecl struct {
	Name string
	Type string
}

// MethodDecl is one capability method of an annotated interface.
type MethodDecl struct {
	Name     string
	Doc      string // doc comment text, trimmed
	Params   []ParamDecl
	Result   string // result type expression; empty for no result
	HasError bool   // method has a trailing error result
	Loc      annotations.SourceLocation

	Field *FieldMeta
	Args  map[string]*ArgMeta // keyed by parameter name
}

// InterfaceDecl is an annotated interface declaration.
type InterfaceDecl struct {
	Name        string
	PackageName string
	PackagePath string
	Doc         string
	Exported    bool
	Methods     []MethodDecl // declaration order
	Loc         annotations.SourceLocation

	Meta *InterfaceMeta
}

// ImplementerDecl is a concrete type carrying a graphql::implements
// annotation naming an interface.
type ImplementerDecl struct {
	TypeName  string
	Interface string
	Loc       annotations.SourceLocation

	Meta *ImplementerMeta
}

// PackageDecls is everything the scanner extracted from one package.
type PackageDecls struct {
	PackageName string
	PackagePath string
	Interfaces  []InterfaceDecl
	// Implementers groups implementation sites by interface name,
	// preserving source order within each interface.
	Implementers map[string][]ImplementerDecl
	// DeclaredTypes lists every top-level type name in the package, for
	// synthesized-name collision checks.
	DeclaredTypes map[string]bool
}
