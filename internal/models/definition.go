package models

import "github.com/toyz/ifacegen/internal/annotations"

// Validated definition records handed to the code emitter. A Definition is
// immutable once the builder returns it.

// ArgumentKind classifies a method parameter.
type ArgumentKind int

const (
	// RegularArgument is a schema-exposed field argument.
	RegularArgument ArgumentKind = iota
	// ContextArgument receives the resolution context value.
	ContextArgument
	// ExecutorArgument receives the executor handle.
	ExecutorArgument
)

// MethodArgument is one classified parameter of a capability method.
// Ownership is exclusive to the FieldDefinition that declares it.
type MethodArgument struct {
	Kind ArgumentKind

	// Regular-argument fields.
	Name        string // exposed argument name
	Description string
	Default     *DefaultValue

	// Shared with Context arguments: the declared Go type.
	Param string // Go parameter name
	Type  string
}

// IsRegular reports whether the argument is schema-exposed.
func (a MethodArgument) IsRegular() bool { return a.Kind == RegularArgument }

// FieldDefinition is one schema field derived from a capability method.
// Field order in a Definition is declaration order and is preserved
// verbatim into emitted registration order.
type FieldDefinition struct {
	Name        string // exposed field name
	Type        string // Go result type expression
	HasError    bool   // method returns (T, error)
	Method      string // originating method identifier
	Description string
	Deprecated  *Deprecation
	Arguments   []MethodArgument // parameter order
	IsAsync     bool
}

// ContextArgType returns the declared type of the field's Context argument,
// if it has one.
func (f *FieldDefinition) ContextArgType() (string, bool) {
	for _, a := range f.Arguments {
		if a.Kind == ContextArgument {
			return a.Type, true
		}
	}
	return "", false
}

// DowncastKind selects how an implementer narrows a polymorphic value.
type DowncastKind int

const (
	// DowncastViaMethod calls a capability method marked -Downcast.
	DowncastViaMethod DowncastKind = iota
	// DowncastViaFunc calls an externally supplied function.
	DowncastViaFunc
)

// Downcast is an implementer's selected narrowing strategy.
type Downcast struct {
	Kind        DowncastKind
	Method      string // DowncastViaMethod
	WithContext bool   // method takes a Context-classified parameter
	FuncPath    string // DowncastViaFunc
}

// ImplementerDefinition is one concrete type permitted to satisfy the
// interface.
type ImplementerDefinition struct {
	// Type is the Go type expression, possibly package-qualified.
	Type string
	// GraphQLName is the exposed type name used for narrowing dispatch.
	GraphQLName string
	// Downcast is nil when the backend identifies the concrete type
	// structurally (tagged union) and no custom strategy was declared.
	Downcast *Downcast
	// ContextType is the context type the downcast requires, if any.
	ContextType string
	// Scalar is the implementer's value-domain type override, if any.
	Scalar string
}

// RepresentationKind selects the backend for the interface value.
type RepresentationKind int

const (
	// EnumRepresentation is the closed tagged union over all implementers.
	EnumRepresentation RepresentationKind = iota
	// DynRepresentation is the open dynamic-dispatch handle.
	DynRepresentation
)

func (k RepresentationKind) String() string {
	if k == DynRepresentation {
		return "dyn"
	}
	return "enum"
}

// EnumType describes the generated tagged-union value type.
type EnumType struct {
	Name     string
	Exported bool
	// Variants are the implementer type expressions, declaration order.
	Variants []string
	// Methods mirrors the source interface's method set; every method is
	// re-dispatched by switching on the active variant.
	Methods []MethodDecl
}

// VariantName derives the constructor/tag suffix for a variant type
// expression ("pkg.User" -> "User", "*User" -> "User").
func VariantName(typeExpr string) string {
	name := typeExpr
	for len(name) > 0 && (name[0] == '*' || name[0] == '&') {
		name = name[1:]
	}
	if i := lastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// DynType describes the generated dynamic-dispatch handle type.
type DynType struct {
	Name     string
	Exported bool
	// Context is the context type baked into the handle's contract.
	Context string
}

// Definition is the fully validated interface compilation artifact.
type Definition struct {
	// Interface is the originating declaration's Go name.
	Interface   string
	PackageName string
	PackagePath string

	Name        string // exposed GraphQL name
	Description string
	Context     string // never empty; defaults to context.Context
	Scalar      string // empty = generic over the executor's scalar domain

	Fields       []FieldDefinition       // declaration order
	Implementers []ImplementerDefinition // declaration order

	Kind RepresentationKind
	Enum *EnumType // set iff Kind == EnumRepresentation
	Dyn  *DynType  // set iff Kind == DynRepresentation

	Loc annotations.SourceLocation
}

// ValueTypeName is the name of the generated concrete value type.
func (d *Definition) ValueTypeName() string {
	if d.Kind == DynRepresentation {
		return d.Dyn.Name
	}
	return d.Enum.Name
}

// AsyncFields lists the exposed names of async-marked fields.
func (d *Definition) AsyncFields() []string {
	var names []string
	for _, f := range d.Fields {
		if f.IsAsync {
			names = append(names, f.Name)
		}
	}
	return names
}
