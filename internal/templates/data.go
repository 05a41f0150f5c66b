package templates

// Template data records. Lowering from models.Definition happens in
// templates.go; the templates themselves only interpolate.

// ValueData drives the concrete value type artifact (tagged union or
// dynamic handle).
type ValueData struct {
	Interface string // source interface identifier
	Name      string // generated value type name
	Receiver  string

	// Tagged-union backend.
	Variants []VariantData
	Methods  []ForwardMethodData
}

// VariantData is one implementer slot of the tagged union.
type VariantData struct {
	Index       int
	Type        string // implementer type expression, pointer stripped
	Slot        string // struct field name
	Constructor string
	GraphQLName string
}

// ForwardMethodData is one capability method re-dispatched by the tagged
// union.
type ForwardMethodData struct {
	Name      string
	Params    string // "ctx context.Context, limit int"
	Args      string // "ctx, limit"
	Results   string // " string", " (string, error)", or ""
	HasReturn bool
}

// MarkerData drives the conformance marker artifact.
type MarkerData struct {
	Interface string
	ValueRef  string   // expression asserted against the interface
	Inputs    []string // argument types, appearance order, deduplicated
	Outputs   []string // result and implementer types
}

// RegisterData drives the type metadata registration artifact.
type RegisterData struct {
	FuncName     string
	TypeName     string
	Description  string
	Implementers []string // GraphQL names, declaration order
	Fields       []RegisterFieldData
}

// RegisterFieldData is one field of the registered interface definition.
type RegisterFieldData struct {
	Name                 string
	Description          string
	TypeExpr             string // gqlparser ast constructor expression
	Args                 []RegisterArgData
	Deprecated           bool
	DeprecationReason    string
	HasDeprecationReason bool
}

// RegisterArgData is one schema-exposed argument of a registered field.
type RegisterArgData struct {
	Name        string
	Description string
	TypeExpr    string
	HasDefault  bool
	DefaultRaw  string
	DefaultKind string // ast value kind identifier
}

// ResolveData drives both field resolution artifacts.
type ResolveData struct {
	ValueType string // receiver type, "*NodeValue" or "NodeDyn"
	Receiver  string
	TypeName  string // exposed GraphQL name
	Fields    []ResolveFieldData
}

// ResolveFieldData is one dispatch arm of a field resolution switch.
type ResolveFieldData struct {
	Name     string
	Call     string // full method invocation expression
	HasError bool
	IsAsync  bool
}

// TypeResolverData drives the narrowing artifact.
type TypeResolverData struct {
	ValueType string
	Receiver  string
	TypeName  string
	Interface string // embedded field name under the dyn backend
	Dyn       bool

	// Custom downcast checks, implementer declaration order.
	Customs []NarrowCheckData
	// One narrowing arm per implementer.
	Implementers []NarrowImplData
}

// NarrowCheckData is one custom downcast probe.
type NarrowCheckData struct {
	GraphQLName string
	Expr        string // expression yielding *Impl or nil
}

// NarrowImplData is one implementer arm of ResolveIntoType.
type NarrowImplData struct {
	GraphQLName string
	Type        string // pointer-stripped implementer type
	HasCustom   bool
	Expr        string // custom probe, when HasCustom

	// Structural fallback under the tagged union.
	Index int
	Slot  string
}
