package models

import "github.com/toyz/ifacegen/internal/annotations"

// Typed views over merged annotation records. Constructors assume the
// merger already enforced duplicate/unknown/composability rules; they only
// reshape validated options.

// Deprecation is a field deprecation marker with an optional reason.
type Deprecation struct {
	Reason    string
	HasReason bool
}

// DefaultValue is an argument default: a Go expression, or the type's zero
// value when declared bare.
type DefaultValue struct {
	Expr    string
	HasExpr bool
}

// DowncastFunc binds an implementer type to an external downcast function.
type DowncastFunc struct {
	Type     string
	FuncPath string
	Loc      annotations.SourceLocation
}

// InterfaceMeta is the merged declaration-level annotation record.
type InterfaceMeta struct {
	Name         string
	Description  string
	Context      string
	Scalar       string
	Implementers []string // listing order
	EnumAlias    string
	DynAlias     string
	Async        bool
	Downcasts    []DowncastFunc
	Loc          annotations.SourceLocation
}

// InterfaceMetaFromMerged reshapes a merged graphql::interface annotation.
func InterfaceMetaFromMerged(m *annotations.MergedAnnotation, loc annotations.SourceLocation) *InterfaceMeta {
	meta := &InterfaceMeta{Loc: loc}
	meta.Name, _ = m.GetString("Name")
	meta.Description, _ = m.GetString("Description")
	meta.Context, _ = m.GetString("Context")
	meta.Scalar, _ = m.GetString("Scalar")
	meta.EnumAlias, _ = m.GetString("Enum")
	meta.DynAlias, _ = m.GetString("Dyn")
	meta.Async = m.HasFlag("Async")
	meta.Implementers = m.ListValues("Implementers")
	for _, pair := range m.Pairs["On"] {
		meta.Downcasts = append(meta.Downcasts, DowncastFunc{
			Type:     pair.Key,
			FuncPath: pair.Value,
			Loc:      pair.Loc,
		})
	}
	return meta
}

// DowncastFor returns the external downcast registered for an implementer
// type, if any.
func (m *InterfaceMeta) DowncastFor(typeName string) (DowncastFunc, bool) {
	for _, d := range m.Downcasts {
		if d.Type == typeName {
			return d, true
		}
	}
	return DowncastFunc{}, false
}

// ImplementerMeta is the merged implementation-block annotation record.
type ImplementerMeta struct {
	Scalar string
	Async  bool
	Dyn    bool
	Loc    annotations.SourceLocation
}

// ImplementerMetaFromMerged reshapes a merged graphql::implements annotation.
func ImplementerMetaFromMerged(m *annotations.MergedAnnotation, loc annotations.SourceLocation) *ImplementerMeta {
	meta := &ImplementerMeta{Loc: loc}
	meta.Scalar, _ = m.GetString("Scalar")
	meta.Async = m.HasFlag("Async")
	meta.Dyn = m.HasFlag("Dyn")
	return meta
}

// FieldMeta is the merged per-method annotation record.
type FieldMeta struct {
	Name        string
	Description string
	Deprecated  *Deprecation
	Async       bool
	Ignore      bool
	Downcast    bool
	Loc         annotations.SourceLocation
}

// FieldMetaFromMerged reshapes a merged graphql::field annotation.
func FieldMetaFromMerged(m *annotations.MergedAnnotation, loc annotations.SourceLocation) *FieldMeta {
	meta := &FieldMeta{Loc: loc}
	meta.Name, _ = m.GetString("Name")
	meta.Description, _ = m.GetString("Description")
	meta.Async = m.HasFlag("Async")
	meta.Ignore = m.HasFlag("Ignore")
	meta.Downcast = m.HasFlag("Downcast")
	if reason, hasValue, present := m.GetOptValue("Deprecated"); present {
		meta.Deprecated = &Deprecation{Reason: reason, HasReason: hasValue}
	}
	return meta
}

// ArgMeta is the merged per-parameter annotation record.
type ArgMeta struct {
	Param       string
	Name        string
	Description string
	Default     *DefaultValue
	Context     bool
	Executor    bool
	Loc         annotations.SourceLocation
}

// ArgMetaFromMerged reshapes a merged graphql::arg annotation.
func ArgMetaFromMerged(m *annotations.MergedAnnotation, loc annotations.SourceLocation) *ArgMeta {
	meta := &ArgMeta{Param: m.Target, Loc: loc}
	meta.Name, _ = m.GetString("Name")
	meta.Description, _ = m.GetString("Description")
	meta.Context = m.HasFlag("Context")
	meta.Executor = m.HasFlag("Executor")
	if expr, hasExpr, present := m.GetOptValue("Default"); present {
		meta.Default = &DefaultValue{Expr: expr, HasExpr: hasExpr}
	}
	return meta
}
