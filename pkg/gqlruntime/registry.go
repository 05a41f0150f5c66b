package gqlruntime

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// TypeRegistry receives the type metadata generated code registers. The
// executor owns a real registry; Registry below is the reference
// implementation used by tests and simple hosts.
//
// Generated registration functions call Reserve for every implementer type
// before finalizing the owning interface definition, so forward references
// between types always resolve.
type TypeRegistry interface {
	// Reserve ensures a definition named name exists, creating an empty
	// object placeholder when it does not. The placeholder is completed by
	// a later RegisterType call.
	Reserve(name string) *ast.Definition

	// RegisterType records a complete type definition. A placeholder of the
	// same name is replaced; a complete definition of the same name is kept
	// and returned unchanged (first complete registration wins).
	RegisterType(def *ast.Definition) *ast.Definition

	// Type looks up a definition by name.
	Type(name string) (*ast.Definition, bool)
}

// Registry is an insertion-ordered TypeRegistry.
type Registry struct {
	defs  map[string]*ast.Definition
	order []string
	// names holding placeholders from Reserve, pending a full registration
	reserved map[string]bool
}

// NewRegistry creates an empty type registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:     make(map[string]*ast.Definition),
		reserved: make(map[string]bool),
	}
}

func (r *Registry) Reserve(name string) *ast.Definition {
	if def, ok := r.defs[name]; ok {
		return def
	}
	def := &ast.Definition{Kind: ast.Object, Name: name}
	r.defs[name] = def
	r.order = append(r.order, name)
	r.reserved[name] = true
	return def
}

func (r *Registry) RegisterType(def *ast.Definition) *ast.Definition {
	if existing, ok := r.defs[def.Name]; ok {
		if !r.reserved[def.Name] {
			return existing
		}
		// Complete the placeholder in place so earlier references stay valid.
		*existing = *def
		delete(r.reserved, def.Name)
		return existing
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return def
}

func (r *Registry) Type(name string) (*ast.Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Types returns all registered definitions in registration order.
func (r *Registry) Types() []*ast.Definition {
	out := make([]*ast.Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// SDL renders the registered definitions as schema definition language, in
// registration order. Intended for debugging and golden-file tests.
func (r *Registry) SDL() string {
	doc := &ast.SchemaDocument{}
	for _, name := range r.order {
		doc.Definitions = append(doc.Definitions, r.defs[name])
	}
	var b strings.Builder
	formatter.NewFormatter(&b).FormatSchemaDocument(doc)
	return b.String()
}
