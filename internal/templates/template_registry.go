package templates

// TemplateRegistry provides a centralized way to access all templates.
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a registry holding every emission template.
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerValueTemplates()
	registry.registerMarkerTemplates()
	registry.registerRegistrationTemplates()
	registry.registerResolverTemplates()

	return registry
}

// Get retrieves a template by name.
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found.
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerValueTemplates registers the concrete value type templates.
func (tr *TemplateRegistry) registerValueTemplates() {
	// Tagged union: one slot per implementer, every capability method
	// re-dispatched on the active variant.
	tr.templates["value-enum"] = `// {{.Name}} is the concrete GraphQL value for {{.Interface}}. It holds
// exactly one implementer and forwards every capability method to it.
type {{.Name}} struct {
	kind int
{{range .Variants}}	{{.Slot}} *{{.Type}}
{{end}}}

{{range .Variants}}// {{.Constructor}} wraps a {{.Type}} as the active variant.
func {{.Constructor}}(v *{{.Type}}) *{{$.Name}} {
	return &{{$.Name}}{kind: {{.Index}}, {{.Slot}}: v}
}

{{end}}{{range .Methods}}{{$m := .}}func ({{$.Receiver}} *{{$.Name}}) {{$m.Name}}({{$m.Params}}){{$m.Results}} {
	switch {{$.Receiver}}.kind {
{{range $.Variants}}	case {{.Index}}:
		{{if $m.HasReturn}}return {{$.Receiver}}.{{.Slot}}.{{$m.Name}}({{$m.Args}}){{else}}{{$.Receiver}}.{{.Slot}}.{{$m.Name}}({{$m.Args}})
		return{{end}}
{{end}}	}
	panic("{{$.Name}} has no active variant")
}

{{end}}`

	// Dynamic handle: embedding keeps every capability method reachable
	// without re-dispatch.
	tr.templates["value-dyn"] = `// {{.Name}} is a dynamic-dispatch handle over {{.Interface}}.
type {{.Name}} struct {
	{{.Interface}}
}

// New{{.Name}} wraps a concrete {{.Interface}} implementer.
func New{{.Name}}(v {{.Interface}}) {{.Name}} {
	return {{.Name}}{ {{- .Interface}}: v}
}

`
}

// registerMarkerTemplates registers the conformance marker template.
func (tr *TemplateRegistry) registerMarkerTemplates() {
	tr.templates["markers"] = `var _ {{.Interface}} = {{.ValueRef}}

func init() {
{{range .Inputs}}	gqlruntime.MarkInput[{{.}}]()
{{end}}{{range .Outputs}}	gqlruntime.MarkOutput[{{.}}]()
{{end}}}

`
}

// registerRegistrationTemplates registers the type metadata template.
func (tr *TemplateRegistry) registerRegistrationTemplates() {
	tr.templates["register"] = `// {{.FuncName}} registers the {{.TypeName}} interface type. Implementer
// types are reserved first so forward references always resolve.
func {{.FuncName}}(reg gqlruntime.TypeRegistry) *ast.Definition {
{{range .Implementers}}	reg.Reserve({{printf "%q" .}})
{{end}}
	def := &ast.Definition{
		Kind: ast.Interface,
		Name: {{printf "%q" .TypeName}},
{{if .Description}}		Description: {{printf "%q" .Description}},
{{end}}	}
{{range .Fields}}{{$f := .}}	def.Fields = append(def.Fields, &ast.FieldDefinition{
		Name: {{printf "%q" $f.Name}},
{{if $f.Description}}		Description: {{printf "%q" $f.Description}},
{{end}}		Type: {{$f.TypeExpr}},
{{if $f.Args}}		Arguments: ast.ArgumentDefinitionList{
{{range $f.Args}}			&ast.ArgumentDefinition{Name: {{printf "%q" .Name}}{{if .Description}}, Description: {{printf "%q" .Description}}{{end}}, Type: {{.TypeExpr}}{{if .HasDefault}}, DefaultValue: &ast.Value{Raw: {{printf "%q" .DefaultRaw}}, Kind: ast.{{.DefaultKind}}}{{end}}},
{{end}}		},
{{end}}{{if $f.Deprecated}}		Directives: ast.DirectiveList{&ast.Directive{Name: "deprecated"{{if $f.HasDeprecationReason}}, Arguments: ast.ArgumentList{&ast.Argument{Name: "reason", Value: &ast.Value{Raw: {{printf "%q" $f.DeprecationReason}}, Kind: ast.StringValue}}}{{end}}}},
{{end}}	})
{{end}}	return reg.RegisterType(def)
}

`
}

// registerResolverTemplates registers field resolution and narrowing
// templates.
func (tr *TemplateRegistry) registerResolverTemplates() {
	tr.templates["resolve-sync"] = `// ResolveField resolves one schema field of {{.TypeName}} synchronously.
func ({{.Receiver}} {{.ValueType}}) ResolveField(ctx context.Context, field string, args gqlruntime.Arguments, ex gqlruntime.Executor) (any, error) {
	switch field {
{{range .Fields}}	case {{printf "%q" .Name}}:
{{if .IsAsync}}		panic("async field {{.Name}} of GraphQL interface {{$.TypeName}} resolved synchronously")
{{else if .HasError}}		out, err := {{.Call}}
		return out, err
{{else}}		return {{.Call}}, nil
{{end}}{{end}}	}
	panic(fmt.Sprintf("field %q not found on GraphQL interface {{.TypeName}}", field))
}

`

	tr.templates["resolve-async"] = `// ResolveFieldAsync resolves one schema field of {{.TypeName}}, always
// through a Thunk. Fields backed by synchronous methods compute eagerly
// and wrap the result with Ready.
func ({{.Receiver}} {{.ValueType}}) ResolveFieldAsync(ctx context.Context, field string, args gqlruntime.Arguments, ex gqlruntime.Executor) gqlruntime.Thunk {
	switch field {
{{range .Fields}}	case {{printf "%q" .Name}}:
{{if .IsAsync}}		return func() (any, error) {
{{if .HasError}}			out, err := {{.Call}}
			return out, err
{{else}}			return {{.Call}}, nil
{{end}}		}
{{else if .HasError}}		out, err := {{.Call}}
		return gqlruntime.Ready(out, err)
{{else}}		return gqlruntime.Ready({{.Call}}, nil)
{{end}}{{end}}	}
	panic(fmt.Sprintf("field %q not found on GraphQL interface {{.TypeName}}", field))
}

`

	tr.templates["concrete-type-name"] = `// ConcreteTypeName reports the GraphQL type name of the active implementer.
// Custom downcasts run first, in implementer declaration order.
func ({{.Receiver}} {{.ValueType}}) ConcreteTypeName(ctx context.Context, ex gqlruntime.Executor) string {
{{range .Customs}}	if out := {{.Expr}}; out != nil {
		return {{printf "%q" .GraphQLName}}
	}
{{end}}{{if .Dyn}}	switch {{.Receiver}}.{{.Interface}}.(type) {
{{range .Implementers}}	case *{{.Type}}:
		return {{printf "%q" .GraphQLName}}
{{end}}	}
{{else}}	switch {{.Receiver}}.kind {
{{range .Implementers}}	case {{.Index}}:
		return {{printf "%q" .GraphQLName}}
{{end}}	}
{{end}}	panic("value of GraphQL interface {{.TypeName}} has unknown concrete type")
}

`

	tr.templates["resolve-into-type"] = `// ResolveIntoType narrows the value to the implementer registered under
// typeName, or nil when the value is not of that type.
func ({{.Receiver}} {{.ValueType}}) ResolveIntoType(ctx context.Context, typeName string, ex gqlruntime.Executor) (any, error) {
	switch typeName {
{{range .Implementers}}	case {{printf "%q" .GraphQLName}}:
{{if .HasCustom}}		out := {{.Expr}}
		if out == nil {
			return nil, nil
		}
		return out, nil
{{else if $.Dyn}}		out, ok := {{$.Receiver}}.{{$.Interface}}.(*{{.Type}})
		if !ok {
			return nil, nil
		}
		return out, nil
{{else}}		if {{$.Receiver}}.kind != {{.Index}} {
			return nil, nil
		}
		return {{$.Receiver}}.{{.Slot}}, nil
{{end}}{{end}}	}
	return nil, nil
}

// ResolveIntoTypeAsync is the suspended counterpart of ResolveIntoType.
func ({{.Receiver}} {{.ValueType}}) ResolveIntoTypeAsync(ctx context.Context, typeName string, ex gqlruntime.Executor) gqlruntime.Thunk {
	return func() (any, error) {
		return {{.Receiver}}.ResolveIntoType(ctx, typeName, ex)
	}
}

`
}
