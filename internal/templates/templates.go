// Package templates contains the Go templates for the generated interface
// dispatch artifacts, plus the lowering from validated definitions to
// template data.
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/toyz/ifacegen/internal/models"
)

const receiver = "v"

// GenerateValueType generates the concrete value type artifact: the tagged
// union with forwarded capability methods, or the dynamic-dispatch handle.
func GenerateValueType(def *models.Definition) (string, error) {
	if def.Kind == models.DynRepresentation {
		data := ValueData{
			Interface: def.Interface,
			Name:      def.Dyn.Name,
			Receiver:  receiver,
		}
		return executeTemplate("value-dyn", data)
	}

	data := ValueData{
		Interface: def.Interface,
		Name:      def.Enum.Name,
		Receiver:  receiver,
		Variants:  enumVariants(def),
	}
	for _, method := range def.Enum.Methods {
		data.Methods = append(data.Methods, forwardMethod(method))
	}
	return executeTemplate("value-enum", data)
}

// GenerateMarkers generates the conformance marker artifact: the interface
// assertion plus input/output obligations for every argument, result and
// implementer type.
func GenerateMarkers(def *models.Definition) (string, error) {
	data := MarkerData{
		Interface: def.Interface,
		ValueRef:  fmt.Sprintf("(*%s)(nil)", def.ValueTypeName()),
	}
	if def.Kind == models.DynRepresentation {
		data.ValueRef = def.Dyn.Name + "{}"
	}

	seen := make(map[string]bool)
	for _, field := range def.Fields {
		for _, arg := range field.Arguments {
			if arg.IsRegular() && !seen["in:"+arg.Type] {
				seen["in:"+arg.Type] = true
				data.Inputs = append(data.Inputs, arg.Type)
			}
		}
	}
	for _, field := range def.Fields {
		if !seen["out:"+field.Type] {
			seen["out:"+field.Type] = true
			data.Outputs = append(data.Outputs, field.Type)
		}
	}
	for _, impl := range def.Implementers {
		ty := "*" + stripPointer(impl.Type)
		if !seen["out:"+ty] {
			seen["out:"+ty] = true
			data.Outputs = append(data.Outputs, ty)
		}
	}
	return executeTemplate("markers", data)
}

// GenerateRegistration generates the type metadata registration artifact.
func GenerateRegistration(def *models.Definition) (string, error) {
	data := RegisterData{
		FuncName:    "Register" + def.Interface + "Type",
		TypeName:    def.Name,
		Description: def.Description,
	}
	for _, impl := range def.Implementers {
		data.Implementers = append(data.Implementers, impl.GraphQLName)
	}

	for _, field := range def.Fields {
		reg := RegisterFieldData{
			Name:        field.Name,
			Description: field.Description,
			TypeExpr:    TypeRefExpr(field.Type),
		}
		if field.Deprecated != nil {
			reg.Deprecated = true
			reg.DeprecationReason = field.Deprecated.Reason
			reg.HasDeprecationReason = field.Deprecated.HasReason
		}
		for _, arg := range field.Arguments {
			if !arg.IsRegular() {
				continue
			}
			regArg := RegisterArgData{
				Name:        arg.Name,
				Description: arg.Description,
				TypeExpr:    TypeRefExpr(arg.Type),
			}
			if arg.Default != nil {
				expr := arg.Default.Expr
				if !arg.Default.HasExpr {
					expr = zeroExpr(arg.Type)
				}
				regArg.HasDefault = true
				regArg.DefaultRaw, regArg.DefaultKind = defaultValueKind(expr)
			}
			reg.Args = append(reg.Args, regArg)
		}
		data.Fields = append(data.Fields, reg)
	}
	return executeTemplate("register", data)
}

// GenerateSyncResolver generates the synchronous ResolveField artifact.
func GenerateSyncResolver(def *models.Definition) (string, error) {
	return executeTemplate("resolve-sync", resolveData(def))
}

// GenerateAsyncResolver generates the ResolveFieldAsync artifact.
func GenerateAsyncResolver(def *models.Definition) (string, error) {
	return executeTemplate("resolve-async", resolveData(def))
}

// GenerateTypeResolver generates the narrowing artifact: ConcreteTypeName,
// ResolveIntoType and its async counterpart.
func GenerateTypeResolver(def *models.Definition) (string, error) {
	data := TypeResolverData{
		ValueType: valueTypeExpr(def),
		Receiver:  receiver,
		TypeName:  def.Name,
		Interface: def.Interface,
		Dyn:       def.Kind == models.DynRepresentation,
	}

	for i, impl := range def.Implementers {
		arm := NarrowImplData{
			GraphQLName: impl.GraphQLName,
			Type:        stripPointer(impl.Type),
			Index:       i,
			Slot:        slotName(impl.Type),
		}
		if impl.Downcast != nil {
			arm.HasCustom = true
			arm.Expr = downcastExpr(def, impl)
			data.Customs = append(data.Customs, NarrowCheckData{
				GraphQLName: impl.GraphQLName,
				Expr:        arm.Expr,
			})
		}
		data.Implementers = append(data.Implementers, arm)
	}

	head, err := executeTemplate("concrete-type-name", data)
	if err != nil {
		return "", err
	}
	tail, err := executeTemplate("resolve-into-type", data)
	if err != nil {
		return "", err
	}
	return head + tail, nil
}

func resolveData(def *models.Definition) ResolveData {
	data := ResolveData{
		ValueType: valueTypeExpr(def),
		Receiver:  receiver,
		TypeName:  def.Name,
	}
	for _, field := range def.Fields {
		data.Fields = append(data.Fields, ResolveFieldData{
			Name:     field.Name,
			Call:     callExpr(def, &field),
			HasError: field.HasError,
			IsAsync:  field.IsAsync,
		})
	}
	return data
}

// callExpr builds the method invocation dispatching one field, mapping each
// classified parameter to its runtime source.
func callExpr(def *models.Definition, field *models.FieldDefinition) string {
	var args []string
	for _, arg := range field.Arguments {
		switch arg.Kind {
		case models.ContextArgument:
			args = append(args, contextExpr(arg.Type))
		case models.ExecutorArgument:
			args = append(args, "ex")
		default:
			if arg.Default != nil {
				expr := arg.Default.Expr
				if !arg.Default.HasExpr {
					expr = zeroExpr(arg.Type)
				}
				args = append(args, fmt.Sprintf("gqlruntime.GetOr[%s](args, %q, %s)", arg.Type, arg.Name, expr))
			} else {
				args = append(args, fmt.Sprintf("gqlruntime.MustGet[%s](args, %q)", arg.Type, arg.Name))
			}
		}
	}
	return fmt.Sprintf("%s.%s(%s)", receiver, field.Method, strings.Join(args, ", "))
}

// downcastExpr builds the probe for a custom downcast strategy.
func downcastExpr(def *models.Definition, impl models.ImplementerDefinition) string {
	dc := impl.Downcast
	if dc.Kind == models.DowncastViaFunc {
		return fmt.Sprintf("%s(%s, %s)", dc.FuncPath, receiver, contextExpr(def.Context))
	}
	if dc.WithContext {
		return fmt.Sprintf("%s.%s(%s)", receiver, dc.Method, contextExpr(def.Context))
	}
	return fmt.Sprintf("%s.%s()", receiver, dc.Method)
}

// contextExpr resolves the context value for a declared context type: the
// resolution ctx when the interface uses context.Context, else the
// application context carried by the executor.
func contextExpr(ctxType string) string {
	if ctxType == "context.Context" || ctxType == "" {
		return "ctx"
	}
	return fmt.Sprintf("gqlruntime.ContextValue[%s](ex)", ctxType)
}

func valueTypeExpr(def *models.Definition) string {
	if def.Kind == models.DynRepresentation {
		return def.Dyn.Name
	}
	return "*" + def.Enum.Name
}

func enumVariants(def *models.Definition) []VariantData {
	variants := make([]VariantData, len(def.Implementers))
	for i, impl := range def.Implementers {
		variants[i] = VariantData{
			Index:       i,
			Type:        stripPointer(impl.Type),
			Slot:        slotName(impl.Type),
			Constructor: def.Enum.Name + "From" + models.VariantName(impl.Type),
			GraphQLName: impl.GraphQLName,
		}
	}
	return variants
}

func forwardMethod(method models.MethodDecl) ForwardMethodData {
	var params, args []string
	for _, p := range method.Params {
		params = append(params, p.Name+" "+p.Type)
		args = append(args, p.Name)
	}

	var results string
	switch {
	case method.Result != "" && method.HasError:
		results = fmt.Sprintf(" (%s, error)", method.Result)
	case method.Result != "":
		results = " " + method.Result
	case method.HasError:
		results = " error"
	}

	return ForwardMethodData{
		Name:      method.Name,
		Params:    strings.Join(params, ", "),
		Args:      strings.Join(args, ", "),
		Results:   results,
		HasReturn: method.Result != "" || method.HasError,
	}
}

// slotName derives the union struct field holding a variant. The tag field
// is named kind, so a variant of that name gets a suffix.
func slotName(typeExpr string) string {
	name := models.VariantName(typeExpr)
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	slot := string(runes)
	if slot == "kind" {
		slot = "kindVariant"
	}
	return slot
}

func stripPointer(typeExpr string) string {
	return strings.TrimPrefix(typeExpr, "*")
}

// executeTemplate executes a registered template with the given data.
func executeTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(defaultRegistry.MustGet(name))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

var defaultRegistry = NewTemplateRegistry()
