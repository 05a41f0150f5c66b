// Package builder turns scanned interface declarations and merged
// annotation metadata into validated Definitions ready for emission.
package builder

import (
	"unicode"

	"github.com/toyz/ifacegen/internal/models"
)

// DefaultContextType is assumed when the interface declares no context.
const DefaultContextType = "context.Context"

// downcastMethod is a capability method marked -Downcast, resolved to the
// implementer type its result narrows to.
type downcastMethod struct {
	method      string
	targetType  string
	withContext bool
}

// Build validates one interface declaration against its discovered
// implementation sites and produces an immutable Definition.
//
// declaredTypes lists the package's top-level type names; synthesized value
// type names are checked against it for collisions.
func Build(decl *models.InterfaceDecl, impls []models.ImplementerDecl, declaredTypes map[string]bool) (*models.Definition, error) {
	meta := decl.Meta

	def := &models.Definition{
		Interface:   decl.Name,
		PackageName: decl.PackageName,
		PackagePath: decl.PackagePath,
		Name:        meta.Name,
		Description: meta.Description,
		Context:     meta.Context,
		Scalar:      meta.Scalar,
		Loc:         decl.Loc,
	}
	if def.Name == "" {
		def.Name = decl.Name
	}
	if def.Description == "" {
		def.Description = decl.Doc
	}
	if def.Context == "" {
		def.Context = DefaultContextType
	}

	// An -Async marker on any implementation site means field resolution
	// may suspend for that implementer, so it widens the async default the
	// same way the interface-level flag does.
	asyncDefault := meta.Async
	for _, impl := range impls {
		if impl.Meta.Async {
			asyncDefault = true
		}
	}

	downcasts, err := buildFields(decl, def, asyncDefault)
	if err != nil {
		return nil, err
	}

	if err := selectRepresentation(decl, declaredTypes, def); err != nil {
		return nil, err
	}

	if err := buildImplementers(decl, impls, downcasts, def); err != nil {
		return nil, err
	}

	if def.Kind == models.EnumRepresentation {
		def.Enum.Variants = make([]string, len(def.Implementers))
		for i, impl := range def.Implementers {
			def.Enum.Variants[i] = impl.Type
		}
	}

	return def, nil
}

// buildFields classifies every non-ignored method into a field definition,
// collecting -Downcast methods for the downcast resolver. Field order
// follows declaration order.
func buildFields(decl *models.InterfaceDecl, def *models.Definition, asyncDefault bool) ([]downcastMethod, error) {
	var downcasts []downcastMethod
	seen := make(map[string]bool)

	for i := range decl.Methods {
		method := &decl.Methods[i]
		fieldMeta := method.Field

		if fieldMeta.Ignore {
			continue
		}
		if fieldMeta.Downcast {
			dc, err := resolveDowncastMethod(method)
			if err != nil {
				return nil, err
			}
			downcasts = append(downcasts, *dc)
			continue
		}

		args, err := classifyArguments(method)
		if err != nil {
			return nil, err
		}

		if method.Result == "" {
			return nil, semanticErrf(MissingResultCode, method.Loc,
				"method %s of interface %s produces no value and cannot back a field", method.Name, decl.Name)
		}

		field := models.FieldDefinition{
			Name:        fieldMeta.Name,
			Type:        method.Result,
			HasError:    method.HasError,
			Method:      method.Name,
			Description: fieldMeta.Description,
			Deprecated:  fieldMeta.Deprecated,
			Arguments:   args,
			IsAsync:     fieldMeta.Async || asyncDefault,
		}
		if field.Name == "" {
			field.Name = exposedName(method.Name)
		}
		if seen[field.Name] {
			return nil, semanticErrf(DuplicateFieldCode, method.Loc,
				"field %q is exposed by more than one method of interface %s", field.Name, decl.Name)
		}
		seen[field.Name] = true

		def.Fields = append(def.Fields, field)
	}
	return downcasts, nil
}

// classifyArguments maps every parameter to Regular, Context, or Executor.
// At most one Context and one Executor parameter are allowed per method; a
// parameter typed context.Context classifies as Context without annotation.
func classifyArguments(method *models.MethodDecl) ([]models.MethodArgument, error) {
	var args []models.MethodArgument
	contexts, executors := 0, 0

	for _, param := range method.Params {
		argMeta := method.Args[param.Name]

		arg := models.MethodArgument{
			Kind:  models.RegularArgument,
			Param: param.Name,
			Type:  param.Type,
		}
		switch {
		case argMeta != nil && argMeta.Executor:
			arg.Kind = models.ExecutorArgument
			executors++
		case (argMeta != nil && argMeta.Context) || param.Type == DefaultContextType:
			arg.Kind = models.ContextArgument
			contexts++
		default:
			arg.Name = param.Name
			if argMeta != nil {
				if argMeta.Name != "" {
					arg.Name = argMeta.Name
				}
				arg.Description = argMeta.Description
				arg.Default = argMeta.Default
			}
		}
		args = append(args, arg)
	}

	if contexts > 1 {
		return nil, semanticErrf(ArgumentClassificationCode, method.Loc,
			"method %s declares %d context parameters; at most one is allowed", method.Name, contexts)
	}
	if executors > 1 {
		return nil, semanticErrf(ArgumentClassificationCode, method.Loc,
			"method %s declares %d executor parameters; at most one is allowed", method.Name, executors)
	}
	return args, nil
}

// resolveDowncastMethod validates a -Downcast method's shape: it must
// return a pointer to the implementer type it narrows to, and may take at
// most a context parameter.
func resolveDowncastMethod(method *models.MethodDecl) (*downcastMethod, error) {
	if len(method.Result) < 2 || method.Result[0] != '*' {
		return nil, semanticErrf(InvalidDowncastCode, method.Loc,
			"downcast method %s must return a pointer to the implementer type, got %q", method.Name, method.Result)
	}

	dc := &downcastMethod{
		method:     method.Name,
		targetType: models.VariantName(method.Result),
	}
	for _, param := range method.Params {
		argMeta := method.Args[param.Name]
		if (argMeta != nil && argMeta.Context) || param.Type == DefaultContextType {
			dc.withContext = true
			continue
		}
		return nil, semanticErrf(InvalidDowncastCode, method.Loc,
			"downcast method %s takes a regular parameter %q; only a context parameter is allowed",
			method.Name, param.Name)
	}
	return dc, nil
}

// exposedName derives the schema field name from a Go method identifier:
// lowerCamel with leading acronyms folded (ID -> id, HTMLBody -> htmlBody).
func exposedName(method string) string {
	runes := []rune(method)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	switch {
	case upper == 0:
		return method
	case upper == len(runes):
		for i := range runes {
			runes[i] = unicode.ToLower(runes[i])
		}
	case upper == 1:
		runes[0] = unicode.ToLower(runes[0])
	default:
		// Keep the last upper rune: it starts the next word.
		for i := 0; i < upper-1; i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	return string(runes)
}
