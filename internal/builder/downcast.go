package builder

import (
	"github.com/toyz/ifacegen/internal/models"
)

// buildImplementers resolves the implementer set and each implementer's
// downcast strategy.
//
// Strategy selection order, first match wins:
//  1. an external function registered via -On for the implementer's type;
//  2. exactly one -Downcast method narrowing to that type;
//  3. none — valid under the tagged-union backend, where the active variant
//     identifies the concrete type structurally, and under dynamic dispatch
//     when the implementation site opted into type-assertion narrowing
//     with -Dyn.
func buildImplementers(
	decl *models.InterfaceDecl,
	impls []models.ImplementerDecl,
	downcasts []downcastMethod,
	def *models.Definition,
) error {
	meta := decl.Meta

	// Implementation-site options apply whether the implementer set comes
	// from the explicit -Implementers list or from discovery.
	siteMeta := make(map[string]*models.ImplementerMeta)
	for _, impl := range impls {
		siteMeta[models.VariantName(impl.TypeName)] = impl.Meta
	}

	var sources []string
	if len(meta.Implementers) > 0 {
		sources = meta.Implementers
	} else {
		for _, impl := range impls {
			sources = append(sources, impl.TypeName)
		}
	}

	if len(sources) == 0 && def.Kind == models.EnumRepresentation {
		return semanticErrf(EmptyImplementerSetCode, decl.Loc,
			"interface %s has no implementers; the tagged-union backend requires at least one variant", decl.Name)
	}

	for _, typeName := range sources {
		impl := models.ImplementerDefinition{
			Type:        typeName,
			GraphQLName: models.VariantName(typeName),
		}
		site := siteMeta[impl.GraphQLName]
		if site != nil {
			impl.Scalar = site.Scalar
		}

		strategy, err := resolveDowncast(decl, def, typeName, downcasts, site != nil && site.Dyn)
		if err != nil {
			return err
		}
		impl.Downcast = strategy
		if strategy != nil && strategy.Kind == models.DowncastViaMethod && strategy.WithContext {
			impl.ContextType = def.Context
		}

		def.Implementers = append(def.Implementers, impl)
	}
	return nil
}

func resolveDowncast(
	decl *models.InterfaceDecl,
	def *models.Definition,
	typeName string,
	downcasts []downcastMethod,
	dynOptIn bool,
) (*models.Downcast, error) {
	if external, ok := decl.Meta.DowncastFor(typeName); ok {
		return &models.Downcast{Kind: models.DowncastViaFunc, FuncPath: external.FuncPath}, nil
	}

	var matched *downcastMethod
	for i := range downcasts {
		if downcasts[i].targetType != models.VariantName(typeName) {
			continue
		}
		if matched != nil {
			return nil, semanticErrf(InvalidDowncastCode, decl.Loc,
				"implementer %s of interface %s has more than one downcast method (%s, %s)",
				typeName, decl.Name, matched.method, downcasts[i].method)
		}
		matched = &downcasts[i]
	}
	if matched != nil {
		return &models.Downcast{
			Kind:        models.DowncastViaMethod,
			Method:      matched.method,
			WithContext: matched.withContext,
		}, nil
	}

	if def.Kind == models.DynRepresentation && !dynOptIn {
		return nil, semanticErrf(UnresolvableImplementerCode, decl.Loc,
			"implementer %s of interface %s cannot be resolved: the dynamic-dispatch backend requires a downcast method, an -On entry, or a -Dyn implements site",
			typeName, decl.Name)
	}
	return nil, nil
}
