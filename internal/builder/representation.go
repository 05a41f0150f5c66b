package builder

import "github.com/toyz/ifacegen/internal/models"

// selectRepresentation picks the backend for the interface value: a
// dynamic-dispatch handle when -Dyn names one, else the tagged union. The
// -Dyn/-Enum conflict is already rejected by the annotation merger.
func selectRepresentation(decl *models.InterfaceDecl, declaredTypes map[string]bool, def *models.Definition) error {
	meta := decl.Meta

	if meta.DynAlias != "" {
		if err := checkSynthesizedName(decl, declaredTypes, meta.DynAlias); err != nil {
			return err
		}
		def.Kind = models.DynRepresentation
		def.Dyn = &models.DynType{
			Name:     meta.DynAlias,
			Exported: decl.Exported,
			Context:  def.Context,
		}
		return nil
	}

	name := meta.EnumAlias
	if name == "" {
		name = decl.Name + "Value"
	}
	if err := checkSynthesizedName(decl, declaredTypes, name); err != nil {
		return err
	}
	def.Kind = models.EnumRepresentation
	def.Enum = &models.EnumType{
		Name:     name,
		Exported: decl.Exported,
		Methods:  decl.Methods,
	}
	return nil
}

func checkSynthesizedName(decl *models.InterfaceDecl, declaredTypes map[string]bool, name string) error {
	if declaredTypes[name] {
		return semanticErrf(NameCollisionCode, decl.Loc,
			"generated value type %s for interface %s collides with an existing declaration in package %s",
			name, decl.Name, decl.PackageName)
	}
	return nil
}
