// Package generator assembles the per-interface dispatch files from
// validated definitions and the emission templates.
package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/ifacegen/internal/models"
	"github.com/toyz/ifacegen/internal/templates"
	"github.com/toyz/ifacegen/internal/utils"
)

const runtimeImportPath = "github.com/toyz/ifacegen/pkg/gqlruntime"
const astImportPath = "github.com/vektah/gqlparser/v2/ast"

// Generator emits one dispatch file per compiled interface.
type Generator struct{}

// NewGenerator creates a code generator instance.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateInterfaceFile produces the complete autogen_<iface>_graphql.go
// content for one definition. The six artifacts are always emitted
// together; a failure in any of them yields no file at all.
func (g *Generator) GenerateInterfaceFile(def *models.Definition) (*models.GeneratedFile, error) {
	sections := []struct {
		name     string
		generate func(*models.Definition) (string, error)
	}{
		{"value type", templates.GenerateValueType},
		{"conformance markers", templates.GenerateMarkers},
		{"type registration", templates.GenerateRegistration},
		{"sync resolver", templates.GenerateSyncResolver},
		{"async resolver", templates.GenerateAsyncResolver},
		{"type resolver", templates.GenerateTypeResolver},
	}

	var content strings.Builder
	content.WriteString("// Code generated by ifacegen. DO NOT EDIT.\n")
	content.WriteString("// This file was automatically generated and should not be modified manually.\n\n")
	content.WriteString(fmt.Sprintf("package %s\n\n", def.PackageName))
	content.WriteString(importBlock())

	for _, section := range sections {
		code, err := section.generate(def)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s for interface %s: %w", section.name, def.Interface, err)
		}
		content.WriteString(code)
	}

	filePath := filepath.Join(def.PackagePath, FileName(def.Interface))
	formatted, err := utils.FormatGeneratedSource(filePath, content.String())
	if err != nil {
		return nil, fmt.Errorf("interface %s: %w", def.Interface, err)
	}

	return &models.GeneratedFile{
		Interface:   def.Interface,
		PackageName: def.PackageName,
		FilePath:    filePath,
		Content:     formatted,
	}, nil
}

// FileName is the destination file name for an interface's dispatch code.
func FileName(ifaceName string) string {
	return fmt.Sprintf("autogen_%s_graphql.go", strings.ToLower(ifaceName))
}

// importBlock emits every import the templates may reference; goimports
// prunes the unused ones during formatting.
func importBlock() string {
	return fmt.Sprintf(`import (
	"context"
	"fmt"

	"%s"
	"%s"
)

`, astImportPath, runtimeImportPath)
}
