package cli

import (
	"fmt"

	"github.com/toyz/ifacegen/internal/utils"
)

// ModuleResolver determines the module path the scanned packages belong to.
type ModuleResolver struct {
	// WorkingDir is where the go.mod search starts; defaults to ".".
	WorkingDir string
}

// NewModuleResolver creates a resolver rooted at the current directory.
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{WorkingDir: "."}
}

// ResolveModuleName returns customName when set, else the module path of
// the nearest enclosing go.mod.
func (r *ModuleResolver) ResolveModuleName(customName string) (string, error) {
	if customName != "" {
		return customName, nil
	}

	goModPath, err := utils.FindGoModFile(r.WorkingDir)
	if err != nil {
		return "", fmt.Errorf("failed to locate go.mod: %w", err)
	}
	return utils.ParseModuleName(goModPath)
}
