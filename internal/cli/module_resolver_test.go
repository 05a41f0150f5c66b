package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveModuleNameCustom(t *testing.T) {
	resolver := NewModuleResolver()
	name, err := resolver.ResolveModuleName("github.com/custom/module")
	require.NoError(t, err)
	require.Equal(t, "github.com/custom/module", name)
}

func TestResolveModuleNameFromGoMod(t *testing.T) {
	root := t.TempDir()
	goMod := "module github.com/example/app\n\ngo 1.25\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte(goMod), 0644))

	nested := filepath.Join(root, "internal", "model")
	require.NoError(t, os.MkdirAll(nested, 0755))

	resolver := &ModuleResolver{WorkingDir: nested}
	name, err := resolver.ResolveModuleName("")
	require.NoError(t, err)
	require.Equal(t, "github.com/example/app", name)
}

func TestResolveModuleNameNoGoMod(t *testing.T) {
	resolver := &ModuleResolver{WorkingDir: t.TempDir()}
	_, err := resolver.ResolveModuleName("")
	require.Error(t, err)
}
