package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanDirectoriesRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "model", "node.go"), "package model\n")
	writeFile(t, filepath.Join(root, "model", "sub", "user.go"), "package sub\n")
	writeFile(t, filepath.Join(root, "docs", "readme.md"), "no go files here\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{root + "/..."})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(root, "model"),
		filepath.Join(root, "model", "sub"),
	}, dirs)
}

func TestScanDirectoriesSkipsToolchainIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "model", "node.go"), "package model\n")
	writeFile(t, filepath.Join(root, "vendor", "dep.go"), "package dep\n")
	writeFile(t, filepath.Join(root, "model", "testdata", "fixture.go"), "package fixture\n")
	writeFile(t, filepath.Join(root, "_build", "gen.go"), "package gen\n")
	writeFile(t, filepath.Join(root, ".hidden", "x.go"), "package x\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{root + "/..."})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "model")}, dirs)
}

func TestScanDirectoriesIgnoresGeneratedAndTestFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "autogen_node_graphql.go"), "package model\n")
	writeFile(t, filepath.Join(root, "node_test.go"), "package model\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{root})
	require.NoError(t, err)
	require.Empty(t, dirs)
}

func TestScanDirectoriesMissingDirectory(t *testing.T) {
	_, err := NewDirectoryScanner().ScanDirectories([]string{"/does/not/exist"})
	require.Error(t, err)
}

func TestCleanGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	generated := filepath.Join(root, "model", "autogen_node_graphql.go")
	handwritten := filepath.Join(root, "model", "node.go")
	writeFile(t, generated, "package model\n")
	writeFile(t, handwritten, "package model\n")

	removed, err := NewCleaner().CleanGeneratedFiles([]string{root + "/..."})
	require.NoError(t, err)
	require.Equal(t, []string{generated}, removed)

	_, err = os.Stat(generated)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(handwritten)
	require.NoError(t, err)
}

func TestCleanMissingDirectoryIsNoop(t *testing.T) {
	removed, err := NewCleaner().CleanGeneratedFiles([]string{filepath.Join(t.TempDir(), "gone")})
	require.NoError(t, err)
	require.Empty(t, removed)
}
