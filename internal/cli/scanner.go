package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirectoryScanner resolves directory arguments, including Go-style
// recursive patterns like "./...", to the set of directories containing Go
// files.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories expands every argument to concrete directories holding at
// least one non-generated Go file.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	add := func(dir string) error {
		ok, err := hasGoFiles(dir)
		if err != nil {
			return err
		}
		if ok && !seen[dir] {
			seen[dir] = true
			result = append(result, dir)
		}
		return nil
	}

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}
			err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return nil
				}
				if !info.IsDir() {
					return nil
				}
				if skipDir(info.Name()) && path != baseDir {
					return filepath.SkipDir
				}
				return add(path)
			})
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", rootDir, err)
			}
			continue
		}

		if _, err := os.Stat(rootDir); err != nil {
			return nil, fmt.Errorf("directory %s: %w", rootDir, err)
		}
		if err := add(rootDir); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// skipDir filters directories the Go toolchain itself would not build.
func skipDir(name string) bool {
	if name == "testdata" || name == "vendor" {
		return true
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func hasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if strings.HasPrefix(name, "autogen_") {
			continue
		}
		return true, nil
	}
	return false, nil
}
