package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cleaner removes previously generated dispatch files.
type Cleaner struct {
	scanner *DirectoryScanner
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		scanner: NewDirectoryScanner(),
	}
}

// CleanGeneratedFiles removes every autogen_*_graphql.go file from the
// specified directories and returns the removed paths.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removed []string

	for _, dir := range directories {
		if strings.HasSuffix(dir, "/...") {
			baseDir := strings.TrimSuffix(dir, "/...")
			if baseDir == "" {
				baseDir = "."
			}
			err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
				if err != nil || !info.IsDir() {
					return nil
				}
				if skipDir(info.Name()) && path != baseDir {
					return filepath.SkipDir
				}
				return c.cleanSingleDirectory(path, &removed)
			})
			if err != nil {
				return removed, fmt.Errorf("failed to clean %s: %w", dir, err)
			}
			continue
		}
		if err := c.cleanSingleDirectory(dir, &removed); err != nil {
			return removed, fmt.Errorf("failed to clean directory %s: %w", dir, err)
		}
	}
	return removed, nil
}

func (c *Cleaner) cleanSingleDirectory(dir string, removed *[]string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "autogen_*_graphql.go"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", path, err)
		}
		*removed = append(*removed, path)
	}
	return nil
}
