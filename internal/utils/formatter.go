package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGeneratedSource formats generated Go source and resolves its import
// block with goimports. filename steers import grouping only; nothing is
// read from disk.
func FormatGeneratedSource(filename string, source string) (string, error) {
	processed, err := imports.Process(filename, []byte(source), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// Surface the underlying syntax error when there is one; it points
		// at a template bug, not at user input.
		fset := token.NewFileSet()
		if _, parseErr := parser.ParseFile(fset, filename, source, parser.ParseComments); parseErr != nil {
			return source, fmt.Errorf("generated code is not valid Go: %w", parseErr)
		}
		return source, fmt.Errorf("failed to resolve imports: %w", err)
	}

	formatted, err := format.Source(processed)
	if err != nil {
		return string(processed), fmt.Errorf("failed to format generated code: %w", err)
	}
	return string(formatted), nil
}

// WriteGeneratedFile formats source and writes it to filename.
func WriteGeneratedFile(filename string, source string) error {
	formatted, err := FormatGeneratedSource(filename, source)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(formatted), 0644)
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
