package parser

import (
	"strings"

	"github.com/toyz/ifacegen/internal/annotations"
	"github.com/toyz/ifacegen/internal/models"
)

// Doc-comment extraction: descriptions default to the declaration's doc
// comment with annotation lines removed, and deprecation defaults to the
// standard Go `Deprecated:` convention.

const deprecatedPrefix = "Deprecated:"

// ExtractDescription returns the doc comment stripped of annotation lines
// and of the Deprecated: paragraph.
func ExtractDescription(doc string) string {
	var lines []string
	inDeprecated := false
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if annotations.IsAnnotation("//" + trimmed) {
			continue
		}
		if strings.HasPrefix(trimmed, deprecatedPrefix) {
			inDeprecated = true
			continue
		}
		if inDeprecated {
			// The Deprecated: paragraph runs to the next blank line.
			if trimmed == "" {
				inDeprecated = false
			}
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExtractDeprecation returns the deprecation carried by a Deprecated:
// paragraph, if any.
func ExtractDeprecation(doc string) *models.Deprecation {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, deprecatedPrefix) {
			continue
		}
		parts := []string{strings.TrimSpace(strings.TrimPrefix(trimmed, deprecatedPrefix))}
		for _, rest := range lines[i+1:] {
			rest = strings.TrimSpace(rest)
			if rest == "" {
				break
			}
			parts = append(parts, rest)
		}
		reason := strings.TrimSpace(strings.Join(parts, " "))
		return &models.Deprecation{Reason: reason, HasReason: reason != ""}
	}
	return nil
}
