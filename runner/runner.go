package runner

import (
	"fmt"
	"regexp"

	"github.com/atotto/clipboard"
)

// Placeholders are written either as <name> or {{name}}.
var paramRegex = regexp.MustCompile(`<([A-Za-z0-9_-]+)>|\{\{([A-Za-z0-9_-]+)\}\}`)

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// ExtractParams returns all placeholder names from a command string in order
// of first appearance.
func ExtractParams(cmd string) []string {
	matches := paramRegex.FindAllStringSubmatch(cmd, -1)
	seen := make(map[string]bool)
	var params []string
	for _, m := range matches {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if !seen[name] {
			seen[name] = true
			params = append(params, name)
		}
	}
	return params
}

// SubstituteParams replaces placeholders with provided values. Placeholders
// without a value are left as they are.
func SubstituteParams(cmd string, values map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(cmd, func(match string) string {
		m := paramRegex.FindStringSubmatch(match)
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if err := writeAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Available reports whether a clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}
