package catalog

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minNameLen = 2
	maxNameLen = 50
	minTextLen = 2
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

// ValidateCategoryName trims name and checks it. The trimmed name is
// returned on success.
func ValidateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)

	switch {
	case name == "":
		return "", &ValidationError{Field: "name", Reason: "category name cannot be empty"}
	case n < minNameLen:
		return "", &ValidationError{Field: "name", Reason: "category name must be at least 2 characters long"}
	case n > maxNameLen:
		return "", &ValidationError{Field: "name", Reason: "category name cannot exceed 50 characters"}
	case !namePattern.MatchString(name):
		return "", &ValidationError{Field: "name", Reason: "category name can only contain letters, numbers, spaces, hyphens, and underscores"}
	}
	return name, nil
}

// ValidateCommandText trims text and checks it.
func ValidateCommandText(text string) (string, error) {
	text = strings.TrimSpace(text)

	switch {
	case text == "":
		return "", &ValidationError{Field: "text", Reason: "command text cannot be empty"}
	case utf8.RuneCountInString(text) < minTextLen:
		return "", &ValidationError{Field: "text", Reason: "command text must be at least 2 characters long"}
	}
	return text, nil
}
