package model

import "strings"

// Query is what the list view is currently showing: a free-text search or a
// single category. Search wins when both are set.
type Query struct {
	Search     string
	CategoryID string
}

// Apply runs FilterCommands with the query's fields.
func (q Query) Apply(commands []Command) []Command {
	return FilterCommands(commands, q.Search, q.CategoryID)
}

// FilterCommands returns the commands to display. A non-empty query matches
// text or description as a case-insensitive substring across all categories;
// otherwise a non-empty categoryID keeps that category only; otherwise the
// input is returned as is. Relative order is preserved.
func FilterCommands(commands []Command, query, categoryID string) []Command {
	if query != "" {
		q := strings.ToLower(query)
		var out []Command
		for _, c := range commands {
			if strings.Contains(strings.ToLower(c.Text), q) ||
				(c.Description != "" && strings.Contains(strings.ToLower(c.Description), q)) {
				out = append(out, c)
			}
		}
		return out
	}

	if categoryID != "" {
		var out []Command
		for _, c := range commands {
			if c.CategoryID == categoryID {
				out = append(out, c)
			}
		}
		return out
	}

	return commands
}
