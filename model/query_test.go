package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCommands() []Command {
	return []Command{
		{ID: "c1", Text: "docker ps", Description: "List running containers", CategoryID: "docker"},
		{ID: "c2", Text: "git status", Description: "", CategoryID: "git"},
		{ID: "c3", Text: "ls -la", Description: "List all files", CategoryID: "linux"},
		{ID: "c4", Text: "git LOG --oneline", Description: "Show history", CategoryID: "git"},
	}
}

func ids(cmds []Command) []string {
	out := []string{}
	for _, c := range cmds {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterCommands(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		categoryID string
		want       []string
	}{
		{"no filter returns everything", "", "", []string{"c1", "c2", "c3", "c4"}},
		{"category only", "", "git", []string{"c2", "c4"}},
		{"unknown category", "", "nope", []string{}},
		{"query matches text", "git", "", []string{"c2", "c4"}},
		{"query is case insensitive", "log", "", []string{"c4"}},
		{"query matches description", "containers", "", []string{"c1"}},
		{"query matches text or description", "list", "", []string{"c1", "c3"}},
		{"query ignores category", "ls", "git", []string{"c3"}},
		{"query with no match", "kubectl", "", []string{}},
		{"query containing spaces", "ls -", "", []string{"c3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCommands(sampleCommands(), tt.query, tt.categoryID)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterCommands_EmptyDescriptionNeverMatches(t *testing.T) {
	cmds := []Command{{ID: "x", Text: "pwd"}}
	assert.Empty(t, FilterCommands(cmds, "a", ""))
}

func TestFilterCommands_NoFilterReturnsInputUnmodified(t *testing.T) {
	cmds := sampleCommands()
	got := FilterCommands(cmds, "", "")
	assert.Equal(t, cmds, got)
}

func TestQuery_Apply(t *testing.T) {
	q := Query{Search: "git", CategoryID: "docker"}
	assert.Equal(t, []string{"c2", "c4"}, ids(q.Apply(sampleCommands())))

	q = Query{CategoryID: "docker"}
	assert.Equal(t, []string{"c1"}, ids(q.Apply(sampleCommands())))
}

func TestCommandPatch_Apply(t *testing.T) {
	text := "git log"
	cat := "other"
	c := Command{ID: "c", Text: "git status", Description: "keep", CategoryID: "git"}

	got := CommandPatch{Text: &text, CategoryID: &cat}.Apply(c)
	assert.Equal(t, "git log", got.Text)
	assert.Equal(t, "keep", got.Description)
	assert.Equal(t, "other", got.CategoryID)
	assert.Equal(t, "git status", c.Text)
}

func TestDocument_Clone(t *testing.T) {
	d := Document{Categories: []Category{{ID: "a"}}, Commands: []Command{{ID: "b"}}}
	c := d.Clone()
	c.Categories[0].Name = "changed"
	c.Commands[0].Text = "changed"
	assert.Empty(t, d.Categories[0].Name)
	assert.Empty(t, d.Commands[0].Text)
}
