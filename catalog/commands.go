package catalog

import (
	"slices"
	"strings"

	"cmdfolder/model"
)

// NewCommand is the input of AddCommand.
type NewCommand struct {
	Text        string
	Description string
	CategoryID  string
}

// AddCommand validates the input and appends a new command to an existing
// category.
func (c *Catalog) AddCommand(in NewCommand) (model.Command, error) {
	text, err := ValidateCommandText(in.Text)
	if err != nil {
		return model.Command{}, err
	}
	if in.CategoryID == "" {
		return model.Command{}, &ValidationError{Field: "categoryId", Reason: "please select a category"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.categoryIndex(in.CategoryID) < 0 {
		return model.Command{}, &NotFoundError{Kind: "category", ID: in.CategoryID}
	}

	cmd := model.Command{
		ID:          c.freshID("command"),
		Text:        text,
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		CreatedAt:   c.now(),
	}
	commands := append(slices.Clone(c.commands), cmd)
	c.commit("add command", c.categories, commands)
	return cmd, nil
}

// EditCommand merges patch into an existing command. Patched text is
// validated like AddCommand and a patched category must exist.
func (c *Catalog) EditCommand(id string, patch model.CommandPatch) (model.Command, error) {
	if patch.Text != nil {
		text, err := ValidateCommandText(*patch.Text)
		if err != nil {
			return model.Command{}, err
		}
		patch.Text = &text
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		patch.Description = &desc
	}
	if patch.CategoryID != nil && *patch.CategoryID == "" {
		return model.Command{}, &ValidationError{Field: "categoryId", Reason: "please select a category"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.commandIndex(id)
	if i < 0 {
		return model.Command{}, &NotFoundError{Kind: "command", ID: id}
	}
	if patch.CategoryID != nil && c.categoryIndex(*patch.CategoryID) < 0 {
		return model.Command{}, &NotFoundError{Kind: "category", ID: *patch.CategoryID}
	}

	commands := slices.Clone(c.commands)
	commands[i] = patch.Apply(commands[i])
	c.commit("edit command", c.categories, commands)
	return commands[i], nil
}

// MoveCommand reassigns a command to another existing category.
func (c *Catalog) MoveCommand(id, newCategoryID string) (model.Command, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.commandIndex(id)
	if i < 0 {
		return model.Command{}, &NotFoundError{Kind: "command", ID: id}
	}
	if c.categoryIndex(newCategoryID) < 0 {
		return model.Command{}, &NotFoundError{Kind: "category", ID: newCategoryID}
	}

	commands := slices.Clone(c.commands)
	commands[i].CategoryID = newCategoryID
	c.commit("move command", c.categories, commands)
	return commands[i], nil
}

// DeleteCommand removes a command. Unknown ids are a no-op; the result reports
// whether anything was removed.
func (c *Catalog) DeleteCommand(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.commandIndex(id) < 0 {
		return false
	}
	commands := slices.DeleteFunc(slices.Clone(c.commands), func(cmd model.Command) bool {
		return cmd.ID == id
	})
	c.commit("delete command", c.categories, commands)
	return true
}
