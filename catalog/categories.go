package catalog

import (
	"slices"

	"cmdfolder/model"
)

// AddCategory validates name and appends a new category.
func (c *Catalog) AddCategory(name string) (model.Category, error) {
	name, err := ValidateCategoryName(name)
	if err != nil {
		return model.Category{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cat := model.Category{
		ID:        c.freshID("category"),
		Name:      name,
		CreatedAt: c.now(),
	}
	categories := append(slices.Clone(c.categories), cat)
	c.commit("add category", categories, c.commands)
	return cat, nil
}

// RenameCategory replaces the name of an existing category.
func (c *Catalog) RenameCategory(id, newName string) (model.Category, error) {
	name, err := ValidateCategoryName(newName)
	if err != nil {
		return model.Category{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.categoryIndex(id)
	if i < 0 {
		return model.Category{}, &NotFoundError{Kind: "category", ID: id}
	}

	categories := slices.Clone(c.categories)
	categories[i].Name = name
	c.commit("rename category", categories, c.commands)
	return categories[i], nil
}

// DeleteCategory removes the category and every command that belongs to it
// in one write. Unknown ids are a no-op. It returns how many commands were
// removed with the category.
func (c *Catalog) DeleteCategory(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.categoryIndex(id) < 0 {
		return 0
	}

	categories := slices.DeleteFunc(slices.Clone(c.categories), func(cat model.Category) bool {
		return cat.ID == id
	})
	commands := slices.DeleteFunc(slices.Clone(c.commands), func(cmd model.Command) bool {
		return cmd.CategoryID == id
	})
	removed := len(c.commands) - len(commands)

	c.commit("delete category", categories, commands)
	return removed
}
