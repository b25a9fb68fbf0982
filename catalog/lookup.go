package catalog

import (
	"strings"

	"cmdfolder/model"

	"github.com/sahilm/fuzzy"
)

// MatchCategories ranks categories by a fuzzy match of pattern against their
// names, best first. An empty pattern returns every category in order.
func (c *Catalog) MatchCategories(pattern string) []model.Category {
	categories := c.Categories()
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return categories
	}

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}

	matches := fuzzy.Find(pattern, names)
	out := make([]model.Category, len(matches))
	for i, m := range matches {
		out[i] = categories[m.Index]
	}
	return out
}

// ResolveCategory finds a category by id, then by case-insensitive name, then
// by best fuzzy match on name.
func (c *Catalog) ResolveCategory(ref string) (model.Category, error) {
	if cat, ok := c.Category(ref); ok {
		return cat, nil
	}

	ref = strings.TrimSpace(ref)
	for _, cat := range c.Categories() {
		if strings.EqualFold(cat.Name, ref) {
			return cat, nil
		}
	}

	if matches := c.MatchCategories(ref); ref != "" && len(matches) > 0 {
		return matches[0], nil
	}
	return model.Category{}, &NotFoundError{Kind: "category", ID: ref}
}
