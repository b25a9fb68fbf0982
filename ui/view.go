package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const categoryPaneWidth = 28

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("cmdfolder"))
	b.WriteString("\n\n")

	// Search bar
	b.WriteString(a.searchInput.View())
	b.WriteString("\n\n")

	listHeight := a.height - a.preview.Height - 14
	if listHeight < 3 {
		listHeight = 3
	}

	// Panes
	var right string
	switch a.mode {
	case modeCategoryForm, modeCommandForm:
		right = a.renderForm()
	case modeMove:
		right = a.renderMove(listHeight)
	default:
		right = a.renderCommands(listHeight)
	}
	rightWidth := a.width - categoryPaneWidth - 6
	if rightWidth < 20 {
		rightWidth = 20
	}

	left := a.paneStyle(paneCategories).Width(categoryPaneWidth).Render(a.renderCategories(listHeight))
	right = a.paneStyle(paneCommands).Width(rightWidth).Render(right)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	// Delete confirmation
	if a.mode == modeDelete {
		b.WriteString(warningStyle.Render(a.deletePrompt()))
		b.WriteString("\n")
	}

	// Param input
	if a.mode == modeParam {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Enter value for <%s>: ", a.paramNames[a.paramIndex])))
		b.WriteString(a.paramInput.View())
		b.WriteString("\n")
	}

	// Preview pane
	b.WriteString(paneTitleStyle.Render("PREVIEW"))
	b.WriteString("\n")
	b.WriteString(borderStyle.Width(a.width - 4).Render(a.preview.View()))
	b.WriteString("\n")

	// Status/error
	if a.err != "" {
		b.WriteString(errorStyle.Render("Error: " + a.err))
		b.WriteString("\n")
	}
	if a.status != "" {
		b.WriteString(successStyle.Render(a.status))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString(a.renderHelp())

	return appStyle.Render(b.String())
}

func (a *App) paneStyle(p pane) lipgloss.Style {
	if a.focus == p && a.mode == modeNormal {
		return focusedBorderStyle
	}
	return borderStyle
}

func (a *App) renderCategories(height int) string {
	lines := []string{paneTitleStyle.Render("CATEGORIES")}
	if len(a.categories) == 0 {
		lines = append(lines, mutedStyle.Render("No categories. Press 'a' to add one."))
		return strings.Join(lines, "\n")
	}

	start, end := window(a.catCursor, len(a.categories), height)
	for i := start; i < end; i++ {
		cat := a.categories[i]
		prefix := "  "
		style := normalStyle
		if cat.ID == a.selected && a.searchInput.Value() == "" {
			prefix = "▸ "
			style = selectedStyle
		}
		count := countStyle.Render(fmt.Sprintf(" (%d)", a.catalog.CountIn(cat.ID)))
		lines = append(lines, style.Render(prefix+truncate(cat.Name, categoryPaneWidth-10))+count)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderCommands(height int) string {
	title := "COMMANDS"
	if q := a.searchInput.Value(); q != "" {
		title = fmt.Sprintf("SEARCH: %q (%d)", q, len(a.filtered))
	} else if a.selected != "" {
		title = strings.ToUpper(a.categoryName(a.selected))
	}
	lines := []string{paneTitleStyle.Render(title)}

	if len(a.filtered) == 0 {
		msg := "No commands in this category. Press 'a' to add one."
		if a.searchInput.Value() != "" {
			msg = "No commands match your search."
		}
		lines = append(lines, mutedStyle.Render(msg))
		return strings.Join(lines, "\n")
	}

	// Each command takes two lines.
	start, end := window(a.cmdCursor, len(a.filtered), height/2)
	searching := a.searchInput.Value() != ""
	for i := start; i < end; i++ {
		cmd := a.filtered[i]
		prefix := "  "
		style := normalStyle
		if i == a.cmdCursor {
			prefix = "▸ "
			style = selectedStyle
		}

		desc := cmd.Description
		if searching {
			desc = "[" + a.categoryName(cmd.CategoryID) + "] " + desc
		}
		lines = append(lines,
			style.Render(prefix+truncate(cmd.Text, a.width-categoryPaneWidth-14)),
			cmdPreviewStyle.Render("  "+truncate(desc, a.width-categoryPaneWidth-14)),
		)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderMove(height int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Move Command"))
	b.WriteString("\n")
	if a.pendingCmd != nil {
		b.WriteString(cmdPreviewStyle.Render(a.pendingCmd.Text))
		b.WriteString("\n")
	}
	b.WriteString(a.moveInput.View())
	b.WriteString("\n\n")

	if len(a.moveMatches) == 0 {
		b.WriteString(mutedStyle.Render("No matching category"))
		b.WriteString("\n")
	}
	start, end := window(a.moveIndex, len(a.moveMatches), height-4)
	for i := start; i < end; i++ {
		cat := a.moveMatches[i]
		if i == a.moveIndex {
			b.WriteString(selectedStyle.Render("▸ " + cat.Name))
		} else {
			b.WriteString(normalStyle.Render("  " + cat.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type: filter • ↑/↓: choose • enter: move • esc: cancel"))
	return b.String()
}

func (a *App) renderForm() string {
	var b strings.Builder

	var title string
	var labels []string
	switch {
	case a.mode == modeCategoryForm && a.editingCat == nil:
		title, labels = "Add Category", []string{"Category Name"}
	case a.mode == modeCategoryForm:
		title, labels = "Rename Category", []string{"Category Name"}
	case a.editingCmd == nil:
		title, labels = "Add Command", []string{"Command Text", "Description", "Category"}
	default:
		title, labels = "Edit Command", []string{"Command Text", "Description", "Category"}
	}
	b.WriteString(labelStyle.Render(title))
	b.WriteString("\n\n")

	for i, input := range a.formInputs {
		b.WriteString(labelStyle.Render(labels[i] + ": "))
		style := inputStyle
		if i == a.formFocus {
			style = focusedInputStyle
		}
		b.WriteString(style.Width(a.width - categoryPaneWidth - 30).Render(input.View()))
		b.WriteString("\n")
	}

	if a.mode == modeCommandForm {
		if matches := a.catalog.MatchCategories(a.formInputs[fieldCategory].Value()); len(matches) > 0 {
			b.WriteString(mutedStyle.Render("→ " + matches[0].Name))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field • enter: save • esc: cancel"))
	return b.String()
}

func (a *App) deletePrompt() string {
	if a.deleteKind == paneCategories {
		n := a.catalog.CountIn(a.deleteID)
		return fmt.Sprintf("Delete category '%s' and its %d commands? (y/n)", a.categoryName(a.deleteID), n)
	}
	if cmd, ok := a.catalog.Command(a.deleteID); ok {
		return fmt.Sprintf("Delete '%s'? (y/n)", truncate(cmd.Text, 40))
	}
	return "Delete? (y/n)"
}

func (a *App) renderHelp() string {
	if a.mode != modeNormal {
		return ""
	}

	type helpKey struct{ key, desc string }
	keys := []helpKey{{"tab", "switch pane"}, {"/", "search"}, {"enter", "copy"}, {"a", "add"}}
	if a.focus == paneCategories {
		keys = append(keys, helpKey{"r", "rename"})
	} else {
		keys = append(keys, helpKey{"e", "edit"}, helpKey{"m", "move"})
	}
	keys = append(keys, helpKey{"d", "delete"}, helpKey{"q", "quit"})

	var parts []string
	for _, k := range keys {
		parts = append(parts, helpKeyStyle.Render(k.key)+" "+helpStyle.Render(k.desc))
	}

	return strings.Join(parts, "  ")
}

// window returns the [start, end) range of a list of n items that keeps
// cursor visible in height rows.
func window(cursor, n, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > n {
		end = n
	}
	return start, end
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
