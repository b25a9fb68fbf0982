package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cmdfolder/catalog"
	"cmdfolder/model"
	"cmdfolder/runner"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeCategoryForm
	modeCommandForm
	modeDelete
	modeMove
	modeParam
)

type pane int

const (
	paneCategories pane = iota
	paneCommands
)

// Command form fields.
const (
	fieldText = iota
	fieldDescription
	fieldCategory
)

type App struct {
	catalog *catalog.Catalog
	copy    func(string) error
	toast   time.Duration

	categories []model.Category
	filtered   []model.Command
	selected   string

	// UI state
	mode      mode
	focus     pane
	catCursor int
	cmdCursor int
	width     int
	height    int
	err       string
	status    string
	statusSeq int

	// Search
	searchInput textinput.Model

	// Preview of the highlighted command
	preview viewport.Model

	// Forms (category add/rename, command add/edit)
	formInputs []textinput.Model
	formFocus  int
	editingCat *model.Category
	editingCmd *model.Command
	// Category the command form opened with. Used as is unless the
	// category field is changed, since names may repeat.
	formCatID   string
	formCatName string

	// Delete confirmation
	deleteKind pane
	deleteID   string

	// Move picker
	moveInput   textinput.Model
	moveMatches []model.Category
	moveIndex   int

	// Param input
	paramNames  []string
	paramValues map[string]string
	paramIndex  int
	paramInput  textinput.Model
	pendingCmd  *model.Command
}

// NewApp builds the UI over an initialized catalog. toast is how long status
// messages stay on screen.
func NewApp(c *catalog.Catalog, toast time.Duration) *App {
	search := textinput.New()
	search.Placeholder = "Search commands..."
	search.Prompt = "/ "

	app := &App{
		catalog:     c,
		copy:        runner.Copy,
		toast:       toast,
		searchInput: search,
		preview:     viewport.New(80, 4),
		paramValues: make(map[string]string),
	}

	app.categories = c.Categories()
	app.selected = c.LastSelected()
	if app.selected == "" && len(app.categories) > 0 {
		app.selected = app.categories[0].ID
	}
	app.refresh()
	return app
}

func (a *App) Init() tea.Cmd {
	return nil
}

type clearStatusMsg struct{ seq int }

type copiedMsg struct {
	text string
	err  error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width - 4  // account for app padding
		a.height = msg.Height - 2 // account for app padding
		a.preview.Width = a.width - 4
		a.preview.Height = 4
		a.updatePreview()
		return a, nil

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
			a.err = ""
		}
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			return a, a.setError("Failed to copy command!")
		}
		return a, a.setStatus("Command copied to clipboard!")

	case tea.KeyMsg:
		switch a.mode {
		case modeNormal:
			return a.updateNormal(msg)
		case modeSearch:
			return a.updateSearch(msg)
		case modeCategoryForm, modeCommandForm:
			return a.updateForm(msg)
		case modeDelete:
			return a.updateDelete(msg)
		case modeMove:
			return a.updateMove(msg)
		case modeParam:
			return a.updateParam(msg)
		}
	}

	return a, nil
}

func (a *App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "tab", "left", "right", "h", "l":
		if a.focus == paneCategories {
			a.focus = paneCommands
		} else {
			a.focus = paneCategories
		}

	case "up", "k":
		a.moveCursor(-1)

	case "down", "j":
		a.moveCursor(1)

	case "/":
		a.mode = modeSearch
		return a, a.searchInput.Focus()

	case "esc":
		if a.searchInput.Value() != "" {
			a.searchInput.SetValue("")
			a.refresh()
		}

	case "enter":
		if a.focus == paneCategories {
			a.focus = paneCommands
			return a, nil
		}
		if cmd := a.currentCommand(); cmd != nil {
			return a.copySelected(*cmd)
		}

	case "a":
		if a.focus == paneCategories {
			a.openCategoryForm(nil)
		} else {
			a.openCommandForm(nil)
		}
		return a, a.focusFormInput()

	case "r":
		if cat := a.currentCategory(); cat != nil && a.focus == paneCategories {
			a.openCategoryForm(cat)
			return a, a.focusFormInput()
		}

	case "e":
		if cmd := a.currentCommand(); cmd != nil && a.focus == paneCommands {
			a.openCommandForm(cmd)
			return a, a.focusFormInput()
		}

	case "m":
		if cmd := a.currentCommand(); cmd != nil && a.focus == paneCommands {
			a.openMove(cmd)
			return a, a.moveInput.Focus()
		}

	case "d":
		if a.focus == paneCategories {
			if cat := a.currentCategory(); cat != nil {
				a.mode = modeDelete
				a.deleteKind = paneCategories
				a.deleteID = cat.ID
			}
		} else if cmd := a.currentCommand(); cmd != nil {
			a.mode = modeDelete
			a.deleteKind = paneCommands
			a.deleteID = cmd.ID
		}
	}

	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.mode = modeNormal
		a.refresh()
		return a, nil

	case "enter", "down", "tab":
		a.searchInput.Blur()
		a.mode = modeNormal
		a.focus = paneCommands
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.cmdCursor = 0
	a.refresh()
	return a, cmd
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.closeForm()
		return a, nil

	case "tab", "down":
		a.formFocus = (a.formFocus + 1) % len(a.formInputs)
		return a, a.focusFormInput()

	case "shift+tab", "up":
		a.formFocus--
		if a.formFocus < 0 {
			a.formFocus = len(a.formInputs) - 1
		}
		return a, a.focusFormInput()

	case "enter":
		if a.mode == modeCategoryForm {
			return a.submitCategoryForm()
		}
		return a.submitCommandForm()

	default:
		var cmd tea.Cmd
		a.formInputs[a.formFocus], cmd = a.formInputs[a.formFocus].Update(msg)
		a.err = ""
		return a, cmd
	}
}

func (a *App) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		a.mode = modeNormal
		if a.deleteKind == paneCategories {
			removed := a.catalog.DeleteCategory(a.deleteID)
			if a.selected == a.deleteID {
				a.selected = ""
				if cats := a.catalog.Categories(); len(cats) > 0 {
					a.selected = cats[0].ID
				}
				a.catalog.RememberSelected(a.selected)
			}
			a.refresh()
			return a, a.setStatus(fmt.Sprintf("Category deleted! (%d commands removed)", removed))
		}
		a.catalog.DeleteCommand(a.deleteID)
		a.refresh()
		return a, a.setStatus("Command deleted!")

	case "n", "N", "esc":
		a.mode = modeNormal
		return a, nil
	}

	return a, nil
}

func (a *App) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.mode = modeNormal
		a.pendingCmd = nil
		return a, nil

	case "up":
		if a.moveIndex > 0 {
			a.moveIndex--
		}
		return a, nil

	case "down":
		if a.moveIndex < len(a.moveMatches)-1 {
			a.moveIndex++
		}
		return a, nil

	case "enter":
		if len(a.moveMatches) == 0 || a.pendingCmd == nil {
			return a, nil
		}
		target := a.moveMatches[a.moveIndex]
		a.mode = modeNormal
		_, err := a.catalog.MoveCommand(a.pendingCmd.ID, target.ID)
		a.pendingCmd = nil
		if err != nil {
			return a, a.setError(err.Error())
		}
		a.refresh()
		return a, a.setStatus(fmt.Sprintf("Command moved to %s!", target.Name))
	}

	var cmd tea.Cmd
	a.moveInput, cmd = a.moveInput.Update(msg)
	a.moveMatches = a.catalog.MatchCategories(a.moveInput.Value())
	a.moveIndex = 0
	return a, cmd
}

func (a *App) updateParam(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.mode = modeNormal
		a.pendingCmd = nil
		return a, nil

	case "enter":
		// Save current param value
		a.paramValues[a.paramNames[a.paramIndex]] = a.paramInput.Value()
		a.paramIndex++

		if a.paramIndex >= len(a.paramNames) {
			a.mode = modeNormal
			text := runner.SubstituteParams(a.pendingCmd.Text, a.paramValues)
			a.pendingCmd = nil
			return a, a.copyText(text)
		}

		// Next param
		a.paramInput.SetValue("")
		a.paramInput.Placeholder = a.paramNames[a.paramIndex]
		return a, nil

	default:
		var cmd tea.Cmd
		a.paramInput, cmd = a.paramInput.Update(msg)
		return a, cmd
	}
}

func (a *App) moveCursor(delta int) {
	if a.focus == paneCategories {
		next := a.catCursor + delta
		if next < 0 || next >= len(a.categories) {
			return
		}
		a.catCursor = next
		a.selectCategory(a.categories[next].ID)
		return
	}

	next := a.cmdCursor + delta
	if next < 0 || next >= len(a.filtered) {
		return
	}
	a.cmdCursor = next
	a.updatePreview()
}

// selectCategory shows a category and clears any search.
func (a *App) selectCategory(id string) {
	a.selected = id
	a.searchInput.SetValue("")
	a.cmdCursor = 0
	a.catalog.RememberSelected(id)
	a.refresh()
}

func (a *App) copySelected(cmd model.Command) (tea.Model, tea.Cmd) {
	params := runner.ExtractParams(cmd.Text)
	if len(params) == 0 {
		return a, a.copyText(cmd.Text)
	}

	a.mode = modeParam
	a.paramNames = params
	a.paramValues = make(map[string]string)
	a.paramIndex = 0
	a.pendingCmd = &cmd
	a.paramInput = textinput.New()
	a.paramInput.Placeholder = params[0]
	return a, a.paramInput.Focus()
}

func (a *App) copyText(text string) tea.Cmd {
	copyFn := a.copy
	return func() tea.Msg {
		return copiedMsg{text: text, err: copyFn(text)}
	}
}

func (a *App) openCategoryForm(cat *model.Category) {
	a.mode = modeCategoryForm
	a.editingCat = cat
	a.err = ""

	nameInput := textinput.New()
	nameInput.Placeholder = "Enter category name..."
	nameInput.CharLimit = 50
	if cat != nil {
		nameInput.SetValue(cat.Name)
	}

	a.formInputs = []textinput.Model{nameInput}
	a.formFocus = 0
}

func (a *App) openCommandForm(cmd *model.Command) {
	a.mode = modeCommandForm
	a.editingCmd = cmd
	a.err = ""

	textInput := textinput.New()
	textInput.Placeholder = "Enter command text (use <param> for values to fill in)..."

	descInput := textinput.New()
	descInput.Placeholder = "Enter command description (optional)..."

	catInput := textinput.New()
	catInput.Placeholder = "Category"

	categoryID := a.selected
	if cmd != nil {
		textInput.SetValue(cmd.Text)
		descInput.SetValue(cmd.Description)
		categoryID = cmd.CategoryID
	}
	cat, ok := a.catalog.Category(categoryID)
	if !ok && len(a.categories) > 0 {
		cat, ok = a.categories[0], true
	}
	a.formCatID, a.formCatName = "", ""
	if ok {
		catInput.SetValue(cat.Name)
		a.formCatID, a.formCatName = cat.ID, cat.Name
	}

	a.formInputs = []textinput.Model{textInput, descInput, catInput}
	a.formFocus = fieldText
}

func (a *App) openMove(cmd *model.Command) {
	a.mode = modeMove
	c := *cmd
	a.pendingCmd = &c
	a.moveInput = textinput.New()
	a.moveInput.Placeholder = "Type to filter categories..."
	a.moveMatches = a.catalog.MatchCategories("")
	a.moveIndex = 0
}

func (a *App) closeForm() {
	a.mode = modeNormal
	a.editingCat = nil
	a.editingCmd = nil
	a.formInputs = nil
	a.formCatID, a.formCatName = "", ""
	a.err = ""
}

func (a *App) focusFormInput() tea.Cmd {
	for i := range a.formInputs {
		a.formInputs[i].Blur()
	}
	return a.formInputs[a.formFocus].Focus()
}

func (a *App) submitCategoryForm() (tea.Model, tea.Cmd) {
	name := a.formInputs[0].Value()

	if a.editingCat == nil {
		cat, err := a.catalog.AddCategory(name)
		if err != nil {
			a.err = errorText(err)
			return a, nil
		}
		a.closeForm()
		a.categories = a.catalog.Categories()
		a.catCursor = len(a.categories) - 1
		a.selectCategory(cat.ID)
		return a, a.setStatus(fmt.Sprintf("Category %q added!", cat.Name))
	}

	if _, err := a.catalog.RenameCategory(a.editingCat.ID, name); err != nil {
		a.err = errorText(err)
		return a, nil
	}
	a.closeForm()
	a.refresh()
	return a, a.setStatus("Category renamed!")
}

func (a *App) submitCommandForm() (tea.Model, tea.Cmd) {
	text := a.formInputs[fieldText].Value()
	desc := a.formInputs[fieldDescription].Value()

	categoryID := ""
	ref := strings.TrimSpace(a.formInputs[fieldCategory].Value())
	switch {
	case ref == "":
	case a.formCatID != "" && ref == strings.TrimSpace(a.formCatName):
		categoryID = a.formCatID
	default:
		cat, err := a.catalog.ResolveCategory(ref)
		if err != nil {
			a.err = "Unknown category: " + ref
			return a, nil
		}
		categoryID = cat.ID
	}

	if a.editingCmd == nil {
		_, err := a.catalog.AddCommand(catalog.NewCommand{Text: text, Description: desc, CategoryID: categoryID})
		if err != nil {
			a.err = errorText(err)
			return a, nil
		}
		a.closeForm()
		a.refresh()
		return a, a.setStatus("Command added!")
	}

	patch := model.CommandPatch{Text: &text, Description: &desc, CategoryID: &categoryID}
	if _, err := a.catalog.EditCommand(a.editingCmd.ID, patch); err != nil {
		a.err = errorText(err)
		return a, nil
	}
	a.closeForm()
	a.refresh()
	return a, a.setStatus("Command updated!")
}

// refresh reloads both panes from the catalog and clamps the cursors.
func (a *App) refresh() {
	a.categories = a.catalog.Categories()

	a.catCursor = 0
	for i, cat := range a.categories {
		if cat.ID == a.selected {
			a.catCursor = i
		}
	}

	a.filtered = a.query().Apply(a.catalog.Commands())
	if a.cmdCursor >= len(a.filtered) {
		a.cmdCursor = max(0, len(a.filtered)-1)
	}
	a.updatePreview()
}

func (a *App) query() model.Query {
	return model.Query{Search: a.searchInput.Value(), CategoryID: a.selected}
}

func (a *App) updatePreview() {
	cmd := a.currentCommand()
	if cmd == nil {
		a.preview.SetContent(mutedStyle.Render("Nothing selected"))
		return
	}

	lines := []string{cmdPreviewStyle.Render("$ " + cmd.Text)}
	if cmd.Description != "" {
		lines = append(lines, cmd.Description)
	}
	meta := a.categoryName(cmd.CategoryID)
	if params := runner.ExtractParams(cmd.Text); len(params) > 0 {
		meta += " • fills " + strings.Join(params, ", ")
	}
	lines = append(lines, mutedStyle.Render(meta))
	a.preview.SetContent(strings.Join(lines, "\n"))
}

func (a *App) currentCategory() *model.Category {
	if a.catCursor < 0 || a.catCursor >= len(a.categories) {
		return nil
	}
	cat := a.categories[a.catCursor]
	return &cat
}

func (a *App) currentCommand() *model.Command {
	if a.cmdCursor < 0 || a.cmdCursor >= len(a.filtered) {
		return nil
	}
	cmd := a.filtered[a.cmdCursor]
	return &cmd
}

func (a *App) categoryName(id string) string {
	for _, cat := range a.categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return id
}

func (a *App) setStatus(s string) tea.Cmd {
	a.status = s
	a.err = ""
	if err := a.catalog.SaveErr(); err != nil {
		a.err = "Changes not saved: " + err.Error()
	}
	return a.clearLater()
}

func (a *App) setError(s string) tea.Cmd {
	a.err = s
	a.status = ""
	return a.clearLater()
}

func (a *App) clearLater() tea.Cmd {
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(a.toast, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// errorText turns catalog errors into form messages.
func errorText(err error) string {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		r := verr.Reason
		return strings.ToUpper(r[:1]) + r[1:]
	}
	var nf *catalog.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("That %s no longer exists", nf.Kind)
	}
	return err.Error()
}
