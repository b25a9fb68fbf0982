package ui

import (
	"errors"
	"testing"
	"time"

	"cmdfolder/catalog"
	"cmdfolder/db"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *[]string) {
	t.Helper()
	c := catalog.New(db.NewMemory())
	c.Initialize()

	app := NewApp(c, time.Millisecond)
	var copied []string
	app.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app, &copied
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys and feeds back the message of any copy command.
func press(app *App, keys ...string) {
	for _, k := range keys {
		_, cmd := app.Update(key(k))
		if cmd == nil {
			continue
		}
		if msg, ok := runCmd(cmd).(copiedMsg); ok {
			app.Update(msg)
		}
	}
}

// runCmd runs cmd unless it is a timer.
func runCmd(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func TestNewApp_SelectsFirstCategory(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, "category_docker", app.selected)
	assert.Len(t, app.filtered, 5)
	assert.Contains(t, app.View(), "cmdfolder")
}

func TestApp_CategoryNavigationClearsSearch(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "/", "nginx", "enter")
	assert.Len(t, app.filtered, 5)
	assert.Equal(t, paneCommands, app.focus)

	press(app, "tab", "down")
	assert.Equal(t, "category_git", app.selected)
	assert.Empty(t, app.searchInput.Value())
	assert.Len(t, app.filtered, 6)
	assert.Equal(t, "category_git", app.catalog.LastSelected())
}

func TestApp_SearchSpansCategories(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "/", "list")
	assert.Equal(t, modeSearch, app.mode)
	for _, cmd := range app.filtered {
		assert.NotEmpty(t, cmd.ID)
	}
	assert.Greater(t, len(app.filtered), 5)

	press(app, "esc")
	assert.Equal(t, modeNormal, app.mode)
	assert.Len(t, app.filtered, 5)
}

func TestApp_CopyCommand(t *testing.T) {
	app, copied := newTestApp(t)

	press(app, "tab", "down", "enter")
	require.Len(t, *copied, 1)
	assert.Equal(t, "docker ps -a", (*copied)[0])
	assert.Equal(t, "Command copied to clipboard!", app.status)
}

func TestApp_CopyFillsPlaceholders(t *testing.T) {
	app, copied := newTestApp(t)

	press(app, "/", "kubectl logs", "enter", "enter")
	assert.Equal(t, modeParam, app.mode)
	assert.Equal(t, []string{"pod-name"}, app.paramNames)

	press(app, "web-1", "enter")
	require.Len(t, *copied, 1)
	assert.Equal(t, "kubectl logs web-1", (*copied)[0])
	assert.Equal(t, modeNormal, app.mode)
}

func TestApp_CopyFailure(t *testing.T) {
	app, _ := newTestApp(t)
	app.copy = func(string) error { return errors.New("no clipboard") }

	press(app, "tab", "enter")
	assert.Equal(t, "Failed to copy command!", app.err)
}

func TestApp_AddCategory(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "a")
	require.Equal(t, modeCategoryForm, app.mode)

	press(app, "x", "enter")
	assert.Equal(t, modeCategoryForm, app.mode)
	assert.Contains(t, app.err, "at least 2 characters")

	press(app, "Tools", "enter")
	assert.Equal(t, modeNormal, app.mode)
	assert.Len(t, app.categories, 7)
	assert.Equal(t, "xTools", app.categoryName(app.selected))
	assert.Empty(t, app.filtered)
}

func TestApp_RenameCategory(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "r")
	require.Equal(t, modeCategoryForm, app.mode)
	app.formInputs[0].SetValue("Containers")
	press(app, "enter")

	cat, ok := app.catalog.Category("category_docker")
	require.True(t, ok)
	assert.Equal(t, "Containers", cat.Name)
}

func TestApp_AddCommandToSelectedCategory(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "tab", "a")
	require.Equal(t, modeCommandForm, app.mode)
	assert.Equal(t, "Docker", app.formInputs[fieldCategory].Value())

	press(app, "docker logs -f <container>", "tab", "Follow logs", "enter")
	assert.Equal(t, modeNormal, app.mode)
	assert.Len(t, app.filtered, 6)
	assert.Equal(t, "Follow logs", app.filtered[5].Description)
}

func TestApp_AddCommandValidation(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "tab", "a", "x", "enter")
	assert.Equal(t, modeCommandForm, app.mode)
	assert.Contains(t, app.err, "at least 2 characters")

	app.formInputs[fieldText].SetValue("echo ok")
	app.formInputs[fieldCategory].SetValue("qqqq")
	press(app, "enter")
	assert.Contains(t, app.err, "Unknown category")

	press(app, "esc")
	assert.Equal(t, modeNormal, app.mode)
	assert.Len(t, app.catalog.Commands(), 34)
}

func TestApp_EditCommand(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "tab", "e")
	require.Equal(t, modeCommandForm, app.mode)
	app.formInputs[fieldText].SetValue("docker ps --all")
	app.formInputs[fieldCategory].SetValue("linux")
	press(app, "enter")

	cmd, ok := app.catalog.Command("command_docker_1")
	require.True(t, ok)
	assert.Equal(t, "docker ps --all", cmd.Text)
	assert.Equal(t, "category_linux", cmd.CategoryID)
	assert.Len(t, app.filtered, 4)
}

func TestApp_CommandFormKeepsCategoryWithDuplicateNames(t *testing.T) {
	app, _ := newTestApp(t)
	dup, err := app.catalog.AddCategory("Git")
	require.NoError(t, err)
	app.refresh()
	app.selectCategory(dup.ID)

	press(app, "tab", "a")
	require.Equal(t, modeCommandForm, app.mode)
	assert.Equal(t, "Git", app.formInputs[fieldCategory].Value())
	press(app, "git fetch", "enter")
	require.Equal(t, modeNormal, app.mode)
	assert.Equal(t, 1, app.catalog.CountIn(dup.ID))
	assert.Equal(t, 6, app.catalog.CountIn("category_git"))

	press(app, "e")
	require.Equal(t, modeCommandForm, app.mode)
	app.formInputs[fieldText].SetValue("git fetch --all")
	press(app, "enter")

	require.Len(t, app.filtered, 1)
	assert.Equal(t, "git fetch --all", app.filtered[0].Text)
	assert.Equal(t, dup.ID, app.filtered[0].CategoryID)
	assert.Equal(t, 6, app.catalog.CountIn("category_git"))
}

func TestApp_MoveCommand(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "tab", "m")
	require.Equal(t, modeMove, app.mode)
	assert.Len(t, app.moveMatches, 6)

	press(app, "mysql")
	require.NotEmpty(t, app.moveMatches)
	assert.Equal(t, "category_mysql", app.moveMatches[0].ID)

	press(app, "enter")
	assert.Equal(t, modeNormal, app.mode)
	assert.Equal(t, 7, app.catalog.CountIn("category_mysql"))
	assert.Len(t, app.filtered, 4)
}

func TestApp_DeleteCommand(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "tab", "d")
	require.Equal(t, modeDelete, app.mode)
	assert.Contains(t, app.View(), "Delete 'docker ps'?")

	press(app, "n")
	assert.Len(t, app.filtered, 5)

	press(app, "d", "y")
	assert.Len(t, app.filtered, 4)
	assert.Len(t, app.catalog.Commands(), 33)
}

func TestApp_DeleteSelectedCategorySelectsFirst(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "down")
	require.Equal(t, "category_git", app.selected)

	press(app, "d")
	assert.Contains(t, app.View(), "and its 6 commands")
	press(app, "y")

	assert.Equal(t, "category_docker", app.selected)
	assert.Len(t, app.categories, 5)
	assert.Len(t, app.catalog.Commands(), 28)
	assert.Equal(t, "Category deleted! (6 commands removed)", app.status)
}

func TestApp_StatusClears(t *testing.T) {
	app, _ := newTestApp(t)
	app.setStatus("hello")
	seq := app.statusSeq

	app.Update(clearStatusMsg{seq: seq - 1})
	assert.Equal(t, "hello", app.status)

	app.Update(clearStatusMsg{seq: seq})
	assert.Empty(t, app.status)
}

func TestApp_SaveFailureIsShown(t *testing.T) {
	store := db.NewMemory()
	c := catalog.New(store)
	c.Initialize()
	app := NewApp(c, time.Millisecond)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	store.FailSaves = true
	press(app, "tab", "d", "y")
	assert.Contains(t, app.err, "Changes not saved")
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := app.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindow(t *testing.T) {
	start, end := window(0, 10, 3)
	assert.Equal(t, []int{0, 3}, []int{start, end})

	start, end = window(5, 10, 3)
	assert.Equal(t, []int{3, 6}, []int{start, end})

	start, end = window(1, 2, 5)
	assert.Equal(t, []int{0, 2}, []int{start, end})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
