// Package catalog owns the categories and commands of a session. Every
// mutation replaces the collections with new slices and writes the whole
// document back to the store.
package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cmdfolder/db"
	"cmdfolder/model"

	"github.com/google/uuid"
)

// KeySelectedCategory holds the category the UI last showed.
const KeySelectedCategory = "selectedCategory"

type Catalog struct {
	mu    sync.Mutex
	store db.Store
	log   *slog.Logger
	now   func() time.Time
	newID func(prefix string) string

	categories []model.Category
	commands   []model.Command
	saveErr    error
	// loadErr is set when the store could not be read. Writes are then
	// refused so the stored document is never replaced by the defaults.
	loadErr error
}

type Option func(*Catalog)

func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithIDFunc replaces id generation. prefix is "category" or "command".
func WithIDFunc(fn func(prefix string) string) Option {
	return func(c *Catalog) { c.newID = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) { c.log = l }
}

func New(store db.Store, opts ...Option) *Catalog {
	c := &Catalog{
		store: store,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   time.Now,
		newID: func(prefix string) string { return prefix + "_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize loads the persisted document. On first run, or when the stored
// document is unusable, the default dataset is seeded and saved. If the store
// cannot be read at all the defaults are used in memory only and nothing is
// written for the rest of the session. It reports
// whether the defaults were seeded.
func (c *Catalog) Initialize() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.store.Load()
	if err == nil {
		c.categories = doc.Categories
		c.commands = doc.Commands
		c.log.Debug("catalog loaded", "categories", len(doc.Categories), "commands", len(doc.Commands))
		return false
	}

	seed := DefaultDocument(c.now())
	c.categories = seed.Categories
	c.commands = seed.Commands

	if errors.Is(err, db.ErrNotFound) || errors.Is(err, db.ErrMalformed) {
		c.log.Info("seeding default catalog", "reason", err)
		c.persist("initialize")
		return true
	}

	c.loadErr = err
	c.saveErr = err
	c.log.Warn("catalog load failed, using defaults in memory", "error", err)
	return true
}

// SaveErr returns the error of the most recent write, or nil if it succeeded.
// A non-nil value means in-memory changes may be lost on restart.
func (c *Catalog) SaveErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveErr
}

func (c *Catalog) Categories() []model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.categories)
}

func (c *Catalog) Commands() []model.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.commands)
}

func (c *Catalog) Category(id string) (model.Category, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.categoryIndex(id)
	if i < 0 {
		return model.Category{}, false
	}
	return c.categories[i], true
}

func (c *Catalog) Command(id string) (model.Command, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.commandIndex(id)
	if i < 0 {
		return model.Command{}, false
	}
	return c.commands[i], true
}

// CommandsIn returns the commands of one category in insertion order.
func (c *Catalog) CommandsIn(categoryID string) []model.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []model.Command
	for _, cmd := range c.commands {
		if cmd.CategoryID == categoryID {
			out = append(out, cmd)
		}
	}
	return out
}

func (c *Catalog) CountIn(categoryID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, cmd := range c.commands {
		if cmd.CategoryID == categoryID {
			n++
		}
	}
	return n
}

// FilteredCommands applies model.FilterCommands to the current collection.
func (c *Catalog) FilteredCommands(query, categoryID string) []model.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.FilterCommands(slices.Clone(c.commands), query, categoryID)
}

// LastSelected returns the remembered category id if it still exists.
func (c *Catalog) LastSelected() string {
	raw, err := c.store.Get(KeySelectedCategory)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			c.log.Warn("read selected category", "error", err)
		}
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	if _, ok := c.Category(id); !ok {
		return ""
	}
	return id
}

// RememberSelected stores the category the UI is showing. Failures are
// logged only.
func (c *Catalog) RememberSelected(id string) {
	raw, err := json.Marshal(id)
	if err != nil {
		return
	}
	if err := c.store.Set(KeySelectedCategory, raw); err != nil {
		c.log.Warn("store selected category", "error", err)
	}
}

// commit swaps in the new collections and writes them. Callers hold mu.
func (c *Catalog) commit(op string, categories []model.Category, commands []model.Command) {
	c.categories = categories
	c.commands = commands
	c.persist(op)
}

func (c *Catalog) persist(op string) {
	if c.loadErr != nil {
		c.saveErr = c.loadErr
		c.log.Warn("store unreadable at startup, not saving", "op", op, "error", c.loadErr)
		return
	}
	doc := model.Document{Categories: c.categories, Commands: c.commands}
	if err := c.store.Save(doc.Clone()); err != nil {
		c.saveErr = err
		c.log.Warn("save failed, keeping changes in memory", "op", op, "error", err)
		return
	}
	c.saveErr = nil
}

func (c *Catalog) categoryIndex(id string) int {
	return slices.IndexFunc(c.categories, func(cat model.Category) bool { return cat.ID == id })
}

func (c *Catalog) commandIndex(id string) int {
	return slices.IndexFunc(c.commands, func(cmd model.Command) bool { return cmd.ID == id })
}

// freshID returns an id not used by either collection.
func (c *Catalog) freshID(prefix string) string {
	for {
		id := c.newID(prefix)
		if c.categoryIndex(id) < 0 && c.commandIndex(id) < 0 {
			return id
		}
	}
}
