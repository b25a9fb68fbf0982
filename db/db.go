// Package db persists the command catalog document.
//
// Every backend stores the same thing: a namespace of top-level keys, two of
// which ("categories" and "commands") make up the model.Document. Load and
// Save work on the whole document; Get and Set work on a single key.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cmdfolder/model"
)

var (
	// ErrNotFound means nothing has been stored yet (first run) or the key
	// is absent.
	ErrNotFound = errors.New("not found")
	// ErrMalformed means a document exists but cannot be used as is.
	ErrMalformed = errors.New("malformed document")
)

// StorageError reports a read or write failure of the underlying medium.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store is the persistence boundary used by the catalog.
type Store interface {
	Load() (model.Document, error)
	Save(doc model.Document) error
	Get(key string) (json.RawMessage, error)
	Set(key string, value json.RawMessage) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendBolt   = "bolt"
)

// Open creates the store for backend inside dir.
func Open(backend, dir, namespace string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	switch backend {
	case BackendSQLite, "":
		return New(filepath.Join(dir, "commands.db"), namespace)
	case BackendJSON:
		return NewJSONFile(filepath.Join(dir, namespace+".json")), nil
	case BackendBolt:
		return NewBolt(filepath.Join(dir, "commands.bolt"), namespace)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func decodeDocument(values map[string]json.RawMessage) (model.Document, error) {
	cats, hasCats := values[model.KeyCategories]
	cmds, hasCmds := values[model.KeyCommands]

	if !hasCats && !hasCmds {
		return model.Document{}, ErrNotFound
	}
	if !hasCats || !hasCmds {
		return model.Document{}, fmt.Errorf("%w: missing %q or %q", ErrMalformed, model.KeyCategories, model.KeyCommands)
	}

	var doc model.Document
	if err := json.Unmarshal(cats, &doc.Categories); err != nil {
		return model.Document{}, fmt.Errorf("%w: categories: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(cmds, &doc.Commands); err != nil {
		return model.Document{}, fmt.Errorf("%w: commands: %v", ErrMalformed, err)
	}
	if doc.Categories == nil || doc.Commands == nil {
		return model.Document{}, fmt.Errorf("%w: null collection", ErrMalformed)
	}
	return doc, nil
}

func encodeDocument(doc model.Document) (map[string]json.RawMessage, error) {
	cats := doc.Categories
	if cats == nil {
		cats = []model.Category{}
	}
	cmds := doc.Commands
	if cmds == nil {
		cmds = []model.Command{}
	}

	catsJSON, err := json.Marshal(cats)
	if err != nil {
		return nil, err
	}
	cmdsJSON, err := json.Marshal(cmds)
	if err != nil {
		return nil, err
	}
	return map[string]json.RawMessage{
		model.KeyCategories: catsJSON,
		model.KeyCommands:   cmdsJSON,
	}, nil
}
