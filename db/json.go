package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cmdfolder/model"
)

// JSONFile keeps the namespace as one JSON object on disk.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the file backing the store.
func (f *JSONFile) Path() string { return f.path }

func (f *JSONFile) Close() error { return nil }

func (f *JSONFile) Load() (model.Document, error) {
	values, err := f.read()
	if err != nil {
		return model.Document{}, err
	}
	return decodeDocument(values)
}

func (f *JSONFile) Save(doc model.Document) error {
	values, err := f.readForUpdate()
	if err != nil {
		return err
	}

	encoded, err := encodeDocument(doc)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	for k, v := range encoded {
		values[k] = v
	}
	return f.write("save", values)
}

func (f *JSONFile) Get(key string) (json.RawMessage, error) {
	values, err := f.read()
	if err != nil {
		return nil, err
	}
	v, ok := values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (f *JSONFile) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return &StorageError{Op: "set", Err: errors.New("value is not valid JSON")}
	}
	values, err := f.readForUpdate()
	if err != nil {
		return err
	}
	values[key] = value
	return f.write("set", values)
}

// read returns ErrNotFound when the file does not exist and ErrMalformed when
// it is not a JSON object.
func (f *JSONFile) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformed)
	}
	return values, nil
}

// readForUpdate is read with a missing or unreadable-as-JSON file treated as
// empty, so a write replaces it.
func (f *JSONFile) readForUpdate() (map[string]json.RawMessage, error) {
	values, err := f.read()
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrMalformed) {
		return make(map[string]json.RawMessage), nil
	}
	return values, err
}

func (f *JSONFile) write(op string, values map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	if err := atomicWriteFile(f.path, data, 0644); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

// atomicWriteFile writes to a temp file in the target directory, syncs it and
// renames it over path, so readers see either the old or the new file.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	ok := false
	defer func() {
		if !ok {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	ok = true
	return nil
}
