package db

import (
	"encoding/json"
	"errors"
	"sync"

	"cmdfolder/model"
)

// Memory is a map-backed Store for tests and throwaway sessions. Setting
// FailSaves makes every write return a StorageError.
type Memory struct {
	mu        sync.Mutex
	values    map[string]json.RawMessage
	saves     int
	FailSaves bool
	FailLoads bool
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]json.RawMessage)}
}

var errInjected = errors.New("injected failure")

func (m *Memory) Load() (model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoads {
		return model.Document{}, &StorageError{Op: "load", Err: errInjected}
	}
	return decodeDocument(m.values)
}

func (m *Memory) Save(doc model.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSaves {
		return &StorageError{Op: "save", Err: errInjected}
	}
	values, err := encodeDocument(doc)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	for k, v := range values {
		m.values[k] = v
	}
	m.saves++
	return nil
}

func (m *Memory) Get(key string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append(json.RawMessage{}, v...), nil
}

func (m *Memory) Set(key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSaves {
		return &StorageError{Op: "set", Err: errInjected}
	}
	m.values[key] = append(json.RawMessage{}, value...)
	return nil
}

// Saves reports how many whole-document saves succeeded.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Memory) Close() error { return nil }
