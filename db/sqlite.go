package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"cmdfolder/model"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the SQLite backend: one row per top-level key of a namespace.
type DB struct {
	conn      *sql.DB
	namespace string
}

func New(path, namespace string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	db := &DB{conn: conn, namespace: namespace}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, &StorageError{Op: "migrate", Err: err}
	}

	return db, nil
}

func (d *DB) migrate() error {
	_, err := d.conn.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		);
	`)
	return err
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) Load() (model.Document, error) {
	rows, err := d.conn.Query(
		`SELECT key, value FROM kv WHERE namespace = ? AND key IN (?, ?)`,
		d.namespace, model.KeyCategories, model.KeyCommands,
	)
	if err != nil {
		return model.Document{}, &StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	values := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.Document{}, &StorageError{Op: "load", Err: err}
		}
		values[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return model.Document{}, &StorageError{Op: "load", Err: err}
	}

	return decodeDocument(values)
}

// Save writes both collections in a single transaction.
func (d *DB) Save(doc model.Document) error {
	values, err := encodeDocument(doc)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	defer tx.Rollback()

	for _, key := range []string{model.KeyCategories, model.KeyCommands} {
		if err := upsert(tx, d.namespace, key, values[key]); err != nil {
			return &StorageError{Op: "save", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (d *DB) Get(key string) (json.RawMessage, error) {
	var value string
	err := d.conn.QueryRow(
		`SELECT value FROM kv WHERE namespace = ? AND key = ?`,
		d.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get", Err: err}
	}
	return json.RawMessage(value), nil
}

func (d *DB) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return &StorageError{Op: "set", Err: errors.New("value is not valid JSON")}
	}
	tx, err := d.conn.Begin()
	if err != nil {
		return &StorageError{Op: "set", Err: err}
	}
	defer tx.Rollback()

	if err := upsert(tx, d.namespace, key, value); err != nil {
		return &StorageError{Op: "set", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "set", Err: err}
	}
	return nil
}

func upsert(tx *sql.Tx, namespace, key string, value json.RawMessage) error {
	_, err := tx.Exec(
		`INSERT INTO kv (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespace, key, string(value), time.Now(),
	)
	return err
}
