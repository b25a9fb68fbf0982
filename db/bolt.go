package db

import (
	"encoding/json"
	"errors"
	"time"

	"cmdfolder/model"

	"go.etcd.io/bbolt"
)

// Bolt keeps each namespace in its own bucket; keys are the top-level
// document keys.
type Bolt struct {
	db     *bbolt.DB
	bucket []byte
}

func NewBolt(path, namespace string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	bucket := []byte(namespace)
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, &StorageError{Op: "open", Err: err}
	}

	return &Bolt{db: db, bucket: bucket}, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Load() (model.Document, error) {
	values := make(map[string]json.RawMessage)

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(b.bucket)
		for _, key := range []string{model.KeyCategories, model.KeyCommands} {
			// Values are only valid inside the transaction.
			if v := bucket.Get([]byte(key)); v != nil {
				values[key] = append(json.RawMessage{}, v...)
			}
		}
		return nil
	})
	if err != nil {
		return model.Document{}, &StorageError{Op: "load", Err: err}
	}

	return decodeDocument(values)
}

// Save writes both collections in one bolt transaction.
func (b *Bolt) Save(doc model.Document) error {
	values, err := encodeDocument(doc)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}

	err = b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(b.bucket)
		if err := bucket.Put([]byte(model.KeyCategories), values[model.KeyCategories]); err != nil {
			return err
		}
		return bucket.Put([]byte(model.KeyCommands), values[model.KeyCommands])
	})
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (b *Bolt) Get(key string) (json.RawMessage, error) {
	var value json.RawMessage

	err := b.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(b.bucket).Get([]byte(key)); v != nil {
			value = append(json.RawMessage{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, &StorageError{Op: "get", Err: err}
	}
	if value == nil {
		return nil, ErrNotFound
	}
	return value, nil
}

func (b *Bolt) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return &StorageError{Op: "set", Err: errors.New("value is not valid JSON")}
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(b.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return &StorageError{Op: "set", Err: err}
	}
	return nil
}
