package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var storesBucket = []byte("stores")

// Volatile is the always-available key/value medium: one bbolt file at an
// app-owned path, one key per store holding the JSON-serialized collection.
// It needs no user grant, so it is the fast path that makes the app usable
// across restarts even when no durable folder was ever designated.
type Volatile struct {
	db *bolt.DB
}

// OpenVolatile opens (or creates) the bbolt file at path.
func OpenVolatile(path string) (*Volatile, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open volatile store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(storesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Volatile{db: db}, nil
}

// Load reads one store's collection. A missing key yields an empty store; a
// malformed payload is reported so the caller can log and treat it as empty.
func (v *Volatile) Load(name string) ([]Record, error) {
	var data []byte
	err := v.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(storesBucket).Get([]byte(name))
		if raw != nil {
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("volatile payload for %s: %w", name, err)
	}
	return recs, nil
}

// Save writes one store's full collection.
func (v *Volatile) Save(name string, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return v.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storesBucket).Put([]byte(name), data)
	})
}

// Close releases the underlying database file.
func (v *Volatile) Close() error { return v.db.Close() }
