package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DirBackend persists each store as one pretty-printed JSON document
// (<name>.json) inside a user-designated directory. Writes go through a
// temp file and a rename, so a document on disk is always either the old
// array or the new one, never a torn write.
type DirBackend struct {
	dir string
}

// NewDirBackend designates dir as the durable folder, creating it if needed.
func NewDirBackend(dir string) (*DirBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("designate folder %s: %w", dir, err)
	}
	return &DirBackend{dir: dir}, nil
}

// Dir returns the designated folder path.
func (b *DirBackend) Dir() string { return b.dir }

func (b *DirBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *DirBackend) ReadStore(name string) ([]Record, error) {
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", b.path(name), err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		// Malformed document reads as an empty store.
		return nil, nil
	}
	return recs, nil
}

func (b *DirBackend) WriteStore(name string, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	tmp := b.path(name) + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.path(name)); err != nil {
		return fmt.Errorf("replace %s: %w", b.path(name), err)
	}
	return nil
}

func (b *DirBackend) Capability() Capability { return CapabilityReadWrite }
