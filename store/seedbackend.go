package store

import (
	"embed"
	"encoding/json"
	"io/fs"
)

//go:embed seeddata/*.json
var seedFS embed.FS

// SeedBackend serves the JSON documents bundled into the binary. It is the
// durable backend whenever no folder has been designated this session:
// always readable, never writable. The bundled documents ship empty but can
// be replaced at build time to preload a catalog.
type SeedBackend struct{}

// NewSeedBackend returns the bundled read-only backend.
func NewSeedBackend() *SeedBackend { return &SeedBackend{} }

func (b *SeedBackend) ReadStore(name string) ([]Record, error) {
	data, err := fs.ReadFile(seedFS, "seeddata/"+name+".json")
	if err != nil {
		return nil, nil
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, nil
	}
	return recs, nil
}

func (b *SeedBackend) WriteStore(string, []Record) error {
	return ErrReadOnlyBackend
}

func (b *SeedBackend) Capability() Capability { return CapabilityReadOnly }
