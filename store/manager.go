package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Result reports what a mutation accomplished. A nil error from the mutation
// means the change reached the authoritative cache and the volatile medium;
// Durable additionally says whether the best-effort durable write landed.
type Result struct {
	ID      int64
	Durable bool
}

// Manager owns the authoritative in-memory copy of every store and runs the
// write protocol: cache first, volatile medium second (this pair is the
// success contract), durable backend last and best-effort.
//
// The original design runs single-threaded; serving HTTP means real
// parallelism, so a mutex serializes operations instead.
type Manager struct {
	mu       sync.Mutex
	stores   map[string][]Record
	volatile *Volatile
	backend  DurableBackend
	seeds    map[string][]Record
	log      *zap.Logger
}

// NewManager wires the two mediums together. The manager starts empty; call
// Load to run the startup merge.
func NewManager(vol *Volatile, backend DurableBackend, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		stores:   make(map[string][]Record),
		volatile: vol,
		backend:  backend,
		seeds:    make(map[string][]Record),
		log:      log,
	}
	for _, name := range Names() {
		m.stores[name] = nil
	}
	return m
}

// Seed registers records to install into a store that is still empty after
// Load has merged both mediums.
func (m *Manager) Seed(name string, recs []Record) {
	m.seeds[name] = cloneAll(recs)
}

// All returns a defensive copy of the cached collection. Reads never touch
// either medium.
func (m *Manager) All(name string) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneAll(m.stores[name])
}

// Get returns a copy of the record with the given id.
func (m *Manager) Get(name string, id int64) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.stores[name] {
		if rec.ID() == id {
			return rec.Clone(), true
		}
	}
	return nil, false
}

// Add assigns the next id (max existing + 1), appends the record, and runs
// the write protocol. The assigned id is returned in the Result.
func (m *Manager) Add(name string, rec Record) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := rec.Clone()
	id := maxID(m.stores[name]) + 1
	c["id"] = id

	next := append(cloneAll(m.stores[name]), c)
	durable, err := m.commit(name, next)
	if err != nil {
		return Result{}, err
	}
	return Result{ID: id, Durable: durable}, nil
}

// Update replaces the record with the same id in place, keeping its
// position. A missing id fails with ErrNotFound and changes nothing.
func (m *Manager) Update(name string, rec Record) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := rec.ID()
	idx := -1
	for i, existing := range m.stores[name] {
		if existing.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Result{}, fmt.Errorf("update %s id=%d: %w", name, id, ErrNotFound)
	}

	next := cloneAll(m.stores[name])
	next[idx] = rec.Clone()
	durable, err := m.commit(name, next)
	if err != nil {
		return Result{}, err
	}
	return Result{ID: id, Durable: durable}, nil
}

// Delete removes the record with the given id. A missing id is a no-op, not
// an error; the write protocol still runs either way.
func (m *Manager) Delete(name string, id int64) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]Record, 0, len(m.stores[name]))
	for _, rec := range m.stores[name] {
		if rec.ID() == id {
			continue
		}
		next = append(next, rec.Clone())
	}
	durable, err := m.commit(name, next)
	if err != nil {
		return Result{}, err
	}
	return Result{ID: id, Durable: durable}, nil
}

// ReplaceAll swaps a store's entire collection, backfilling ids when the
// incoming records carry none. Used by the manual full-import entry point.
func (m *Manager) ReplaceAll(name string, recs []Record) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := cloneAll(recs)
	backfillIDs(next)
	durable, err := m.commit(name, next)
	if err != nil {
		return Result{}, err
	}
	return Result{Durable: durable}, nil
}

// Capability reports what the active durable backend can do, so callers can
// offer the manual-export fallback when writes cannot land anywhere durable.
func (m *Manager) Capability() Capability {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backend.Capability()
}

// Folder returns the designated durable folder, or "" when the bundled
// read-only backend is active.
func (m *Manager) Folder() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dir, ok := m.backend.(*DirBackend); ok {
		return dir.Dir()
	}
	return ""
}

// commit installs the new collection if the volatile write succeeds, then
// attempts the durable write. Durable failure is logged and reported through
// the returned flag only: the volatile medium is the success contract.
// Callers must hold m.mu.
func (m *Manager) commit(name string, next []Record) (durable bool, err error) {
	if err := m.volatile.Save(name, next); err != nil {
		return false, fmt.Errorf("volatile write %s: %w", name, err)
	}
	m.stores[name] = next

	if err := m.backend.WriteStore(name, next); err != nil {
		m.log.Warn("durable write failed",
			zap.String("store", name),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

func maxID(recs []Record) int64 {
	var max int64
	for _, rec := range recs {
		if id := rec.ID(); id > max {
			max = id
		}
	}
	return max
}
