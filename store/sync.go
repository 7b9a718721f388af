package store

import "go.uber.org/zap"

// Load runs the startup merge, in strict order:
//
//  1. load each store from the volatile medium (instant usability, no grant),
//  2. overwrite with the durable payload when it is non-empty (a previously
//     designated folder wins, so external edits are respected),
//  3. backfill ids for legacy collections that carry none,
//  4. write the merged result back to the volatile medium,
//  5. install seed records into stores that ended up empty.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range Names() {
		recs, err := m.volatile.Load(name)
		if err != nil {
			m.log.Warn("volatile load failed, starting empty",
				zap.String("store", name),
				zap.Error(err))
			recs = nil
		}
		m.stores[name] = recs
	}

	m.mergeDurableLocked()

	for name, seed := range m.seeds {
		if len(m.stores[name]) > 0 || len(seed) == 0 {
			continue
		}
		m.log.Info("seeding empty store", zap.String("store", name), zap.Int("records", len(seed)))
		if _, err := m.commit(name, cloneAll(seed)); err != nil {
			return err
		}
	}
	return nil
}

// SetFolder designates dir as the durable folder for this session. An empty
// dir means the user dismissed the picker: a silent no-op. Otherwise the
// folder's documents are merged in (non-empty documents win, as at startup)
// and every store is flushed to it, so an empty folder gets populated from
// the cache.
func (m *Manager) SetFolder(dir string) error {
	if dir == "" {
		return nil
	}
	backend, err := NewDirBackend(dir)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.backend = backend
	m.mergeDurableLocked()
	for _, name := range Names() {
		if err := backend.WriteStore(name, m.stores[name]); err != nil {
			m.log.Warn("durable flush failed",
				zap.String("store", name),
				zap.Error(err))
		}
	}
	return nil
}

// mergeDurableLocked applies steps 2–4 of the load order against the active
// backend. Callers must hold m.mu.
func (m *Manager) mergeDurableLocked() {
	for _, name := range Names() {
		durable, err := m.backend.ReadStore(name)
		if err != nil {
			m.log.Warn("durable read failed, keeping volatile copy",
				zap.String("store", name),
				zap.Error(err))
		} else if len(durable) > 0 {
			m.stores[name] = durable
		}

		backfillIDs(m.stores[name])

		if err := m.volatile.Save(name, m.stores[name]); err != nil {
			m.log.Warn("volatile write-back failed",
				zap.String("store", name),
				zap.Error(err))
		}
	}
}

// backfillIDs assigns sequential ids 1..N, in iteration order, to a
// collection in which no record carries a usable id. This is a one-time
// legacy migration for hand-edited documents: if even one record already has
// a positive id, nothing is touched, so re-running is a no-op.
func backfillIDs(recs []Record) {
	if len(recs) == 0 {
		return
	}
	for _, rec := range recs {
		if rec.ID() > 0 {
			return
		}
	}
	for i, rec := range recs {
		rec["id"] = int64(i + 1)
	}
}
