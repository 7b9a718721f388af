package store

// Capability says what the active durable backend can do.
type Capability int

const (
	// CapabilityReadOnly backends can seed the cache but never receive
	// writes; callers should offer the manual-export fallback instead.
	CapabilityReadOnly Capability = iota
	// CapabilityReadWrite backends accept whole-collection writes.
	CapabilityReadWrite
)

func (c Capability) String() string {
	if c == CapabilityReadWrite {
		return "read-write"
	}
	return "read-only"
}

// DurableBackend is a pluggable persistence strategy for whole store
// collections. Exactly one backend is active per session.
//
// ReadStore treats a missing or malformed document as an empty store, not an
// error: hand-edited files must never brick startup.
type DurableBackend interface {
	ReadStore(name string) ([]Record, error)
	WriteStore(name string, recs []Record) error
	Capability() Capability
}
