package store

import (
	"time"

	"github.com/araddon/dateparse"
)

// FirstMatch returns the first record, in iteration order, whose string
// field equals want exactly.
func FirstMatch(recs []Record, field, want string) (Record, bool) {
	for _, rec := range recs {
		if v, ok := rec[field].(string); ok && v == want {
			return rec, true
		}
	}
	return nil, false
}

// DateRange filters records whose "date" field falls within [start, end],
// inclusive on both ends. Dates are parsed leniently; a record with a
// missing or unparsable date simply never matches.
func DateRange(recs []Record, start, end time.Time) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		raw, ok := rec["date"].(string)
		if !ok {
			continue
		}
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			continue
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
