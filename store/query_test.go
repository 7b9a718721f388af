package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMatchIsExactAndOrdered(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "barcode": "100"},
		{"id": int64(2), "barcode": "1001"},
		{"id": int64(3), "barcode": "1001"},
	}

	rec, ok := FirstMatch(recs, "barcode", "1001")
	require.True(t, ok)
	assert.Equal(t, int64(2), rec.ID(), "first match in iteration order wins")

	_, ok = FirstMatch(recs, "barcode", "10")
	assert.False(t, ok, "prefix is not a match")
}

func TestDateRangeIsInclusiveOnBothEnds(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "date": "2026-03-01T00:00:00Z"},
		{"id": int64(2), "date": "2026-03-05T12:30:00Z"},
		{"id": int64(3), "date": "2026-03-10T00:00:00Z"},
		{"id": int64(4), "date": "2026-02-28T23:59:59Z"},
		{"id": int64(5), "date": "2026-03-10T00:00:01Z"},
	}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	got := DateRange(recs, start, end)
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID(), "record exactly on start is included")
	assert.Equal(t, int64(2), got[1].ID())
	assert.Equal(t, int64(3), got[2].ID(), "record exactly on end is included")
}

func TestDateRangeSkipsUnparsableDates(t *testing.T) {
	recs := []Record{
		{"id": int64(1), "date": "2026-03-05"},
		{"id": int64(2), "date": "not a date"},
		{"id": int64(3)},
		{"id": int64(4), "date": 12345},
	}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	got := DateRange(recs, start, end)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID())
}
