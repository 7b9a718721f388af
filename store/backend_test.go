package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirBackendRoundTrip(t *testing.T) {
	backend, err := NewDirBackend(t.TempDir())
	require.NoError(t, err)

	cases := [][]Record{
		{},
		{{"id": int64(1), "name": "one"}},
		{{"id": int64(1), "name": "one"}, {"id": int64(2), "name": "two"}},
	}
	for _, recs := range cases {
		require.NoError(t, backend.WriteStore(StoreProducts, recs))
		got, err := backend.ReadStore(StoreProducts)
		require.NoError(t, err)
		require.Len(t, got, len(recs))
		for i := range recs {
			assert.Equal(t, recs[i].ID(), got[i].ID())
			assert.Equal(t, recs[i]["name"], got[i]["name"])
		}
	}
}

func TestDirBackendWritesPrettyPrintedDocuments(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewDirBackend(dir)
	require.NoError(t, err)
	require.NoError(t, backend.WriteStore(StoreProducts, []Record{{"id": int64(1), "name": "p"}}))

	data, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  "), "documents are pretty-printed for hand editing")

	// No leftover temp file from the atomic replace.
	_, err = os.Stat(filepath.Join(dir, "products.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestDirBackendMissingFileReadsAsEmpty(t *testing.T) {
	backend, err := NewDirBackend(t.TempDir())
	require.NoError(t, err)

	recs, err := backend.ReadStore(StoreTransactions)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestDirBackendMalformedFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewDirBackend(dir)
	require.NoError(t, err)
	writeStoreFile(t, dir, StoreProducts, "not json at all")

	recs, err := backend.ReadStore(StoreProducts)
	require.NoError(t, err, "a hand-broken document must not brick startup")
	assert.Empty(t, recs)
}

func TestSeedBackendIsReadOnly(t *testing.T) {
	backend := NewSeedBackend()

	recs, err := backend.ReadStore(StoreProducts)
	require.NoError(t, err)
	assert.Empty(t, recs, "bundled documents ship empty")

	err = backend.WriteStore(StoreProducts, []Record{{"id": int64(1)}})
	assert.ErrorIs(t, err, ErrReadOnlyBackend)
	assert.Equal(t, CapabilityReadOnly, backend.Capability())
}

func TestVolatileMissingKeyReadsAsEmpty(t *testing.T) {
	vol := newTestVolatile(t)
	recs, err := vol.Load(StoreExpenses)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
