package repo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/models"
	"pos/store"
)

func newTestRepos(t *testing.T) *Repos {
	t.Helper()
	vol, err := store.OpenVolatile(filepath.Join(t.TempDir(), "vol.db"))
	require.NoError(t, err)
	t.Cleanup(func() { vol.Close() })
	m := store.NewManager(vol, store.NewSeedBackend(), nil)
	require.NoError(t, m.Load())
	return New(m)
}

func TestProductsByBarcode(t *testing.T) {
	repos := newTestRepos(t)
	_, err := repos.Products.Add(models.Product{Name: "A", Barcode: "111"})
	require.NoError(t, err)
	_, err = repos.Products.Add(models.Product{Name: "B", Barcode: "222"})
	require.NoError(t, err)

	p, err := repos.Products.ByBarcode("222")
	require.NoError(t, err)
	assert.Equal(t, "B", p.Name)

	_, err = repos.Products.ByBarcode("333")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductFieldsSurviveTheStore(t *testing.T) {
	repos := newTestRepos(t)
	in := models.Product{
		Barcode:        "7001",
		Name:           "Olive Oil 1L",
		Category:       "Staples",
		CostPrice:      decimal.RequireFromString("95.25"),
		SellPrice:      decimal.RequireFromString("129.00"),
		QuantityOnHand: 12,
		Unit:           "bottle",
		TaxPercent:     decimal.RequireFromString("7"),
		Description:    "cold pressed",
	}
	res, err := repos.Products.Add(in)
	require.NoError(t, err)

	got, err := repos.Products.ByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.QuantityOnHand, got.QuantityOnHand)
	assert.True(t, got.CostPrice.Equal(in.CostPrice))
	assert.True(t, got.SellPrice.Equal(in.SellPrice))
}

func TestExpenseRange(t *testing.T) {
	repos := newTestRepos(t)
	dates := []string{
		"2026-05-01T09:00:00Z",
		"2026-05-15T09:00:00Z",
		"2026-06-01T09:00:00Z",
	}
	for _, d := range dates {
		_, err := repos.Expenses.Add(models.Expense{
			Date:     d,
			Amount:   decimal.RequireFromString("100"),
			Category: "stock",
		})
		require.NoError(t, err)
	}

	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	got, err := repos.Expenses.Range(start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestTransactionsHaveNoMutators(t *testing.T) {
	// Compile-time shape check more than a behavior test: the transactions
	// facade exposes All/ByID/Range/Add and nothing else, keeping sales
	// append-only.
	repos := newTestRepos(t)
	_, err := repos.Transactions.Add(models.Transaction{
		Date:          "2026-05-01T10:00:00Z",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	sales, err := repos.Transactions.All()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(1), sales[0].ID)
}
