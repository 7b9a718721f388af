package billing

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/models"
	"pos/repo"
	"pos/store"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestService(t *testing.T) (*Service, *repo.Repos) {
	t.Helper()
	vol, err := store.OpenVolatile(filepath.Join(t.TempDir(), "vol.db"))
	require.NoError(t, err)
	t.Cleanup(func() { vol.Close() })
	backend, err := store.NewDirBackend(t.TempDir())
	require.NoError(t, err)

	m := store.NewManager(vol, backend, nil)
	require.NoError(t, m.Load())
	repos := repo.New(m)
	return NewService(repos.Products, repos.Transactions, nil), repos
}

func addProduct(t *testing.T, repos *repo.Repos, name string, price string, taxPercent string, qty int) *models.Product {
	t.Helper()
	res, err := repos.Products.Add(models.Product{
		Barcode:        "bc-" + name,
		Name:           name,
		SellPrice:      dec(price),
		TaxPercent:     dec(taxPercent),
		QuantityOnHand: qty,
		Unit:           "pcs",
	})
	require.NoError(t, err)
	p, err := repos.Products.ByID(res.ID)
	require.NoError(t, err)
	return p
}

func lineFor(p *models.Product, qty int) models.CartLine {
	return models.CartLine{
		ProductID:  p.ID,
		Name:       p.Name,
		Barcode:    p.Barcode,
		Quantity:   qty,
		UnitPrice:  p.SellPrice,
		TaxPercent: p.TaxPercent,
		Unit:       p.Unit,
	}
}

func TestFinalizeComputesTotalsAndDecrementsStock(t *testing.T) {
	svc, repos := newTestService(t)
	a := addProduct(t, repos, "A", "50.00", "5", 10)

	cart := NewCart()
	require.NoError(t, cart.AddLine(lineFor(a, 2)))

	txn, err := svc.Finalize(cart, dec("10"), "cash")
	require.NoError(t, err)

	assert.True(t, txn.Subtotal.Equal(dec("100.00")), "subtotal %s", txn.Subtotal)
	assert.True(t, txn.TotalTax.Equal(dec("5.00")), "totalTax %s", txn.TotalTax)
	assert.True(t, txn.Discount.Equal(dec("10.50")), "discount %s", txn.Discount)
	assert.True(t, txn.GrandTotal.Equal(dec("94.50")), "grandTotal %s", txn.GrandTotal)
	assert.Equal(t, "cash", txn.PaymentMethod)
	require.Len(t, txn.Items, 1)
	assert.Equal(t, 2, txn.Items[0].Quantity)

	got, err := repos.Products.ByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.QuantityOnHand)

	sales, err := repos.Transactions.All()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, txn.ID, sales[0].ID)

	assert.Empty(t, cart.Lines(), "cart is cleared only after the sale is appended")
}

func TestFinalizeInsufficientStockHasNoEffects(t *testing.T) {
	svc, repos := newTestService(t)
	a := addProduct(t, repos, "A", "50.00", "5", 10)
	b := addProduct(t, repos, "B", "20.00", "0", 1)

	cart := NewCart()
	require.NoError(t, cart.AddLine(lineFor(a, 2)))
	require.NoError(t, cart.AddLine(lineFor(b, 5)))

	_, err := svc.Finalize(cart, decimal.Zero, "cash")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Zero product updates, zero transactions, cart intact.
	gotA, err := repos.Products.ByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, gotA.QuantityOnHand)
	gotB, err := repos.Products.ByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotB.QuantityOnHand)

	sales, err := repos.Transactions.All()
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.Len(t, cart.Lines(), 2)
}

func TestFinalizeVanishedProductAborts(t *testing.T) {
	svc, repos := newTestService(t)
	a := addProduct(t, repos, "A", "50.00", "5", 10)

	cart := NewCart()
	require.NoError(t, cart.AddLine(lineFor(a, 1)))
	_, err := repos.Products.Delete(a.ID)
	require.NoError(t, err)

	_, err = svc.Finalize(cart, decimal.Zero, "cash")
	assert.ErrorIs(t, err, store.ErrNotFound)

	sales, err := repos.Transactions.All()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestFinalizeAggregatesLinesPerProduct(t *testing.T) {
	svc, repos := newTestService(t)
	a := addProduct(t, repos, "A", "10.00", "0", 10)

	// Adds for the same product are counted together: 6 + 5 > 10.
	cart := NewCart()
	require.NoError(t, cart.AddLine(lineFor(a, 6)))
	require.NoError(t, cart.AddLine(lineFor(a, 5)))

	_, err := svc.Finalize(cart, decimal.Zero, "cash")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	got, err := repos.Products.ByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.QuantityOnHand)
}

func TestFinalizeEmptyCart(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Finalize(NewCart(), decimal.Zero, "cash")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestComputeZeroDiscount(t *testing.T) {
	lines := []models.CartLine{
		{Quantity: 3, UnitPrice: dec("19.99"), TaxPercent: dec("7")},
		{Quantity: 1, UnitPrice: dec("5.00"), TaxPercent: dec("0")},
	}
	totals := Compute(lines, decimal.Zero)

	assert.True(t, totals.Subtotal.Equal(dec("64.97")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TotalTax.Equal(dec("4.1979")), "tax stays unrounded until display: %s", totals.TotalTax)
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TotalTax)))
}

func TestCartOperations(t *testing.T) {
	cart := NewCart()
	p := models.CartLine{ProductID: 1, Name: "A", Quantity: 2, UnitPrice: dec("5")}

	require.NoError(t, cart.AddLine(p))
	require.NoError(t, cart.AddLine(p))
	lines := cart.Lines()
	require.Len(t, lines, 1, "same product merges into one line")
	assert.Equal(t, 4, lines[0].Quantity)

	require.NoError(t, cart.SetQuantity(1, 7))
	assert.Equal(t, 7, cart.Lines()[0].Quantity)

	err := cart.SetQuantity(99, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Error(t, cart.SetQuantity(1, 0))

	cart.Remove(99) // absent: no-op
	cart.Remove(1)
	assert.Empty(t, cart.Lines())
}
