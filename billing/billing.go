// Package billing turns a cart into a finalized sale: it is the one place
// where two stores change together, so the whole sequence validates before
// it writes anything.
package billing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos/models"
	"pos/repo"
)

var (
	// ErrInsufficientStock aborts a finalize whose requested quantity
	// exceeds what is on hand for any line.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyCart rejects finalizing a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
)

var hundred = decimal.NewFromInt(100)

// Totals holds the monetary breakdown of a sale. Amounts stay exact
// decimals; rounding to two places is a display concern.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// Compute derives the totals for a set of lines and a discount percentage:
// per line, total = quantity × unitPrice and tax = total × taxPercent / 100;
// the discount applies to subtotal + tax.
func Compute(lines []models.CartLine, discountPercent decimal.Decimal) Totals {
	var subtotal, totalTax decimal.Decimal
	for _, l := range lines {
		lineTotal := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		totalTax = totalTax.Add(lineTotal.Mul(l.TaxPercent).Div(hundred))
	}
	discount := subtotal.Add(totalTax).Mul(discountPercent).Div(hundred)
	return Totals{
		Subtotal:   subtotal,
		TotalTax:   totalTax,
		Discount:   discount,
		GrandTotal: subtotal.Add(totalTax).Sub(discount),
	}
}

// Service finalizes bills against the product and transaction facades.
type Service struct {
	products     *repo.Products
	transactions *repo.Transactions
	log          *zap.Logger
}

func NewService(products *repo.Products, transactions *repo.Transactions, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{products: products, transactions: transactions, log: log}
}

// Finalize converts the cart into one immutable transaction record and
// decrements inventory, as an all-or-nothing batch: every line is
// re-validated against current stock before the first write, so a
// validation failure leaves both stores untouched. Lines for the same
// product are counted together. The cart is cleared only after the
// transaction record has been appended.
func (s *Service) Finalize(cart *Cart, discountPercent decimal.Decimal, paymentMethod string) (*models.Transaction, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Validate everything first: re-fetch each product and check the
	// aggregated requested quantity against what is on hand.
	needed := make(map[int64]int)
	order := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, seen := needed[l.ProductID]; !seen {
			order = append(order, l.ProductID)
		}
		needed[l.ProductID] += l.Quantity
	}

	updated := make([]models.Product, 0, len(order))
	for _, id := range order {
		p, err := s.products.ByID(id)
		if err != nil {
			return nil, err
		}
		if p.QuantityOnHand < needed[id] {
			return nil, fmt.Errorf("%s: have %d, need %d: %w",
				p.Name, p.QuantityOnHand, needed[id], ErrInsufficientStock)
		}
		p.QuantityOnHand -= needed[id]
		updated = append(updated, *p)
	}

	// Commit: all product decrements, then the sale record.
	for _, p := range updated {
		if _, err := s.products.Update(p); err != nil {
			return nil, err
		}
	}

	totals := Compute(lines, discountPercent)
	items := make([]models.TransactionItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, l.Item())
	}
	txn := models.Transaction{
		Date:          time.Now().Format(time.RFC3339),
		Items:         items,
		Subtotal:      totals.Subtotal,
		TotalTax:      totals.TotalTax,
		Discount:      totals.Discount,
		GrandTotal:    totals.GrandTotal,
		PaymentMethod: paymentMethod,
	}
	res, err := s.transactions.Add(txn)
	if err != nil {
		return nil, err
	}
	txn.ID = res.ID

	cart.Clear()
	s.log.Info("bill finalized",
		zap.Int64("transaction_id", txn.ID),
		zap.Int("lines", len(lines)),
		zap.String("grand_total", txn.GrandTotal.String()))
	return &txn, nil
}
