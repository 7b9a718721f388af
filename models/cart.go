package models

import "github.com/shopspring/decimal"

// CartLine is a transient pending-sale item. It lives only in memory: it is
// created on add-to-cart, mutated on quantity change, and destroyed on
// remove, clear, or finalize. Never persisted as-is.
type CartLine struct {
	ProductID  int64           `json:"productId"`
	Name       string          `json:"name"`
	Barcode    string          `json:"barcode"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
	Unit       string          `json:"unit"`
}

// Item converts the line into its immutable transaction snapshot.
func (l CartLine) Item() TransactionItem {
	return TransactionItem{
		ProductID:  l.ProductID,
		Name:       l.Name,
		Barcode:    l.Barcode,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice,
		TaxPercent: l.TaxPercent,
		Unit:       l.Unit,
	}
}
