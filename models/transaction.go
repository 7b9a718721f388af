package models

import "github.com/shopspring/decimal"

// Transaction is one finalized sale. Transactions are immutable once
// appended; no update operation exists for them anywhere in the system.
type Transaction struct {
	ID            int64             `json:"id"`
	Date          string            `json:"date"`
	Items         []TransactionItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	TotalTax      decimal.Decimal   `json:"totalTax"`
	Discount      decimal.Decimal   `json:"discount"`
	GrandTotal    decimal.Decimal   `json:"grandTotal"`
	PaymentMethod string            `json:"paymentMethod"`
}

// TransactionItem is a snapshot of a cart line at finalize time. It copies
// the product fields instead of referencing the products store, so later
// price or name edits never rewrite sales history.
type TransactionItem struct {
	ProductID  int64           `json:"productId"`
	Name       string          `json:"name"`
	Barcode    string          `json:"barcode"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
	Unit       string          `json:"unit"`
}
