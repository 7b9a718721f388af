package models

import "github.com/shopspring/decimal"

// Expense is the typed view of a record in the expenses store.
type Expense struct {
	ID       int64           `json:"id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
}
