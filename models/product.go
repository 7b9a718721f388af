package models

import "github.com/shopspring/decimal"

// Product is the typed view of a record in the products store. JSON tags
// follow the persisted field names, so a product round-trips byte-identical
// through the JSON documents on disk.
type Product struct {
	ID             int64           `json:"id"`
	Barcode        string          `json:"barcode"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	QuantityOnHand int             `json:"quantityOnHand"`
	Unit           string          `json:"unit"`
	TaxPercent     decimal.Decimal `json:"taxPercent"`
	Description    string          `json:"description,omitempty"`
	ImageURL       string          `json:"imageURL,omitempty"`
}

// DefaultProducts is the fixed catalog seeded on a completely empty first
// run. IDs are deterministic so a fresh install always looks the same.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:             1,
			Barcode:        "1000001",
			Name:           "Drinking Water 600ml",
			Category:       "Beverages",
			CostPrice:      decimal.NewFromInt(5),
			SellPrice:      decimal.NewFromInt(7),
			QuantityOnHand: 100,
			Unit:           "bottle",
			TaxPercent:     decimal.Zero,
		},
		{
			ID:             2,
			Barcode:        "1000002",
			Name:           "Instant Noodles",
			Category:       "Food",
			CostPrice:      decimal.NewFromInt(4),
			SellPrice:      decimal.NewFromInt(6),
			QuantityOnHand: 100,
			Unit:           "pack",
			TaxPercent:     decimal.Zero,
		},
	}
}
