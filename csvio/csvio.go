// Package csvio is the CSV exchange collaborator. It formats product rows
// and nothing more: imports go through the products facade record by
// record, never around the store.
package csvio

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"pos/models"
	"pos/repo"
)

type productRow struct {
	Barcode        string          `csv:"barcode"`
	Name           string          `csv:"name"`
	Category       string          `csv:"category"`
	CostPrice      decimal.Decimal `csv:"costPrice"`
	SellPrice      decimal.Decimal `csv:"sellPrice"`
	QuantityOnHand int             `csv:"quantityOnHand"`
	Unit           string          `csv:"unit"`
	TaxPercent     decimal.Decimal `csv:"taxPercent"`
	Description    string          `csv:"description"`
	ImageURL       string          `csv:"imageURL"`
}

// ExportProducts writes every product as one CSV row. Ids are not exported:
// a re-import assigns fresh ones.
func ExportProducts(w io.Writer, products []models.Product) error {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{
			Barcode:        p.Barcode,
			Name:           p.Name,
			Category:       p.Category,
			CostPrice:      p.CostPrice,
			SellPrice:      p.SellPrice,
			QuantityOnHand: p.QuantityOnHand,
			Unit:           p.Unit,
			TaxPercent:     p.TaxPercent,
			Description:    p.Description,
			ImageURL:       p.ImageURL,
		})
	}
	return gocsv.Marshal(rows, w)
}

// ImportProducts adds one product per CSV row and returns how many were
// added. Rows without a name are skipped.
func ImportProducts(r io.Reader, products *repo.Products) (int, error) {
	var rows []productRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}
	added := 0
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		p := models.Product{
			Barcode:        row.Barcode,
			Name:           row.Name,
			Category:       row.Category,
			CostPrice:      row.CostPrice,
			SellPrice:      row.SellPrice,
			QuantityOnHand: row.QuantityOnHand,
			Unit:           row.Unit,
			TaxPercent:     row.TaxPercent,
			Description:    row.Description,
			ImageURL:       row.ImageURL,
		}
		if _, err := products.Add(p); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
