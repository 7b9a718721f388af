// Package repo exposes store-typed facades over the schema-less record
// manager. Every call goes through the manager; nothing here bypasses the
// cache-then-durable write protocol.
package repo

import (
	"fmt"

	"pos/models"
	"pos/store"
)

// Products is the typed facade over the products store.
type Products struct {
	m *store.Manager
}

func NewProducts(m *store.Manager) *Products { return &Products{m: m} }

func (r *Products) All() ([]models.Product, error) {
	return store.DecodeAll[models.Product](r.m.All(store.StoreProducts))
}

func (r *Products) ByID(id int64) (*models.Product, error) {
	rec, ok := r.m.Get(store.StoreProducts, id)
	if !ok {
		return nil, fmt.Errorf("product id=%d: %w", id, store.ErrNotFound)
	}
	p, err := store.Decode[models.Product](rec)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ByBarcode returns the first product with an exactly matching barcode, in
// store iteration order. Backs the scan-then-find-or-offer-create flow.
func (r *Products) ByBarcode(code string) (*models.Product, error) {
	rec, ok := store.FirstMatch(r.m.All(store.StoreProducts), "barcode", code)
	if !ok {
		return nil, fmt.Errorf("barcode %q: %w", code, store.ErrNotFound)
	}
	p, err := store.Decode[models.Product](rec)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Products) Add(p models.Product) (store.Result, error) {
	rec, err := store.Encode(p)
	if err != nil {
		return store.Result{}, err
	}
	return r.m.Add(store.StoreProducts, rec)
}

func (r *Products) Update(p models.Product) (store.Result, error) {
	rec, err := store.Encode(p)
	if err != nil {
		return store.Result{}, err
	}
	return r.m.Update(store.StoreProducts, rec)
}

func (r *Products) Delete(id int64) (store.Result, error) {
	return r.m.Delete(store.StoreProducts, id)
}
