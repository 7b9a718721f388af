package repo

import (
	"fmt"
	"time"

	"pos/models"
	"pos/store"
)

// Transactions is the typed facade over the transactions store. Sales are
// append-only: the facade deliberately offers no update or delete.
type Transactions struct {
	m *store.Manager
}

func NewTransactions(m *store.Manager) *Transactions { return &Transactions{m: m} }

func (r *Transactions) All() ([]models.Transaction, error) {
	return store.DecodeAll[models.Transaction](r.m.All(store.StoreTransactions))
}

func (r *Transactions) ByID(id int64) (*models.Transaction, error) {
	rec, ok := r.m.Get(store.StoreTransactions, id)
	if !ok {
		return nil, fmt.Errorf("transaction id=%d: %w", id, store.ErrNotFound)
	}
	t, err := store.Decode[models.Transaction](rec)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Range returns transactions dated within [start, end], inclusive.
func (r *Transactions) Range(start, end time.Time) ([]models.Transaction, error) {
	recs := store.DateRange(r.m.All(store.StoreTransactions), start, end)
	return store.DecodeAll[models.Transaction](recs)
}

func (r *Transactions) Add(t models.Transaction) (store.Result, error) {
	rec, err := store.Encode(t)
	if err != nil {
		return store.Result{}, err
	}
	return r.m.Add(store.StoreTransactions, rec)
}
