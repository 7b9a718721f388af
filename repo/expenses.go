package repo

import (
	"fmt"
	"time"

	"pos/models"
	"pos/store"
)

// Expenses is the typed facade over the expenses store.
type Expenses struct {
	m *store.Manager
}

func NewExpenses(m *store.Manager) *Expenses { return &Expenses{m: m} }

func (r *Expenses) All() ([]models.Expense, error) {
	return store.DecodeAll[models.Expense](r.m.All(store.StoreExpenses))
}

func (r *Expenses) ByID(id int64) (*models.Expense, error) {
	rec, ok := r.m.Get(store.StoreExpenses, id)
	if !ok {
		return nil, fmt.Errorf("expense id=%d: %w", id, store.ErrNotFound)
	}
	e, err := store.Decode[models.Expense](rec)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Range returns expenses dated within [start, end], inclusive.
func (r *Expenses) Range(start, end time.Time) ([]models.Expense, error) {
	recs := store.DateRange(r.m.All(store.StoreExpenses), start, end)
	return store.DecodeAll[models.Expense](recs)
}

func (r *Expenses) Add(e models.Expense) (store.Result, error) {
	rec, err := store.Encode(e)
	if err != nil {
		return store.Result{}, err
	}
	return r.m.Add(store.StoreExpenses, rec)
}

func (r *Expenses) Delete(id int64) (store.Result, error) {
	return r.m.Delete(store.StoreExpenses, id)
}
