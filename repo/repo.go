package repo

import "pos/store"

// Repos bundles the typed facades for injection into handlers and services.
type Repos struct {
	Products     *Products
	Transactions *Transactions
	Expenses     *Expenses
}

func New(m *store.Manager) *Repos {
	return &Repos{
		Products:     NewProducts(m),
		Transactions: NewTransactions(m),
		Expenses:     NewExpenses(m),
	}
}
