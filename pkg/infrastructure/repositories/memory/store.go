package memory

import (
	"context"

	"github.com/mleone/stockctl/pkg/domain/entities"
	"github.com/mleone/stockctl/pkg/domain/repositories"
)

// Store is an in-memory Store implementation. It backs tests and
// throwaway runs where nothing should touch the filesystem. Collections
// are copied on load and save so callers cannot alias internal state.
type Store struct {
	products     []entities.Product
	transactions []entities.Transaction
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Verify interface compliance
var _ repositories.Store = (*Store)(nil)

// SeedProducts replaces the stored product collection without going
// through the Store interface.
func (s *Store) SeedProducts(products []entities.Product) {
	s.products = append([]entities.Product(nil), products...)
}

// SeedTransactions replaces the stored transaction collection without
// going through the Store interface.
func (s *Store) SeedTransactions(transactions []entities.Transaction) {
	s.transactions = append([]entities.Transaction(nil), transactions...)
}

// LoadProducts returns a copy of the stored products.
func (s *Store) LoadProducts(ctx context.Context) ([]entities.Product, error) {
	return append([]entities.Product(nil), s.products...), nil
}

// LoadTransactions returns a copy of the stored transactions.
func (s *Store) LoadTransactions(ctx context.Context) ([]entities.Transaction, error) {
	return append([]entities.Transaction(nil), s.transactions...), nil
}

// SaveProducts overwrites the stored product collection.
func (s *Store) SaveProducts(ctx context.Context, products []entities.Product) error {
	s.products = append([]entities.Product(nil), products...)
	return nil
}

// SaveTransactions overwrites the stored transaction collection.
func (s *Store) SaveTransactions(ctx context.Context, transactions []entities.Transaction) error {
	s.transactions = append([]entities.Transaction(nil), transactions...)
	return nil
}
