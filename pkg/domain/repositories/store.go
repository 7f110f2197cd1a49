package repositories

import (
	"context"

	"github.com/mleone/stockctl/pkg/domain/entities"
)

// Store is the persistence port for the product catalog and the
// transaction ledger. The two collections are loaded and saved
// independently; saves are whole-collection overwrites.
//
// Load operations return an empty slice when the backing artifact does
// not exist yet (first-run semantics) and fail only when it exists but
// cannot be read or decoded. Save operations create any missing
// containing directories.
type Store interface {
	// LoadProducts loads all product records
	LoadProducts(ctx context.Context) ([]entities.Product, error)

	// LoadTransactions loads all transaction records
	LoadTransactions(ctx context.Context) ([]entities.Transaction, error)

	// SaveProducts overwrites the stored product collection
	SaveProducts(ctx context.Context, products []entities.Product) error

	// SaveTransactions overwrites the stored transaction collection
	SaveTransactions(ctx context.Context, transactions []entities.Transaction) error
}
