package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mleone/stockctl/pkg/domain/entities"
	"github.com/mleone/stockctl/pkg/domain/repositories"
)

// Store persists the product catalog and transaction ledger as two
// pretty-printed JSON files in a data directory. Each save rewrites the
// whole collection atomically: the new contents are written to a
// temporary file in the same directory and renamed over the target.
type Store struct {
	productsPath     string
	transactionsPath string
}

// NewStore creates a Store rooted at dir. Products are stored in
// dir/products.json and transactions in dir/transactions.json.
func NewStore(dir string) *Store {
	return &Store{
		productsPath:     filepath.Join(dir, "products.json"),
		transactionsPath: filepath.Join(dir, "transactions.json"),
	}
}

// NewStoreWithPaths creates a Store with explicit file paths.
func NewStoreWithPaths(productsPath, transactionsPath string) *Store {
	return &Store{
		productsPath:     productsPath,
		transactionsPath: transactionsPath,
	}
}

// Verify interface compliance
var _ repositories.Store = (*Store)(nil)

// LoadProducts loads all products. A missing or empty file is an empty catalog.
func (s *Store) LoadProducts(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	if err := readJSONFile(s.productsPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// LoadTransactions loads all transactions. A missing or empty file is an empty ledger.
func (s *Store) LoadTransactions(ctx context.Context) ([]entities.Transaction, error) {
	var transactions []entities.Transaction
	if err := readJSONFile(s.transactionsPath, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// SaveProducts overwrites the stored product collection.
func (s *Store) SaveProducts(ctx context.Context, products []entities.Product) error {
	if products == nil {
		products = []entities.Product{}
	}
	return writeJSONFile(s.productsPath, products)
}

// SaveTransactions overwrites the stored transaction collection.
func (s *Store) SaveTransactions(ctx context.Context, transactions []entities.Transaction) error {
	if transactions == nil {
		transactions = []entities.Transaction{}
	}
	return writeJSONFile(s.transactionsPath, transactions)
}

// readJSONFile decodes the JSON array at path into out. Missing and
// whitespace-only files leave out untouched.
func readJSONFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &repositories.ReadError{Path: path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &repositories.ParseError{Path: path, Err: err}
	}
	return nil
}

// writeJSONFile writes in as a pretty-printed JSON array at path,
// creating missing parent directories and replacing the target via rename
// so readers never observe a partially written file.
func writeJSONFile(path string, in interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &repositories.WriteError{Path: path, Err: err}
	}

	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return &repositories.WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &repositories.WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &repositories.WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &repositories.WriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &repositories.WriteError{Path: path, Err: err}
	}
	return nil
}
