package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mleone/stockctl/pkg/domain/entities"
	"github.com/mleone/stockctl/pkg/domain/repositories"
)

// Options holds the injectable collaborators of the inventory service.
// Zero-value fields fall back to the system UTC clock and random UUIDs.
type Options struct {
	Clock Clock
	IDs   IDGenerator
}

// InventoryService is the inventory state machine: a SKU-keyed product
// catalog plus an insertion-ordered transaction ledger. Every mutating
// operation validates its input first, applies the change in memory,
// then persists the affected collections through the Store. Validation
// failures leave both memory and storage untouched; a save failure is
// surfaced after the in-memory change has been applied, with no
// rollback.
//
// The service is single-threaded by contract; callers that need
// concurrency must serialize access externally.
type InventoryService struct {
	products     map[string]entities.Product
	transactions []entities.Transaction
	store        repositories.Store
	clock        Clock
	ids          IDGenerator
}

// ProductUpdate is a partial patch for UpdateProduct. Nil fields leave
// the current value untouched. Quantity is deliberately absent: stock
// changes only through AddStock and RemoveStock.
type ProductUpdate struct {
	Name         *string
	Description  *string
	ReorderPoint *int
}

// NewInventoryService creates a service with default collaborators,
// loading existing state from the store. An empty backing store yields
// an empty catalog and ledger; a load failure fails construction.
func NewInventoryService(ctx context.Context, store repositories.Store) (*InventoryService, error) {
	return NewInventoryServiceWithOptions(ctx, store, Options{})
}

// NewInventoryServiceWithOptions creates a service with explicit
// collaborators, loading existing state from the store.
func NewInventoryServiceWithOptions(ctx context.Context, store repositories.Store, opts Options) (*InventoryService, error) {
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = uuidGenerator{}
	}

	loaded, err := store.LoadProducts(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load products", Err: err}
	}
	transactions, err := store.LoadTransactions(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load transactions", Err: err}
	}

	products := make(map[string]entities.Product, len(loaded))
	for _, p := range loaded {
		products[p.SKU] = p
	}

	return &InventoryService{
		products:     products,
		transactions: transactions,
		store:        store,
		clock:        opts.Clock,
		ids:          opts.IDs,
	}, nil
}

// AddProduct creates a new catalog entry and persists the catalog.
func (s *InventoryService) AddProduct(ctx context.Context, sku, name, description string, initialQuantity, reorderPoint int) (entities.Product, error) {
	if strings.TrimSpace(sku) == "" {
		return entities.Product{}, &InvalidInputError{Reason: "SKU cannot be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return entities.Product{}, &InvalidInputError{Reason: "name cannot be empty"}
	}
	if initialQuantity < 0 {
		return entities.Product{}, &InvalidInputError{Reason: "initial quantity cannot be negative"}
	}
	if reorderPoint < 0 {
		return entities.Product{}, &InvalidInputError{Reason: "reorder point cannot be negative"}
	}
	if _, exists := s.products[sku]; exists {
		return entities.Product{}, &DuplicateSKUError{SKU: sku}
	}

	product := entities.Product{
		ID:           s.ids.NewID(),
		SKU:          sku,
		Name:         name,
		Description:  description,
		Quantity:     initialQuantity,
		ReorderPoint: reorderPoint,
	}
	s.products[sku] = product

	if err := s.saveProducts(ctx); err != nil {
		return entities.Product{}, err
	}
	return product, nil
}

// UpdateProduct applies the supplied fields to an existing product and
// persists the catalog. An update with no fields set is a valid no-op
// on the catalog contents.
func (s *InventoryService) UpdateProduct(ctx context.Context, sku string, update ProductUpdate) (entities.Product, error) {
	product, exists := s.products[sku]
	if !exists {
		return entities.Product{}, &NotFoundError{SKU: sku}
	}

	// Validate the whole patch before applying any of it.
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return entities.Product{}, &InvalidInputError{Reason: "name cannot be empty"}
	}
	if update.ReorderPoint != nil && *update.ReorderPoint < 0 {
		return entities.Product{}, &InvalidInputError{Reason: "reorder point cannot be negative"}
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.ReorderPoint != nil {
		product.ReorderPoint = *update.ReorderPoint
	}
	s.products[sku] = product

	if err := s.saveProducts(ctx); err != nil {
		return entities.Product{}, err
	}
	return product, nil
}

// AddStock increases a product's quantity and appends an Addition to
// the ledger, then persists both collections.
func (s *InventoryService) AddStock(ctx context.Context, sku string, quantity int, notes string) error {
	if quantity <= 0 {
		return &InvalidInputError{Reason: "quantity must be positive"}
	}
	product, exists := s.products[sku]
	if !exists {
		return &NotFoundError{SKU: sku}
	}

	product.Quantity += quantity
	s.products[sku] = product
	s.appendTransaction(sku, entities.Addition, quantity, notes)

	if err := s.saveProducts(ctx); err != nil {
		return err
	}
	return s.saveTransactions(ctx)
}

// RemoveStock decreases a product's quantity and appends a Removal to
// the ledger, then persists both collections. Removing more than is on
// hand is rejected before any state changes.
func (s *InventoryService) RemoveStock(ctx context.Context, sku string, quantity int, notes string) error {
	if quantity <= 0 {
		return &InvalidInputError{Reason: "quantity must be positive"}
	}
	product, exists := s.products[sku]
	if !exists {
		return &NotFoundError{SKU: sku}
	}
	if quantity > product.Quantity {
		return &InsufficientStockError{
			SKU:       sku,
			Requested: quantity,
			Available: product.Quantity,
		}
	}

	product.Quantity -= quantity
	s.products[sku] = product
	s.appendTransaction(sku, entities.Removal, quantity, notes)

	if err := s.saveProducts(ctx); err != nil {
		return err
	}
	return s.saveTransactions(ctx)
}

// GetProduct returns the product with the given SKU.
func (s *InventoryService) GetProduct(sku string) (entities.Product, error) {
	product, exists := s.products[sku]
	if !exists {
		return entities.Product{}, &NotFoundError{SKU: sku}
	}
	return product, nil
}

// ListProducts returns a snapshot of the catalog in unspecified order.
func (s *InventoryService) ListProducts() []entities.Product {
	products := make([]entities.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	return products
}

// ListLowStock returns the products whose quantity is at or below their
// reorder point, in unspecified order.
func (s *InventoryService) ListLowStock() []entities.Product {
	var products []entities.Product
	for _, p := range s.products {
		if p.IsLowStock() {
			products = append(products, p)
		}
	}
	return products
}

// GetTransactions returns all transactions for the given SKU sorted by
// timestamp ascending; equal timestamps keep insertion order. Product
// existence is not checked; an unknown SKU yields an empty history.
func (s *InventoryService) GetTransactions(sku string) []entities.Transaction {
	transactions := make([]entities.Transaction, 0)
	for _, t := range s.transactions {
		if t.ProductSKU == sku {
			transactions = append(transactions, t)
		}
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})
	return transactions
}

// GetTransactionsInRange returns the product's transactions with
// start <= timestamp <= end, sorted like GetTransactions.
func (s *InventoryService) GetTransactionsInRange(sku string, start, end time.Time) []entities.Transaction {
	transactions := make([]entities.Transaction, 0)
	for _, t := range s.transactions {
		if t.ProductSKU != sku {
			continue
		}
		if t.Timestamp.Before(start) || t.Timestamp.After(end) {
			continue
		}
		transactions = append(transactions, t)
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})
	return transactions
}

// DeleteProduct removes a product and every transaction carrying its
// SKU, then persists both collections. Deletion is allowed regardless
// of the current stock level.
func (s *InventoryService) DeleteProduct(ctx context.Context, sku string) error {
	if _, exists := s.products[sku]; !exists {
		return &NotFoundError{SKU: sku}
	}

	delete(s.products, sku)

	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ProductSKU != sku {
			kept = append(kept, t)
		}
	}
	s.transactions = kept

	if err := s.saveProducts(ctx); err != nil {
		return err
	}
	return s.saveTransactions(ctx)
}

func (s *InventoryService) appendTransaction(sku string, txType entities.TransactionType, quantity int, notes string) {
	s.transactions = append(s.transactions, entities.Transaction{
		ID:         s.ids.NewID(),
		ProductSKU: sku,
		Type:       txType,
		Quantity:   quantity,
		Timestamp:  s.clock.Now(),
		Notes:      notes,
	})
}

func (s *InventoryService) saveProducts(ctx context.Context) error {
	products := make([]entities.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	if err := s.store.SaveProducts(ctx, products); err != nil {
		return &StorageError{Op: "save products", Err: err}
	}
	return nil
}

func (s *InventoryService) saveTransactions(ctx context.Context) error {
	if err := s.store.SaveTransactions(ctx, s.transactions); err != nil {
		return &StorageError{Op: "save transactions", Err: err}
	}
	return nil
}
