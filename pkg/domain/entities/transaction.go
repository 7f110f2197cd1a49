package entities

import "time"

// TransactionType discriminates stock movements in the ledger.
type TransactionType string

const (
	// Addition records stock being added to a product
	Addition TransactionType = "Addition"
	// Removal records stock being removed from a product
	Removal TransactionType = "Removal"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Addition || t == Removal
}

// Transaction represents a single stock movement in the ledger.
// Entries are immutable once recorded; they are only removed in bulk
// when their product is deleted.
type Transaction struct {
	ID         string          `json:"id"`
	ProductSKU string          `json:"product_sku"`
	Type       TransactionType `json:"transaction_type"`
	Quantity   int             `json:"quantity"`
	Timestamp  time.Time       `json:"timestamp"`
	Notes      string          `json:"notes,omitempty"`
}
