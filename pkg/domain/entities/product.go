package entities

// Product represents a stock-keeping catalog entry. The SKU is the
// external handle for every operation; the ID is assigned at creation
// and never changes.
type Product struct {
	ID           string `json:"id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
	ReorderPoint int    `json:"reorder_point"`
}

// IsLowStock reports whether current stock is at or below the reorder point.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderPoint
}
