package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mleone/stockctl/pkg/domain/entities"
)

// ProductDetail renders a full product record. Low-stock products carry
// a [LOW STOCK] marker next to the quantity.
func ProductDetail(p entities.Product) string {
	lowStock := ""
	if p.IsLowStock() {
		lowStock = " [LOW STOCK]"
	}
	return fmt.Sprintf(
		"Product Details:\n  ID: %s\n  SKU: %s\n  Name: %s\n  Description: %s\n  Quantity: %d%s\n  Reorder Point: %d",
		p.ID, p.SKU, p.Name, p.Description, p.Quantity, lowStock, p.ReorderPoint)
}

// AddedProduct renders the confirmation for a newly created product.
func AddedProduct(p entities.Product) string {
	return fmt.Sprintf(
		"Product added successfully:\n  ID: %s\n  SKU: %s\n  Name: %s\n  Description: %s\n  Quantity: %d\n  Reorder Point: %d",
		p.ID, p.SKU, p.Name, p.Description, p.Quantity, p.ReorderPoint)
}

// UpdatedProduct renders the confirmation for an updated product.
func UpdatedProduct(p entities.Product) string {
	return fmt.Sprintf(
		"Product updated successfully:\n  SKU: %s\n  Name: %s\n  Description: %s\n  Quantity: %d\n  Reorder Point: %d",
		p.SKU, p.Name, p.Description, p.Quantity, p.ReorderPoint)
}

// StockAdded renders the confirmation for a stock addition.
func StockAdded(sku string, quantity, newQuantity int) string {
	return fmt.Sprintf(
		"Stock added successfully:\n  SKU: %s\n  Added: %d\n  New Quantity: %d",
		sku, quantity, newQuantity)
}

// StockRemoved renders the confirmation for a stock removal.
func StockRemoved(sku string, quantity, newQuantity int) string {
	return fmt.Sprintf(
		"Stock removed successfully:\n  SKU: %s\n  Removed: %d\n  New Quantity: %d",
		sku, quantity, newQuantity)
}

// DeletedProduct renders the confirmation for a product deletion.
func DeletedProduct(sku string) string {
	return fmt.Sprintf("Product %q deleted successfully.", sku)
}

// ProductList renders the whole catalog, one line per product, sorted
// by SKU so output is stable across runs.
func ProductList(products []entities.Product) string {
	if len(products) == 0 {
		return "No products in inventory."
	}

	sorted := sortBySKU(products)
	var b strings.Builder
	fmt.Fprintf(&b, "Products (%d total):\n", len(sorted))
	for _, p := range sorted {
		low := ""
		if p.IsLowStock() {
			low = " [LOW]"
		}
		fmt.Fprintf(&b, "  %s - %s (Qty: %d%s)\n", p.SKU, p.Name, p.Quantity, low)
	}
	return strings.TrimRight(b.String(), "\n")
}

// LowStockList renders the products at or below their reorder point,
// sorted by SKU.
func LowStockList(products []entities.Product) string {
	if len(products) == 0 {
		return "No products with low stock."
	}

	sorted := sortBySKU(products)
	var b strings.Builder
	fmt.Fprintf(&b, "Low Stock Products (%d total):\n", len(sorted))
	for _, p := range sorted {
		fmt.Fprintf(&b, "  %s - %s (Qty: %d, Reorder at: %d)\n", p.SKU, p.Name, p.Quantity, p.ReorderPoint)
	}
	return strings.TrimRight(b.String(), "\n")
}

// History renders a product's transaction history, one line per
// movement in the order given (the service already sorts by timestamp).
func History(sku string, transactions []entities.Transaction) string {
	if len(transactions) == 0 {
		return fmt.Sprintf("No transactions found for product %q.", sku)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Transaction History for %q (%d transactions):\n", sku, len(transactions))
	for _, t := range transactions {
		sign := "+"
		if t.Type == entities.Removal {
			sign = "-"
		}
		notes := ""
		if t.Notes != "" {
			notes = " - " + t.Notes
		}
		fmt.Fprintf(&b, "  %s %s %d %s%s\n",
			t.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			sign, t.Quantity, strings.ToLower(string(t.Type)), notes)
	}
	return strings.TrimRight(b.String(), "\n")
}

func sortBySKU(products []entities.Product) []entities.Product {
	sorted := make([]entities.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SKU < sorted[j].SKU
	})
	return sorted
}
