package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mleone/stockctl/pkg/application/services"
	"github.com/mleone/stockctl/pkg/domain/entities"
	"github.com/mleone/stockctl/pkg/interfaces/cli/output"
)

// Command is a parsed CLI invocation, executable against an inventory
// service. Success output goes to out; failures are returned as errors
// for the entry point to report.
type Command interface {
	Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error
}

// AddProductCommand creates a new product.
type AddProductCommand struct {
	SKU          string
	Name         string
	Description  string
	Quantity     int
	ReorderPoint int
}

func (c *AddProductCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	product, err := svc.AddProduct(ctx, c.SKU, c.Name, c.Description, c.Quantity, c.ReorderPoint)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, output.AddedProduct(product))
	return nil
}

// UpdateProductCommand updates the supplied fields of an existing
// product; nil fields are left untouched.
type UpdateProductCommand struct {
	SKU          string
	Name         *string
	Description  *string
	ReorderPoint *int
}

func (c *UpdateProductCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	product, err := svc.UpdateProduct(ctx, c.SKU, services.ProductUpdate{
		Name:         c.Name,
		Description:  c.Description,
		ReorderPoint: c.ReorderPoint,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, output.UpdatedProduct(product))
	return nil
}

// AddStockCommand records a stock addition.
type AddStockCommand struct {
	SKU      string
	Quantity int
	Notes    string
}

func (c *AddStockCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	if err := svc.AddStock(ctx, c.SKU, c.Quantity, c.Notes); err != nil {
		return err
	}
	product, err := svc.GetProduct(c.SKU)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, output.StockAdded(c.SKU, c.Quantity, product.Quantity))
	return nil
}

// RemoveStockCommand records a stock removal.
type RemoveStockCommand struct {
	SKU      string
	Quantity int
	Notes    string
}

func (c *RemoveStockCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	if err := svc.RemoveStock(ctx, c.SKU, c.Quantity, c.Notes); err != nil {
		return err
	}
	product, err := svc.GetProduct(c.SKU)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, output.StockRemoved(c.SKU, c.Quantity, product.Quantity))
	return nil
}

// ViewProductCommand shows a single product.
type ViewProductCommand struct {
	SKU string
}

func (c *ViewProductCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	product, err := svc.GetProduct(c.SKU)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, output.ProductDetail(product))
	return nil
}

// ListProductsCommand shows the whole catalog.
type ListProductsCommand struct{}

func (c *ListProductsCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	fmt.Fprintln(out, output.ProductList(svc.ListProducts()))
	return nil
}

// LowStockCommand shows products at or below their reorder point.
type LowStockCommand struct{}

func (c *LowStockCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	fmt.Fprintln(out, output.LowStockList(svc.ListLowStock()))
	return nil
}

// HistoryCommand shows a product's transaction history. The window is
// applied only when both bounds are given; a partial window falls back
// to the full history.
type HistoryCommand struct {
	SKU   string
	Start *time.Time
	End   *time.Time
}

func (c *HistoryCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	// History of an unknown SKU is an error at the CLI, not the service.
	if _, err := svc.GetProduct(c.SKU); err != nil {
		return err
	}

	var transactions []entities.Transaction
	if c.Start != nil && c.End != nil {
		transactions = svc.GetTransactionsInRange(c.SKU, *c.Start, *c.End)
	} else {
		transactions = svc.GetTransactions(c.SKU)
	}
	fmt.Fprintln(out, output.History(c.SKU, transactions))
	return nil
}

// DeleteProductCommand removes a product and its transaction history.
type DeleteProductCommand struct {
	SKU string
}

func (c *DeleteProductCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	if err := svc.DeleteProduct(ctx, c.SKU); err != nil {
		return err
	}
	fmt.Fprintln(out, output.DeletedProduct(c.SKU))
	return nil
}

// HelpCommand prints usage. It ignores the service and may run with a
// nil one.
type HelpCommand struct{}

func (c *HelpCommand) Run(ctx context.Context, svc *services.InventoryService, out io.Writer) error {
	fmt.Fprintln(out, HelpText)
	return nil
}
