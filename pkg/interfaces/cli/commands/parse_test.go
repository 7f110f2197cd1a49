package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoArgumentsMeansHelp(t *testing.T) {
	cmd, err := Parse(nil)
	require.NoError(t, err)
	assert.IsType(t, &HelpCommand{}, cmd)
}

func TestParse_HelpAliases(t *testing.T) {
	for _, alias := range []string{"help", "--help", "-h"} {
		cmd, err := Parse([]string{alias})
		require.NoError(t, err, alias)
		assert.IsType(t, &HelpCommand{}, cmd, alias)
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	_, err := Parse([]string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestParse_AddProduct(t *testing.T) {
	cmd, err := Parse([]string{"add-product", "SKU001", "Widget", "A useful widget", "100", "20"})
	require.NoError(t, err)

	add, ok := cmd.(*AddProductCommand)
	require.True(t, ok)
	assert.Equal(t, "SKU001", add.SKU)
	assert.Equal(t, "Widget", add.Name)
	assert.Equal(t, "A useful widget", add.Description)
	assert.Equal(t, 100, add.Quantity)
	assert.Equal(t, 20, add.ReorderPoint)
}

func TestParse_AddProduct_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing_arguments", args: []string{"add-product", "SKU001", "Widget"}},
		{name: "non_numeric_quantity", args: []string{"add-product", "SKU001", "Widget", "", "lots", "20"}},
		{name: "negative_quantity", args: []string{"add-product", "SKU001", "Widget", "", "-3", "20"}},
		{name: "negative_reorder_point", args: []string{"add-product", "SKU001", "Widget", "", "3", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParse_UpdateProduct(t *testing.T) {
	cmd, err := Parse([]string{"update-product", "SKU001", "--name", "New Name", "--reorder-point", "30"})
	require.NoError(t, err)

	update, ok := cmd.(*UpdateProductCommand)
	require.True(t, ok)
	assert.Equal(t, "SKU001", update.SKU)
	require.NotNil(t, update.Name)
	assert.Equal(t, "New Name", *update.Name)
	assert.Nil(t, update.Description)
	require.NotNil(t, update.ReorderPoint)
	assert.Equal(t, 30, *update.ReorderPoint)
}

func TestParse_UpdateProduct_NoOptionsIsValid(t *testing.T) {
	cmd, err := Parse([]string{"update-product", "SKU001"})
	require.NoError(t, err)

	update, ok := cmd.(*UpdateProductCommand)
	require.True(t, ok)
	assert.Nil(t, update.Name)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.ReorderPoint)
}

func TestParse_UpdateProduct_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no_sku", args: []string{"update-product"}},
		{name: "unknown_option", args: []string{"update-product", "SKU001", "--price", "9"}},
		{name: "dangling_option", args: []string{"update-product", "SKU001", "--name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParse_StockMovements(t *testing.T) {
	cmd, err := Parse([]string{"add-stock", "SKU001", "50", "--notes", "Received shipment"})
	require.NoError(t, err)
	add, ok := cmd.(*AddStockCommand)
	require.True(t, ok)
	assert.Equal(t, "SKU001", add.SKU)
	assert.Equal(t, 50, add.Quantity)
	assert.Equal(t, "Received shipment", add.Notes)

	cmd, err = Parse([]string{"remove-stock", "SKU001", "10"})
	require.NoError(t, err)
	remove, ok := cmd.(*RemoveStockCommand)
	require.True(t, ok)
	assert.Equal(t, 10, remove.Quantity)
	assert.Empty(t, remove.Notes)
}

func TestParse_StockMovement_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing_quantity", args: []string{"add-stock", "SKU001"}},
		{name: "non_numeric", args: []string{"remove-stock", "SKU001", "ten"}},
		{name: "negative", args: []string{"add-stock", "SKU001", "-5"}},
		{name: "dangling_notes", args: []string{"add-stock", "SKU001", "5", "--notes"}},
		{name: "unknown_option", args: []string{"add-stock", "SKU001", "5", "--reason", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParse_History(t *testing.T) {
	cmd, err := Parse([]string{"history", "SKU001", "--start", "2025-01-01T00:00:00", "--end", "2025-12-31T23:59:59"})
	require.NoError(t, err)

	history, ok := cmd.(*HistoryCommand)
	require.True(t, ok)
	assert.Equal(t, "SKU001", history.SKU)
	require.NotNil(t, history.Start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *history.Start)
	require.NotNil(t, history.End)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), *history.End)
}

func TestParse_History_BareSKU(t *testing.T) {
	cmd, err := Parse([]string{"history", "SKU001"})
	require.NoError(t, err)

	history, ok := cmd.(*HistoryCommand)
	require.True(t, ok)
	assert.Nil(t, history.Start)
	assert.Nil(t, history.End)
}

func TestParse_History_BadDatetime(t *testing.T) {
	_, err := Parse([]string{"history", "SKU001", "--start", "yesterday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DDTHH:MM:SS")
}

func TestParse_ViewListLowStockDelete(t *testing.T) {
	cmd, err := Parse([]string{"view-product", "SKU001"})
	require.NoError(t, err)
	assert.Equal(t, &ViewProductCommand{SKU: "SKU001"}, cmd)

	cmd, err = Parse([]string{"list-products"})
	require.NoError(t, err)
	assert.IsType(t, &ListProductsCommand{}, cmd)

	cmd, err = Parse([]string{"low-stock"})
	require.NoError(t, err)
	assert.IsType(t, &LowStockCommand{}, cmd)

	cmd, err = Parse([]string{"delete-product", "SKU001"})
	require.NoError(t, err)
	assert.Equal(t, &DeleteProductCommand{SKU: "SKU001"}, cmd)

	_, err = Parse([]string{"view-product"})
	assert.Error(t, err)
	_, err = Parse([]string{"delete-product"})
	assert.Error(t, err)
}
