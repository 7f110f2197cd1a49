package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const datetimeLayout = "2006-01-02T15:04:05"

// Parse turns command-line arguments (excluding the program name) into
// a Command. It is a pure function: no I/O, no service access, so the
// whole grammar is testable in isolation. No arguments means help.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return &HelpCommand{}, nil
	}

	switch cmd := args[0]; cmd {
	case "add-product":
		return parseAddProduct(args[1:])
	case "update-product":
		return parseUpdateProduct(args[1:])
	case "add-stock":
		return parseStockMovement(args[1:], true)
	case "remove-stock":
		return parseStockMovement(args[1:], false)
	case "view-product":
		return parseViewProduct(args[1:])
	case "list-products":
		return &ListProductsCommand{}, nil
	case "low-stock":
		return &LowStockCommand{}, nil
	case "history":
		return parseHistory(args[1:])
	case "delete-product":
		return parseDeleteProduct(args[1:])
	case "help", "--help", "-h":
		return &HelpCommand{}, nil
	default:
		return nil, fmt.Errorf("unknown command %q: use 'help' to see available commands", cmd)
	}
}

func parseAddProduct(args []string) (Command, error) {
	if len(args) < 5 {
		return nil, errors.New(
			"usage: add-product <sku> <name> <description> <quantity> <reorder_point>\n" +
				`example: add-product SKU001 "Widget" "A useful widget" 100 20`)
	}

	quantity, err := parseCount(args[3], "quantity")
	if err != nil {
		return nil, err
	}
	reorderPoint, err := parseCount(args[4], "reorder point")
	if err != nil {
		return nil, err
	}

	return &AddProductCommand{
		SKU:          args[0],
		Name:         args[1],
		Description:  args[2],
		Quantity:     quantity,
		ReorderPoint: reorderPoint,
	}, nil
}

func parseUpdateProduct(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, errors.New(
			"usage: update-product <sku> [--name <name>] [--description <desc>] [--reorder-point <n>]\n" +
				`example: update-product SKU001 --name "New Name" --reorder-point 30`)
	}

	cmd := &UpdateProductCommand{SKU: args[0]}

	i := 1
	for i < len(args) {
		switch args[i] {
		case "--name":
			value, err := optionValue(args, i, "--name")
			if err != nil {
				return nil, err
			}
			cmd.Name = &value
			i += 2
		case "--description":
			value, err := optionValue(args, i, "--description")
			if err != nil {
				return nil, err
			}
			cmd.Description = &value
			i += 2
		case "--reorder-point":
			value, err := optionValue(args, i, "--reorder-point")
			if err != nil {
				return nil, err
			}
			reorderPoint, err := parseCount(value, "reorder point")
			if err != nil {
				return nil, err
			}
			cmd.ReorderPoint = &reorderPoint
			i += 2
		default:
			return nil, fmt.Errorf("unknown option %q: valid options are --name, --description, --reorder-point", args[i])
		}
	}

	return cmd, nil
}

func parseStockMovement(args []string, addition bool) (Command, error) {
	name := "remove-stock"
	if addition {
		name = "add-stock"
	}
	if len(args) < 2 {
		return nil, fmt.Errorf(
			"usage: %s <sku> <quantity> [--notes <notes>]\nexample: %s SKU001 50", name, name)
	}

	quantity, err := parseCount(args[1], "quantity")
	if err != nil {
		return nil, err
	}

	notes := ""
	i := 2
	for i < len(args) {
		switch args[i] {
		case "--notes":
			value, err := optionValue(args, i, "--notes")
			if err != nil {
				return nil, err
			}
			notes = value
			i += 2
		default:
			return nil, fmt.Errorf("unknown option %q: valid options are --notes", args[i])
		}
	}

	if addition {
		return &AddStockCommand{SKU: args[0], Quantity: quantity, Notes: notes}, nil
	}
	return &RemoveStockCommand{SKU: args[0], Quantity: quantity, Notes: notes}, nil
}

func parseViewProduct(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, errors.New("usage: view-product <sku>\nexample: view-product SKU001")
	}
	return &ViewProductCommand{SKU: args[0]}, nil
}

func parseHistory(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, errors.New(
			"usage: history <sku> [--start <datetime>] [--end <datetime>]\n" +
				"example: history SKU001 --start 2025-01-01T00:00:00 --end 2025-12-31T23:59:59")
	}

	cmd := &HistoryCommand{SKU: args[0]}

	i := 1
	for i < len(args) {
		switch args[i] {
		case "--start":
			value, err := optionValue(args, i, "--start")
			if err != nil {
				return nil, err
			}
			start, err := parseDatetime(value)
			if err != nil {
				return nil, err
			}
			cmd.Start = &start
			i += 2
		case "--end":
			value, err := optionValue(args, i, "--end")
			if err != nil {
				return nil, err
			}
			end, err := parseDatetime(value)
			if err != nil {
				return nil, err
			}
			cmd.End = &end
			i += 2
		default:
			return nil, fmt.Errorf("unknown option %q: valid options are --start, --end", args[i])
		}
	}

	return cmd, nil
}

func parseDeleteProduct(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, errors.New("usage: delete-product <sku>\nexample: delete-product SKU001")
	}
	return &DeleteProductCommand{SKU: args[0]}, nil
}

// parseCount parses a non-negative integer argument.
func parseCount(value, label string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", label, value)
	}
	return n, nil
}

// parseDatetime parses YYYY-MM-DDTHH:MM:SS as a UTC instant.
func parseDatetime(value string) (time.Time, error) {
	t, err := time.Parse(datetimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: expected format YYYY-MM-DDTHH:MM:SS", value)
	}
	return t, nil
}

// optionValue returns the value following the option at index i.
func optionValue(args []string, i int, option string) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", option)
	}
	return args[i+1], nil
}
