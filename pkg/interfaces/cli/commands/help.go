package commands

// HelpText is the usage message for stockctl.
const HelpText = `stockctl - Inventory Management CLI

USAGE:
    stockctl <COMMAND> [OPTIONS]

COMMANDS:
    add-product <sku> <name> <description> <quantity> <reorder_point>
        Add a new product to inventory
        Example: add-product SKU001 "Widget" "A useful widget" 100 20

    update-product <sku> [--name <name>] [--description <desc>] [--reorder-point <n>]
        Update an existing product's details
        Example: update-product SKU001 --name "New Widget" --reorder-point 30

    add-stock <sku> <quantity> [--notes <notes>]
        Add stock to a product
        Example: add-stock SKU001 50 --notes "Received shipment"

    remove-stock <sku> <quantity> [--notes <notes>]
        Remove stock from a product
        Example: remove-stock SKU001 10 --notes "Sold to customer"

    view-product <sku>
        View details of a specific product
        Example: view-product SKU001

    list-products
        List all products in inventory

    low-stock
        List products with stock at or below their reorder point

    history <sku> [--start <datetime>] [--end <datetime>]
        View transaction history for a product
        Datetime format: YYYY-MM-DDTHH:MM:SS (UTC)
        Example: history SKU001 --start 2025-01-01T00:00:00 --end 2025-12-31T23:59:59

    delete-product <sku>
        Delete a product and all its transactions
        Example: delete-product SKU001

    help
        Show this help message

ENVIRONMENT:
    STOCKCTL_DATA_DIR
        Directory holding products.json and transactions.json
        (default: current directory; a .env file is honored)`
