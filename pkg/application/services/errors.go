package services

import "fmt"

// NotFoundError indicates a lookup of a SKU with no matching product.
type NotFoundError struct {
	SKU string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.SKU)
}

// DuplicateSKUError indicates an attempt to create a product with a SKU
// that is already in the catalog.
type DuplicateSKUError struct {
	SKU string
}

func (e *DuplicateSKUError) Error() string {
	return fmt.Sprintf("product with SKU %q already exists", e.SKU)
}

// InvalidInputError indicates a rejected argument: empty SKU, empty
// name, a non-positive movement quantity, or a negative count.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// InsufficientStockError indicates a removal that would drive a
// product's quantity below zero.
type InsufficientStockError struct {
	SKU       string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.SKU, e.Requested, e.Available)
}

// StorageError wraps a persistence failure surfaced through the Store.
// When it follows a mutation, the in-memory change has already been
// applied and the on-disk state may lag behind it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
