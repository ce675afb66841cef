package repository

import "errors"

// Not-found errors deliberately cover both "row does not exist" and "row
// belongs to another tenant"; callers cannot tell the two apart.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateSKU      = errors.New("product with this SKU already exists")

	ErrInsufficientStock = errors.New("insufficient stock")
)
