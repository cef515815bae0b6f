package repositories

import "errors"

var (
	// ErrProductNotFound is returned when a (kind, id) or slug lookup does
	// not resolve to a row in the variant's table.
	ErrProductNotFound = errors.New("referenced product not found")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUserNotFound     = errors.New("user not found")
)
