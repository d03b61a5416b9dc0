package errors

import "errors"

var (
	// ErrDuplicateItem is returned when adding a product that is already in the cart.
	ErrDuplicateItem = errors.New("this item is already present in users cart")
	// ErrItemNotFound is returned when updating or deleting a product that is not in the cart.
	ErrItemNotFound = errors.New("item is not present in user's cart")
	// ErrQuantityOutOfRange is returned when an update would push the quantity
	// below zero or above the configured maximum.
	ErrQuantityOutOfRange = errors.New("updated item quantity out of allowed range")
	// ErrDataIntegrity is returned when a stored cart line references a product
	// that no longer exists in the catalog.
	ErrDataIntegrity = errors.New("found product in cart which does not exist in system")
)
