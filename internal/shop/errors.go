package shop

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound an entity id did not resolve.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername registration with a taken username.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials unknown username or password mismatch. The two
	// cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAuthenticationRequired the route needs a logged-in actor.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrAuthorizationDenied the actor is not an admin.
	ErrAuthorizationDenied = errors.New("authorization denied")
	// ErrOutOfStock cart add on a product with zero stock.
	ErrOutOfStock = errors.New("out of stock")
	// ErrExceedsStock cart add would push the quantity past available stock.
	ErrExceedsStock = errors.New("cannot add more than available stock")
	// ErrInvalidInput admin form values failed to parse or validate.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyCart checkout on an empty cart, surfaced as a silent redirect.
	ErrEmptyCart = errors.New("cart is empty")
)

// StockViolationError fails an entire checkout: the product vanished or its
// live stock is below the requested quantity.
type StockViolationError struct {
	ProductID   int64
	ProductName string
}

func (e *StockViolationError) Error() string {
	if e.ProductName == "" {
		return fmt.Sprintf("product %d is no longer available", e.ProductID)
	}
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}
