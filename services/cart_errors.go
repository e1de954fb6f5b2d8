package services

import (
	"errors"
	"fmt"
)

type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrInvalidQuantity = errors.New("quantity must be a whole number between 1 and 99")
	ErrItemNotInCart   = errors.New("product not found in cart")
	ErrInvalidProduct  = errors.New("invalid product: missing id")
)

// CartError is returned for a rejected cart mutation. The cart is left
// exactly as it was.
type CartError struct {
	Code      StatusCode
	ProductID int
	Err       error
}

func (e *CartError) Error() string {
	return fmt.Sprintf("%s: %v (product %d)", e.Code, e.Err, e.ProductID)
}

func (e *CartError) Unwrap() error {
	return e.Err
}

func newInvalidArgument(productID int, err error) *CartError {
	return &CartError{Code: StatusInvalidArgument, ProductID: productID, Err: err}
}

func newFailedPrecondition(productID int, err error) *CartError {
	return &CartError{Code: StatusFailedPrecondition, ProductID: productID, Err: err}
}
