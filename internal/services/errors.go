package services

import "errors"

// Sentinel errors controllers map onto HTTP status codes.
var (
	ErrUsernameTaken     = errors.New("username already exists")
	ErrNoRestaurant      = errors.New("restaurant does not exist")
	ErrUnknownItem       = errors.New("unknown item id")
	ErrInvalidItemID     = errors.New("item ids must be numeric")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)
