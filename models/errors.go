package models

import "errors"

var (
	ErrDuplicateLogin     = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownField       = errors.New("unknown field")

	ErrUnauthorized    = errors.New("operation not allowed for this role")
	ErrDuplicateItem   = errors.New("menu item already exists")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemInUse       = errors.New("menu item is referenced by existing orders")
	ErrInvalidItemName = errors.New("item name must not be empty")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")

	ErrOrderNotFound    = errors.New("order not found")
	ErrNotOrderOwner    = errors.New("order is placed by another user")
	ErrOrderAlreadyPaid = errors.New("order is already paid")
	ErrLineNotFound     = errors.New("item is not on the order")
	ErrDuplicateLine    = errors.New("item is already on the order")
	ErrNoDraft          = errors.New("no open draft order")
	ErrEmptyOrder       = errors.New("order must contain at least one item")

	ErrConflict         = errors.New("order was modified concurrently")
	ErrStoreUnavailable = errors.New("store unavailable")
)
