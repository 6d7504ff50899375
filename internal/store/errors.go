package store

import "errors"

// Domain errors returned by store operations. The API layer maps these to
// HTTP statuses with errors.Is; anything else is a storage failure.
var (
	ErrUsernameTaken     = errors.New("username already exists")
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("not enough quantity available")
)
