package entity

import "errors"

var (
	// ErrInsufficientCash means the trade cost is not strictly below the
	// user's cash balance.
	ErrInsufficientCash = errors.New("transaction exceeds account balance")

	// ErrInsufficientShares means the user holds fewer shares than the
	// requested sell size.
	ErrInsufficientShares = errors.New("more shares to sell than owned")

	// ErrNotFound is returned by repositories when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned by repositories when an insert hits a
	// unique index.
	ErrAlreadyExists = errors.New("already exists")
)
