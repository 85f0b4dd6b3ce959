package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidDate is returned when a DD-MM-YYYY string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)
