package domain

import "errors"

// ErrNotFound is returned by datasources when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a request is missing required identifiers.
var ErrInvalidInput = errors.New("invalid input")
