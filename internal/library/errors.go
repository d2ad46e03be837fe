package library

import "errors"

// Shared domain errors. Callers distinguish failures with errors.Is; none
// of these are fatal.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateName  = errors.New("collection name already exists")
	ErrAlreadyPresent = errors.New("game already in collection")
	ErrEmptyName      = errors.New("collection name must not be empty")
	ErrInvalidScore   = errors.New("review score out of range")
)
