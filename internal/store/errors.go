package store

import "errors"

// Sentinel errors mapped by handlers onto HTTP statuses.
var (
	// ErrNotFound means no record exists for the key, or a single-record
	// read found a file it could not parse
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a record already exists for the key
	ErrConflict = errors.New("record already exists")

	// ErrInvalidID means an externally supplied identifier failed
	// validation and was never used to touch the filesystem
	ErrInvalidID = errors.New("invalid identifier")
)
