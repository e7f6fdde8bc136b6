package fsys

import "errors"

// Sentinel errors for package fsys.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Diversion errors
	ErrSelfDiversion   = errors.New("path cannot be diverted to itself")
	ErrAlreadyDiverted = errors.New("path already participates in a diversion")
	ErrNotDiverted     = errors.New("path is not diverted")

	// Ownership errors
	ErrNotOwner = errors.New("package does not list this path")

	// Hashing errors
	ErrExpectedFile = errors.New("expected file, got directory")
)
