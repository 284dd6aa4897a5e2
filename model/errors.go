package model

import "errors"

// Error taxonomy shared across the module. All four are recoverable at the
// boundary that invoked the operation: they should be surfaced to the user,
// never crash the process.
var (
	// ErrNoTablesFound indicates an extraction run produced no tables after
	// every configured engine was exhausted.
	ErrNoTablesFound = errors.New("no tables found")

	// ErrShapeMismatch indicates an edit submission whose row lengths
	// disagree with its header count. The prior table state is retained.
	ErrShapeMismatch = errors.New("row/column shape mismatch")

	// ErrUnknownTable indicates a table id that is not present in the
	// registry.
	ErrUnknownTable = errors.New("unknown table")

	// ErrInsufficientSelection indicates a merge request naming fewer than
	// two tables.
	ErrInsufficientSelection = errors.New("insufficient tables to merge")
)
