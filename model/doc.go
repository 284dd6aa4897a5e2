// Package model provides the intermediate representation (IR) for extracted
// tabular content.
//
// This package defines the user-facing data structures that the rest of the
// module operates on. Extraction engines produce [RawTable] values, the grid
// package normalizes them into [Table] values, and the merge package combines
// tables into a [MergedTable].
//
// # Tables
//
// A [RawTable] is nothing more than rows of cells as an engine reported them:
// rows may be ragged, cells may be empty. A [Table] is the canonical unit the
// registry stores:
//
//   - ID - session-unique, assigned at registration, never reused
//   - Page - 1-indexed source page
//   - Method - which engine produced it
//   - OriginalHeaders - column names captured at extraction time (provenance)
//   - Headers - current column names, editable
//   - Rows - one [Row] per record, keyed by current header name
//
// Every row holds exactly one value per header, and header names are unique
// within a table; [NormalizeHeaders] enforces both placeholder naming and
// duplicate suffixing.
//
// # Errors
//
// The package also defines the error taxonomy shared across the module:
// [ErrNoTablesFound], [ErrShapeMismatch], [ErrUnknownTable], and
// [ErrInsufficientSelection]. All are recoverable at the boundary that
// invoked the operation and are wrapped with context where they occur.
package model
