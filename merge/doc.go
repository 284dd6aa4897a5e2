// Package merge combines registered tables into a single table under a
// user-controlled column mapping.
//
// A [Config] selects two or more tables and maps each table's current column
// names onto canonical merged-column names. Columns with identical names
// across tables (compared case-insensitively after trimming and Unicode
// normalization) are pre-mapped automatically; an explicit mapping entry for
// the same table and column always wins over the automatic match. Columns
// with no mapping at all are dropped from the merge.
//
// The merged output is fully deterministic: canonical columns appear in
// first-seen order across the selection, and rows appear in selection order,
// each source table's rows in their original order. No sorting, no
// reordering.
package merge
