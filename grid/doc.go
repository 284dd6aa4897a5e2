// Package grid normalizes raw engine output into canonical tables.
//
// Extraction engines report tables as loose grids of text cells: rows can be
// ragged, cells can be blank, and there is no notion of a header. [Clean]
// turns such a grid into a rectangular [model.Table]:
//
//  1. Header resolution - the first row becomes the header when requested,
//     otherwise positional "Column N" names are synthesized.
//  2. Shape normalization - short rows are padded, long rows truncated, so
//     every row matches the header width. This never fails.
//  3. Pruning - rows that are blank in every cell are dropped, then columns
//     that are blank in every remaining row are dropped.
//
// A table whose header row survives but whose data rows were all pruned is
// kept, not discarded: a user may want to hand-enter data under detected
// headers. Column pruning is skipped in that case since there are no values
// left to judge columns by.
package grid
