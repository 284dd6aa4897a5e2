// Package export serializes tables to downloadable byte buffers.
//
// Input is a sequence of [Item] values, each a named header-and-rows pair
// built from a [model.Table] or [model.MergedTable]. Two formats are
// supported:
//
//   - [Workbook] produces a single Excel workbook with one worksheet per
//     item. Sheet names are derived from the item names, then sanitized,
//     truncated to Excel's 31-character limit, and de-duplicated.
//   - [CSV] produces one buffer per item. CSV has no sheet concept, so a
//     multi-table CSV export yields multiple buffers by design rather than
//     concatenating unrelated tables into one stream.
//
// Everything is produced in memory; handing buffers to a download or upload
// boundary is the caller's concern.
package export
