// Package tablex turns tables extracted from PDFs into clean, editable,
// exportable data.
//
// A [Session] owns the extraction state for one user: extracted tables live
// in a registry with stable integer ids, user corrections sit in an edit
// overlay that never touches the extracted content, and the merge planner
// combines tables column-by-column. Extraction itself runs through an
// ordered chain of engines; the first engine that finds tables on a page
// wins that page, and pages the primary engine cannot read (scanned
// documents, odd encodings) fall through to the next engine.
//
// Basic usage:
//
//	session := tablex.New()
//	ids, err := session.Open("report.pdf").Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if ws := session.Warnings(); len(ws) > 0 {
//	    log.Println("warnings:", tablex.FormatWarnings(ws))
//	}
//
//	xlsx, err := session.ExportExcel(ids...)
//
// With options:
//
//	ids, err := session.Open("report.pdf").
//	    PageSpec("1,3,5-7").
//	    FirstRowHeader(true).
//	    Run(ctx)
//
// Editing and merging:
//
//	err = session.Edit(ids[0], []string{"Name", "Total"}, [][]string{{"Acme", "120"}})
//	merged, err := session.Merge(merge.Config{SelectedIDs: ids})
//
// The lower-level packages (model, grid, registry, merge, export, engine)
// are also available for callers that do not want the session layer.
package tablex

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	ids := tablex.Must(session.Open("document.pdf").Run(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
