// Package engine defines the uniform contract for table extraction engines
// and the ordered fallback chain that tries them.
//
// An [Engine] turns one page of a source document into zero or more
// [model.RawTable] values. Engines are external collaborators: this module
// does not implement PDF parsing itself, it adapts existing extractors
// (a text-layer parser, the tabula-java extractor, a Tesseract-backed
// vision engine) behind the one interface.
//
// # Fallback policy
//
// A [Chain] holds engines in preference order. For each page, the first
// engine that returns at least one non-empty raw table wins that page;
// later engines are never consulted for pages already satisfied. An engine
// is skipped - and the chain falls through to the next one - when it
// reports [ErrNoTables] (a genuine miss), [ErrUnavailable] (cannot run in
// this environment or on this source), or any other error, which is
// recorded on the [PageResult] so the caller can surface it as a warning.
// Fallback happens only on a total miss for the page, never by merging
// partial results across engines.
package engine
