package merge

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/tablex/model"
)

// normalizeName produces the comparison key for auto-matching column names.
// NFKC folds the compatibility variants PDF text is full of (ligatures,
// full-width digits) before the case-insensitive, trimmed comparison.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
}

// autoMatch pre-maps every column whose normalized name occurs in two or
// more of the selected tables. The canonical spelling is taken from the
// first selected table carrying the name. The result maps table id ->
// source header -> canonical name and is advisory: explicit config entries
// override it.
func autoMatch(tables []*model.Table) map[int]map[string]string {
	// Count how many distinct tables carry each normalized name, and
	// remember the first spelling seen.
	tableCount := make(map[string]int)
	canonical := make(map[string]string)

	for _, t := range tables {
		seen := make(map[string]bool)
		for _, h := range t.Headers {
			key := normalizeName(h)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			tableCount[key]++
			if _, ok := canonical[key]; !ok {
				canonical[key] = strings.TrimSpace(h)
			}
		}
	}

	matched := make(map[int]map[string]string)
	for _, t := range tables {
		for _, h := range t.Headers {
			key := normalizeName(h)
			if tableCount[key] < 2 {
				continue
			}
			if matched[t.ID] == nil {
				matched[t.ID] = make(map[string]string)
			}
			matched[t.ID][h] = canonical[key]
		}
	}
	return matched
}
