package export

import (
	"fmt"
	"strings"
)

// maxSheetNameLen is Excel's hard limit on worksheet name length.
const maxSheetNameLen = 31

// forbiddenSheetChars are the characters Excel rejects in worksheet names.
const forbiddenSheetChars = `[]:*?/\`

// sanitizeSheetName makes a string acceptable as an Excel worksheet name:
// forbidden characters become dashes, surrounding apostrophes are stripped,
// and the result is truncated to 31 characters. A name that sanitizes to
// nothing becomes "Sheet".
func sanitizeSheetName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(forbiddenSheetChars, r) {
			b.WriteRune('-')
		} else {
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())
	out = strings.Trim(out, "'")
	if out == "" {
		out = "Sheet"
	}
	return truncateRunes(out, maxSheetNameLen)
}

// truncateRunes shortens s to at most n characters. Excel's sheet name
// limit counts characters, not bytes, so cutting by byte offset could split
// a multibyte rune.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}

// sheetNamer hands out sanitized, workbook-unique sheet names. Excel treats
// sheet names case-insensitively, so uniqueness is tracked on the folded
// form.
type sheetNamer struct {
	used map[string]bool
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]bool)}
}

// name returns the sanitized name, suffixing " (2)", " (3)", ... on
// collision. The suffix survives even when the base must be shortened to
// stay within the length limit.
func (n *sheetNamer) name(raw string) string {
	base := sanitizeSheetName(raw)
	candidate := base
	for i := 2; n.used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		// The suffix is ASCII, so its byte length is its character count.
		trimmed := truncateRunes(base, maxSheetNameLen-len(suffix))
		candidate = trimmed + suffix
	}
	n.used[strings.ToLower(candidate)] = true
	return candidate
}
