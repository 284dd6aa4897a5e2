package tablex

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered during an extraction
// run, such as an engine failing on a page the chain then recovered from.
type Warning struct {
	// Page is the 1-indexed page the warning relates to, or 0 when the
	// warning is not page-specific.
	Page int

	// Engine names the engine that produced the warning, if any.
	Engine string

	// Message is a human-readable description.
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	switch {
	case w.Page > 0 && w.Engine != "":
		return fmt.Sprintf("page %d [%s]: %s", w.Page, w.Engine, w.Message)
	case w.Page > 0:
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	case w.Engine != "":
		return fmt.Sprintf("[%s]: %s", w.Engine, w.Message)
	default:
		return w.Message
	}
}

// FormatWarnings joins warnings into a single display string, one per line.
// Returns "" for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
