package tablex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParsePageSpec parses a 1-indexed page selection like "1,3,5-7" into a
// sorted, deduplicated page list. Whitespace around entries is ignored.
// Empty entries, non-numbers, pages below 1, and inverted ranges are
// rejected.
func ParsePageSpec(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty page spec")
	}

	seen := make(map[int]bool)
	var pages []int
	add := func(p int) {
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("page spec %q: empty entry", spec)
		}

		lo, hi, found := strings.Cut(part, "-")
		if !found {
			p, err := parsePage(lo)
			if err != nil {
				return nil, fmt.Errorf("page spec %q: %w", spec, err)
			}
			add(p)
			continue
		}

		from, err := parsePage(lo)
		if err != nil {
			return nil, fmt.Errorf("page spec %q: %w", spec, err)
		}
		to, err := parsePage(hi)
		if err != nil {
			return nil, fmt.Errorf("page spec %q: %w", spec, err)
		}
		if to < from {
			return nil, fmt.Errorf("page spec %q: range %d-%d is inverted", spec, from, to)
		}
		for p := from; p <= to; p++ {
			add(p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}

func parsePage(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid page %q", strings.TrimSpace(s))
	}
	if p < 1 {
		return 0, fmt.Errorf("page %d out of range, pages are 1-indexed", p)
	}
	return p, nil
}
