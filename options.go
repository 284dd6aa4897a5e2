package tablex

// ExtractOptions holds configuration for an extraction run.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is). nil means all pages.
	pages []int

	// Header handling: treat each grid's first row as its header row.
	firstRowHeader bool

	// Pre-rendered page images for raster-input engines, keyed by 0-indexed
	// page.
	images map[int][]byte
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil,
		firstRowHeader: true,
		images:         nil,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		firstRowHeader: o.firstRowHeader,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.images != nil {
		newOpts.images = make(map[int][]byte, len(o.images))
		for k, v := range o.images {
			newOpts.images[k] = v
		}
	}

	return newOpts
}
