package textlayer

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tablex/model"
)

// fragment is one positioned piece of text from the PDF content stream.
type fragment struct {
	text string
	x    float64
	y    float64
	w    float64
	size float64
}

// cell is a run of merged fragments forming one table cell candidate.
type cell struct {
	text string
	x0   float64
	x1   float64
}

// row is a horizontal band of cells sharing a Y position.
type row struct {
	y     float64
	cells []cell
}

// detectTables reconstructs tables from loose fragments. Fragments are
// grouped into rows, rows into vertically contiguous blocks, and each block
// that aligns into enough columns becomes a raw table.
func detectTables(frags []fragment, cfg Config) []model.RawTable {
	rows := groupRows(frags, cfg)
	if len(rows) == 0 {
		return nil
	}

	var tables []model.RawTable
	for _, block := range splitBlocks(rows, cfg.MaxRowGap) {
		if t := blockToTable(block, cfg); t != nil {
			tables = append(tables, t)
		}
	}
	return tables
}

// groupRows clusters fragments into rows by Y proximity, top of page
// first, and merges each row's fragments into cells by X proximity.
func groupRows(frags []fragment, cfg Config) []row {
	type band struct {
		y     float64
		frags []fragment
	}

	var bands []band
	for _, f := range frags {
		placed := false
		for i := range bands {
			if math.Abs(bands[i].y-f.y) < cfg.RowTolerance {
				bands[i].frags = append(bands[i].frags, f)
				placed = true
				break
			}
		}
		if !placed {
			bands = append(bands, band{y: f.y, frags: []fragment{f}})
		}
	}

	// PDF Y grows upward, so descending Y reads top to bottom.
	sort.Slice(bands, func(i, j int) bool { return bands[i].y > bands[j].y })

	rows := make([]row, 0, len(bands))
	for _, b := range bands {
		rows = append(rows, row{y: b.y, cells: mergeCells(b.frags, cfg)})
	}
	return rows
}

// mergeCells joins adjacent fragments on one row into cell candidates.
// Small gaps are intra-cell spacing; anything wider starts a new cell.
func mergeCells(frags []fragment, cfg Config) []cell {
	sort.Slice(frags, func(i, j int) bool { return frags[i].x < frags[j].x })

	var cells []cell
	var cur *cell
	var curSize float64

	for _, f := range frags {
		if cur == nil {
			cells = append(cells, cell{text: f.text, x0: f.x, x1: f.x + f.w})
			cur = &cells[len(cells)-1]
			curSize = f.size
			continue
		}

		gap := f.x - cur.x1
		limit := cfg.CellGapScale * maxFloat(f.size, curSize)
		if limit <= 0 {
			limit = cfg.CellGapScale
		}

		if gap <= limit {
			// Same cell. A visible gap between word fragments becomes a
			// space; character-level fragments sit flush and join directly.
			if gap > 0.3*maxFloat(f.size, curSize) {
				cur.text += " "
			}
			cur.text += f.text
			cur.x1 = f.x + f.w
			curSize = maxFloat(curSize, f.size)
			continue
		}

		cells = append(cells, cell{text: f.text, x0: f.x, x1: f.x + f.w})
		cur = &cells[len(cells)-1]
		curSize = f.size
	}

	for i := range cells {
		cells[i].text = strings.TrimSpace(cells[i].text)
	}
	return cells
}

// splitBlocks cuts the row sequence wherever the vertical gap exceeds
// maxGap, separating independent tables on the same page.
func splitBlocks(rows []row, maxGap float64) [][]row {
	var blocks [][]row
	start := 0
	for i := 1; i < len(rows); i++ {
		if rows[i-1].y-rows[i].y > maxGap {
			blocks = append(blocks, rows[start:i])
			start = i
		}
	}
	blocks = append(blocks, rows[start:])
	return blocks
}

// blockToTable aligns a block's cells into columns. Returns nil when the
// block does not look tabular.
func blockToTable(block []row, cfg Config) model.RawTable {
	if len(block) < cfg.MinRows {
		return nil
	}

	centers := columnCenters(block, cfg.ColumnTolerance)
	if len(centers) < cfg.MinCols {
		return nil
	}

	table := make(model.RawTable, 0, len(block))
	for _, r := range block {
		rec := make([]string, len(centers))
		for _, c := range r.cells {
			idx := nearestColumn(centers, c.x0)
			if rec[idx] == "" {
				rec[idx] = c.text
			} else {
				rec[idx] += " " + c.text
			}
		}
		table = append(table, rec)
	}
	return table
}

// columnCenters clusters cell start positions across the block into column
// anchor positions, left to right.
func columnCenters(block []row, tolerance float64) []float64 {
	var starts []float64
	for _, r := range block {
		for _, c := range r.cells {
			starts = append(starts, c.x0)
		}
	}
	sort.Float64s(starts)

	var centers []float64
	var clusterSum float64
	var clusterN int

	flush := func() {
		if clusterN > 0 {
			centers = append(centers, clusterSum/float64(clusterN))
			clusterSum, clusterN = 0, 0
		}
	}

	for i, x := range starts {
		if clusterN > 0 && x-starts[i-1] > tolerance {
			flush()
		}
		clusterSum += x
		clusterN++
	}
	flush()
	return centers
}

// nearestColumn returns the index of the closest column anchor.
func nearestColumn(centers []float64, x float64) int {
	best := 0
	bestDist := math.Abs(centers[0] - x)
	for i := 1; i < len(centers); i++ {
		if d := math.Abs(centers[i] - x); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
