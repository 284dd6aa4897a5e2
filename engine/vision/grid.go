package vision

import (
	"math"
	"sort"

	"github.com/tsawler/tablex/model"
)

// Config holds the recognition language and the geometric thresholds for
// turning word boxes into tables. The thresholds are expressed as multiples
// of word height so they hold across rendering resolutions.
type Config struct {
	// Language is the Tesseract language code, "+"-separated for multiple
	// languages (e.g. "eng+fra").
	Language string

	// CellGapScale is the widest horizontal gap, in word heights, bridged
	// when joining adjacent words into one cell.
	CellGapScale float64

	// ColumnScale is the alignment tolerance, in median word heights, for
	// assigning cells to the same column.
	ColumnScale float64

	// BlockGapScale is the vertical gap, in median word heights, that splits
	// rows into separate tables.
	BlockGapScale float64

	// MinRows and MinCols are the minimum dimensions for a block to count
	// as a table.
	MinRows int
	MinCols int

	// MinImageWidth is the width, in pixels, below which page images are
	// upscaled before recognition. Tesseract degrades on small renders.
	MinImageWidth int
}

// DefaultConfig returns thresholds tuned for pages rendered at 150 dpi or
// better.
func DefaultConfig() Config {
	return Config{
		Language:      "eng",
		CellGapScale:  1.2,
		ColumnScale:   0.8,
		BlockGapScale: 2.0,
		MinRows:       2,
		MinCols:       2,
		MinImageWidth: 1200,
	}
}

type visionCell struct {
	text string
	x0   int
	x1   int
}

type visionRow struct {
	y     float64
	cells []visionCell
}

// wordsToTables reconstructs tables from recognized word boxes: words are
// grouped into rows by vertical overlap, joined into cells by horizontal
// proximity, and aligned into columns across the block.
func wordsToTables(words []word, cfg Config) []model.RawTable {
	rows := groupWordRows(words)
	if len(rows) == 0 {
		return nil
	}

	med := medianHeight(words)

	merged := make([]visionRow, 0, len(rows))
	for _, band := range rows {
		merged = append(merged, visionRow{
			y:     band[0].midY(),
			cells: mergeWords(band, cfg),
		})
	}

	var tables []model.RawTable
	for _, block := range splitRowBlocks(merged, cfg.BlockGapScale*med) {
		if t := blockTable(block, cfg, med); t != nil {
			tables = append(tables, t)
		}
	}
	return tables
}

// groupWordRows clusters words into horizontal bands by vertical center
// proximity, ordered top to bottom.
func groupWordRows(words []word) [][]word {
	var bands [][]word
	for _, w := range words {
		tol := 0.5 * w.height()
		if tol <= 0 {
			tol = 1
		}
		placed := false
		for i := range bands {
			if math.Abs(bands[i][0].midY()-w.midY()) < tol {
				bands[i] = append(bands[i], w)
				placed = true
				break
			}
		}
		if !placed {
			bands = append(bands, []word{w})
		}
	}

	sort.Slice(bands, func(i, j int) bool { return bands[i][0].midY() < bands[j][0].midY() })
	return bands
}

// mergeWords joins adjacent words on one band into cells. Recognized words
// within a cell are always space-separated.
func mergeWords(band []word, cfg Config) []visionCell {
	sort.Slice(band, func(i, j int) bool { return band[i].x0 < band[j].x0 })

	var cells []visionCell
	for _, w := range band {
		if len(cells) > 0 {
			cur := &cells[len(cells)-1]
			limit := cfg.CellGapScale * w.height()
			if float64(w.x0-cur.x1) <= limit {
				cur.text += " " + w.text
				cur.x1 = w.x1
				continue
			}
		}
		cells = append(cells, visionCell{text: w.text, x0: w.x0, x1: w.x1})
	}
	return cells
}

func splitRowBlocks(rows []visionRow, maxGap float64) [][]visionRow {
	var blocks [][]visionRow
	start := 0
	for i := 1; i < len(rows); i++ {
		if rows[i].y-rows[i-1].y > maxGap {
			blocks = append(blocks, rows[start:i])
			start = i
		}
	}
	blocks = append(blocks, rows[start:])
	return blocks
}

func blockTable(block []visionRow, cfg Config, med float64) model.RawTable {
	if len(block) < cfg.MinRows {
		return nil
	}

	centers := cellColumns(block, cfg.ColumnScale*med)
	if len(centers) < cfg.MinCols {
		return nil
	}

	table := make(model.RawTable, 0, len(block))
	for _, r := range block {
		rec := make([]string, len(centers))
		for _, c := range r.cells {
			idx := closestColumn(centers, float64(c.x0))
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

func cellColumns(block []visionRow, tolerance float64) []float64 {
	var starts []float64
	for _, r := range block {
		for _, c := range r.cells {
			starts = append(starts, float64(c.x0))
		}
	}
	sort.Float64s(starts)

	var centers []float64
	var sum float64
	var n int
	flush := func() {
		if n > 0 {
			centers = append(centers, sum/float64(n))
			sum, n = 0, 0
		}
	}
	for i, x := range starts {
		if n > 0 && x-starts[i-1] > tolerance {
			flush()
		}
		sum += x
		n++
	}
	flush()
	return centers
}

func closestColumn(centers []float64, x float64) int {
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

func medianHeight(words []word) float64 {
	if len(words) == 0 {
		return 1
	}
	hs := make([]float64, len(words))
	for i, w := range words {
		hs[i] = w.height()
	}
	sort.Float64s(hs)
	m := hs[len(hs)/2]
	if m <= 0 {
		return 1
	}
	return m
}
