//go:build ocr

// Package vision extracts tables from rendered page images using OCR.
//
// The engine wraps the Tesseract engine via gosseract and requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// OCR support is compiled in with the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag the engine reports itself unavailable and the chain falls
// through. The engine consumes pre-rendered page images supplied on the
// source; it does not rasterize PDFs itself.
package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/draw"

	"github.com/tsawler/tablex/engine"
	"github.com/tsawler/tablex/model"
)

// Engine recognizes tables on rendered page images.
type Engine struct {
	cfg Config
}

// New creates a vision engine with default thresholds.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a vision engine with custom thresholds.
func NewWithConfig(cfg Config) *Engine {
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &Engine{cfg: cfg}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "vision" }

// ExtractTables implements engine.Engine.
func (e *Engine) ExtractTables(ctx context.Context, src engine.Source, pageIndex int) ([]model.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, ok := src.Images[pageIndex]
	if !ok || len(img) == 0 {
		return nil, fmt.Errorf("no rendered image for page %d: %w", pageIndex+1, engine.ErrUnavailable)
	}

	prepared, err := prepareImage(img, e.cfg.MinImageWidth)
	if err != nil {
		return nil, fmt.Errorf("preparing page %d image: %w", pageIndex+1, err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.cfg.Language); err != nil {
		return nil, fmt.Errorf("setting OCR language %q: %w", e.cfg.Language, err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return nil, fmt.Errorf("setting page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(prepared); err != nil {
		return nil, fmt.Errorf("loading page %d image: %w", pageIndex+1, err)
	}

	hocr, err := client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("OCR on page %d: %w", pageIndex+1, err)
	}

	words, err := parseHOCR(strings.NewReader(hocr))
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageIndex+1, err)
	}
	if len(words) == 0 {
		return nil, engine.ErrNoTables
	}

	tables := wordsToTables(words, e.cfg)
	if len(tables) == 0 {
		return nil, engine.ErrNoTables
	}
	return tables, nil
}

// prepareImage upscales small renders before recognition. Tesseract
// accuracy drops sharply below roughly 300 dpi.
func prepareImage(data []byte, minWidth int) ([]byte, error) {
	if minWidth <= 0 {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() >= minWidth {
		return data, nil
	}

	scale := 2
	for b.Dx()*scale < minWidth {
		scale++
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding upscaled image: %w", err)
	}
	return buf.Bytes(), nil
}
