//go:build !ocr

// Package vision extracts tables from rendered page images using OCR.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// The engine reports itself unavailable so an extraction chain falls through
// to the next engine without a warning.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package vision

import (
	"context"
	"fmt"

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
	return &Engine{cfg: cfg}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "vision" }

// ExtractTables reports the engine unavailable; rebuild with -tags ocr to
// enable recognition.
func (e *Engine) ExtractTables(_ context.Context, _ engine.Source, _ int) ([]model.RawTable, error) {
	return nil, fmt.Errorf("OCR support not compiled in, rebuild with -tags ocr: %w", engine.ErrUnavailable)
}
