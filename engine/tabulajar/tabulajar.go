// Package tabulajar adapts the tabula-java extractor as an engine.
//
// tabula-java is the extraction library behind the Tabula project. It ships
// as a runnable jar, so this engine shells out to it per page and decodes
// its JSON output into raw tables. The engine reports itself unavailable
// when no jar is configured or no java binary can be found, letting the
// chain fall through without noise.
package tabulajar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tsawler/tablex/engine"
	"github.com/tsawler/tablex/model"
)

// Config locates the external tooling.
type Config struct {
	// JarPath is the path to the tabula-java jar. Required.
	JarPath string

	// JavaPath is the java binary to invoke. Defaults to "java" on PATH.
	JavaPath string
}

// Engine invokes tabula-java for each requested page.
type Engine struct {
	cfg Config
}

// New creates a tabula-java engine.
func New(cfg Config) *Engine {
	if cfg.JavaPath == "" {
		cfg.JavaPath = "java"
	}
	return &Engine{cfg: cfg}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "tabula-java" }

// ExtractTables implements engine.Engine.
func (e *Engine) ExtractTables(ctx context.Context, src engine.Source, pageIndex int) ([]model.RawTable, error) {
	if e.cfg.JarPath == "" {
		return nil, fmt.Errorf("no jar configured: %w", engine.ErrUnavailable)
	}
	if _, err := os.Stat(e.cfg.JarPath); err != nil {
		return nil, fmt.Errorf("jar %s: %w", e.cfg.JarPath, engine.ErrUnavailable)
	}
	if _, err := exec.LookPath(e.cfg.JavaPath); err != nil {
		return nil, fmt.Errorf("java binary %q: %w", e.cfg.JavaPath, engine.ErrUnavailable)
	}

	path, cleanup, err := sourcePath(src)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cmd := exec.CommandContext(ctx, e.cfg.JavaPath,
		"-jar", e.cfg.JarPath,
		"--pages", strconv.Itoa(pageIndex+1),
		"--format", "JSON",
		"--guess",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("tabula-java page %d: %s", pageIndex+1, msg)
	}

	tables, err := parseOutput(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("tabula-java page %d: %w", pageIndex+1, err)
	}
	if len(tables) == 0 {
		return nil, engine.ErrNoTables
	}
	return tables, nil
}

// sourcePath returns a filesystem path for the source, spilling in-memory
// data to a temp file when needed.
func sourcePath(src engine.Source) (string, func(), error) {
	if src.Path != "" {
		return src.Path, func() {}, nil
	}
	if len(src.Data) == 0 {
		return "", nil, fmt.Errorf("source has neither path nor data: %w", engine.ErrUnavailable)
	}

	f, err := os.CreateTemp("", "tablex-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("spilling source to disk: %w", err)
	}
	if _, err := f.Write(src.Data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("spilling source to disk: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("spilling source to disk: %w", err)
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

// jsonTable mirrors one element of tabula-java's JSON output.
type jsonTable struct {
	ExtractionMethod string       `json:"extraction_method"`
	PageNumber       int          `json:"page_number"`
	Data             [][]jsonCell `json:"data"`
}

type jsonCell struct {
	Text string `json:"text"`
}

// parseOutput decodes tabula-java JSON into raw tables, dropping tables
// with no content.
func parseOutput(out []byte) ([]model.RawTable, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var decoded []jsonTable
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, fmt.Errorf("decoding output: %w", err)
	}

	var tables []model.RawTable
	for _, jt := range decoded {
		raw := make(model.RawTable, 0, len(jt.Data))
		for _, row := range jt.Data {
			rec := make([]string, len(row))
			for i, c := range row {
				rec[i] = strings.TrimSpace(c.Text)
			}
			raw = append(raw, rec)
		}
		if len(raw) > 0 && !raw.IsEmpty() {
			tables = append(tables, raw)
		}
	}
	return tables, nil
}
