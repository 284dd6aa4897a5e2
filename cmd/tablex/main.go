// Command tablex extracts tables from a PDF and writes them to xlsx or CSV.
//
// Usage:
//
//	tablex [flags] document.pdf
//
// Configuration comes from flags, with defaults from the environment (a
// .env file is loaded if present):
//
//	TABLEX_ENGINES     comma-separated engine order (textlayer,tabula,vision)
//	TABLEX_TABULA_JAR  path to the tabula-java jar
//	TABLEX_JAVA        java binary (default "java")
//	TABLEX_OCR_LANG    Tesseract language code (default "eng")
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/tsawler/tablex"
	"github.com/tsawler/tablex/engine"
	"github.com/tsawler/tablex/engine/tabulajar"
	"github.com/tsawler/tablex/engine/textlayer"
	"github.com/tsawler/tablex/engine/vision"
	"github.com/tsawler/tablex/export"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system env vars")
	}

	var (
		pages    = flag.String("pages", "", `pages to extract, e.g. "1,3,5-7" (default all)`)
		format   = flag.String("format", "xlsx", "output format: xlsx or csv")
		outDir   = flag.String("out", ".", "output directory")
		noHeader = flag.Bool("no-header", false, "do not treat the first row of each table as headers")
		engines  = flag.String("engines", getenv("TABLEX_ENGINES", "textlayer,tabula,vision"), "comma-separated engine order")
		jar      = flag.String("jar", os.Getenv("TABLEX_TABULA_JAR"), "path to the tabula-java jar")
		java     = flag.String("java", getenv("TABLEX_JAVA", "java"), "java binary for the tabula engine")
		lang     = flag.String("lang", getenv("TABLEX_OCR_LANG", "eng"), "OCR language code")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tablex [flags] document.pdf")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	chain, err := buildEngines(*engines, *jar, *java, *lang)
	if err != nil {
		log.Fatal(err)
	}

	session := tablex.New(tablex.WithEngines(chain...))
	run := session.Open(input)
	if *pages != "" {
		run = run.PageSpec(*pages)
	}
	if *noHeader {
		run = run.FirstRowHeader(false)
	}

	ids, err := run.Run(context.Background())
	if err != nil {
		log.WithError(err).Fatal("extraction failed")
	}
	log.WithField("tables", len(ids)).Info("extraction complete")

	for _, w := range session.Warnings() {
		log.Warn(w.String())
	}

	switch *format {
	case "xlsx":
		data, err := session.ExportExcel(ids...)
		if err != nil {
			log.WithError(err).Fatal("export failed")
		}
		path := filepath.Join(*outDir, export.OutputFilename(input, "xlsx"))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.WithError(err).Fatal("writing output")
		}
		log.WithField("file", path).Info("wrote workbook")

	case "csv":
		bufs, err := session.ExportCSV(ids...)
		if err != nil {
			log.WithError(err).Fatal("export failed")
		}
		for _, buf := range bufs {
			path := filepath.Join(*outDir, buf.Name+".csv")
			if err := os.WriteFile(path, buf.Data, 0o644); err != nil {
				log.WithError(err).Fatal("writing output")
			}
			log.WithField("file", path).Info("wrote CSV")
		}

	default:
		log.Fatalf("unknown format %q, want xlsx or csv", *format)
	}
}

// buildEngines assembles the chain in the requested order.
func buildEngines(spec, jar, java, lang string) ([]engine.Engine, error) {
	var out []engine.Engine
	for _, name := range strings.Split(spec, ",") {
		switch strings.TrimSpace(name) {
		case "textlayer":
			out = append(out, textlayer.New())
		case "tabula":
			out = append(out, tabulajar.New(tabulajar.Config{JarPath: jar, JavaPath: java}))
		case "vision":
			cfg := vision.DefaultConfig()
			cfg.Language = lang
			out = append(out, vision.NewWithConfig(cfg))
		case "":
		default:
			return nil, fmt.Errorf("unknown engine %q", name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no engines configured")
	}
	return out, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
