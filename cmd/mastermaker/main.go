// Package main provides the estate enrichment batch job: it locates the
// newest inventory extract, enriches it against the reference workbooks
// and writes the decorated dataset.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"mastermaker/internal/config"
	"mastermaker/internal/enrich"
	"mastermaker/internal/logger"
	"mastermaker/internal/lookup"
	"mastermaker/internal/report"
	"mastermaker/internal/workbook"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file")
	outputPath := flag.String("output", "", "Override output.path from the configuration")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	log := logger.NewLogger(cfg.Logging.Level)
	log.Info("starting estate enrichment run", "config", cfg.String())

	startTime := time.Now()

	// Phase 1: locate and load the newest extract.
	sourceFile, err := workbook.LatestMatching(cfg.Input.Folder, cfg.Input.Prefix)
	if err != nil {
		log.Error("no input extract found", "error", err)
		os.Exit(1)
	}
	log.Info("input extract selected", "file", sourceFile)

	src, err := workbook.Open(sourceFile)
	if err != nil {
		log.Error("failed to open extract", "error", err)
		os.Exit(1)
	}

	records, err := src.ReadSheet(cfg.Input.Sheet)
	src.Close()
	if err != nil {
		log.Error("failed to read extract sheet", "sheet", cfg.Input.Sheet, "error", err)
		os.Exit(1)
	}
	log.Info("extract loaded", "rows", records.Len(), "columns", len(records.Columns))

	// Phase 2: load the lookup tables.
	registry, err := lookup.NewRegistry(cfg.Lookups, log)
	if err != nil {
		log.Error("failed to open lookup workbooks", "error", err)
		os.Exit(1)
	}

	lookups, err := registry.LoadAll()
	registry.Close()
	if err != nil {
		log.Error("failed to load lookup tables", "error", err)
		os.Exit(1)
	}

	// Phase 3: enrich.
	pipeline := enrich.NewPipeline(log)
	result, stats := pipeline.Run(records, lookups)

	// Phase 4: write the decorated dataset.
	if err := workbook.WriteTable(cfg.Output.Path, cfg.Output.Sheet, result); err != nil {
		log.Error("failed to write output workbook", "error", err)
		os.Exit(1)
	}
	log.Info("output written", "file", cfg.Output.Path, "rows", result.Len())

	fmt.Println(report.Render(&report.Summary{
		SourceFile: sourceFile,
		OutputFile: cfg.Output.Path,
		Duration:   time.Since(startTime),
		Stats:      stats,
	}))
}
