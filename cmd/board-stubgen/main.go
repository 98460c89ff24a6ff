// Package main provides the CLI entrypoint for board-stubgen.
//
// board-stubgen scans a CircuitPython checkout and writes a Python type stub
// (board.pyi) for every board, plus a metadata.json listing the boards:
//   - Reads ports/*/boards/*/mpconfigboard.mk for the USB identity
//   - Infers pin types from the board's pins.c
//   - Merges generic declarations from stubs/board/__init__.pyi
//
// With no arguments it works on the current directory, expecting the
// CircuitPython checkout in ./circuitpython and writing into ./boards.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"board-stubgen/internal/config"
	"board-stubgen/internal/stubgen"
)

func main() {
	root := flag.String("root", ".", "repository root that relative paths resolve against")
	configPath := flag.String("config", "", "config file (default <root>/"+config.DefaultFilename+" if present)")
	debug := flag.Bool("debug", false, "dump every parsed board to stderr")
	writeConfig := flag.Bool("write-config", false, "write the effective config to <root>/"+config.DefaultFilename+" and exit")
	flag.Parse()

	absRoot, err := filepath.Abs(*root)
	if err != nil {
		log.Fatalf("Error resolving root: %v", err)
	}

	cfg, err := config.Load(absRoot, *configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if *writeConfig {
		path := filepath.Join(absRoot, config.DefaultFilename)
		if err := config.WriteFile(cfg, path); err != nil {
			log.Fatalf("Error writing config: %v", err)
		}

		fmt.Printf("Config written to %s\n", path)

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := stubgen.Options{Progress: os.Stdout}
	if *debug {
		opts.Debug = os.Stderr
	}

	report, err := stubgen.Run(ctx, cfg, opts)
	if err != nil {
		log.Fatalf("Failed to generate board stubs: %v", err)
	}

	for _, d := range report.Diagnostics.All() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d)
	}

	fmt.Printf("✓ Wrote %d board stubs and %s\n", len(report.Stubs), report.MetadataPath)
}
