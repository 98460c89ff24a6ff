package stubgen

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"board-stubgen/internal/boards"
	"board-stubgen/internal/config"
	"board-stubgen/internal/diagnostic"
	"board-stubgen/internal/gen"
	"board-stubgen/internal/metadata"
	"board-stubgen/internal/pins"
	"board-stubgen/internal/stub"
)

// Options tune a run beyond the configuration file.
type Options struct {
	// Progress receives one line per processed board. Nil discards.
	Progress io.Writer
	// Debug receives a dump of every board and pin table. Nil disables.
	Debug io.Writer
}

// Report summarizes a completed run.
type Report struct {
	// Records holds the metadata written, in file order.
	Records []metadata.Record
	// Stubs holds the paths of written stub files.
	Stubs []string
	// MetadataPath is the metadata.json written.
	MetadataPath string
	// Diagnostics collects skipped boards and generic stub warnings.
	Diagnostics diagnostic.Diagnostics
}

// Run generates every board stub and the metadata file described by cfg.
func Run(ctx context.Context, cfg config.Config, opts Options) (*Report, error) {
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	report := &Report{MetadataPath: cfg.MetadataPath()}

	generic, diags, err := stub.NewParser(stub.DefinitionHeader).ParseFile(cfg.GenericStubPath())
	if err != nil {
		return report, err
	}

	report.Diagnostics.Merge(diags)

	if _, err := os.Stat(cfg.CircuitPythonPath()); err != nil {
		return report, fmt.Errorf("reading CircuitPython checkout: %w", err)
	}

	cpy := os.DirFS(cfg.CircuitPythonPath())

	found, diags, err := boards.Scan(cpy, cfg.Policy())
	report.Diagnostics.Merge(diags)

	if err != nil {
		return report, fmt.Errorf("scanning boards: %w", err)
	}

	extractor := pins.NewExtractor(pins.TableEntry, generic)
	generator := gen.NewGenerator(gen.GeneratorConfig{SiteURL: cfg.SiteURL})

	var collector metadata.Collector

	for _, board := range found {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fmt.Fprintln(progress, board.ConfigPath)

		res, err := extractor.ExtractFile(cpy, board.PinsPath)
		if err != nil {
			return report, err
		}

		if opts.Debug != nil {
			spew.Fdump(opts.Debug, board, res)
		}

		c := board.Config
		fmt.Fprintf(progress, "%s:%s %s, %s\n", c.VID, c.PID, c.Manufacturer, c.Product)

		file, err := generator.Generate(board, res)
		if err != nil {
			return report, err
		}

		written, err := gen.WriteFile(file, cfg.OutputPath())
		if err != nil {
			return report, err
		}

		report.Stubs = append(report.Stubs, written)
		collector.Add(metadata.FromBoard(board))
	}

	report.Records = collector.Records(cfg.MetadataOrder)

	if err := os.MkdirAll(cfg.OutputPath(), 0o755); err != nil {
		return report, fmt.Errorf("creating output directory: %w", err)
	}

	if err := metadata.WriteFile(report.MetadataPath, report.Records); err != nil {
		return report, err
	}

	return report, nil
}
