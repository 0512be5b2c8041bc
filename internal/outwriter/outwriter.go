// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProjects prints the filtered project list and its year breakdown.
func (ow *OutWriter) WriteProjects(result schema.ProjectsResult, cfg *contract.Config) error {
	return WriteProjectsResult(result, cfg)
}

// WriteBreakdown prints a categorical breakdown.
func (ow *OutWriter) WriteBreakdown(title string, slices []schema.Slice, cfg *contract.Config) error {
	return WriteSlices(title, slices, cfg)
}

// WriteCommits prints the time-filtered and brushed commits.
func (ow *OutWriter) WriteCommits(result schema.CommitsResult, cfg *contract.Config) error {
	return WriteCommitsResult(result, cfg)
}

// WriteFiles prints per-file line counts.
func (ow *OutWriter) WriteFiles(files []schema.FileBar, cfg *contract.Config) error {
	return WriteFileBars(files, cfg)
}

// WriteStats prints the commit summary statistics.
func (ow *OutWriter) WriteStats(stats schema.CommitStats, cfg *contract.Config) error {
	return WriteCommitStats(stats, cfg)
}

// WriteSteps prints the scrollytelling narrative steps.
func (ow *OutWriter) WriteSteps(steps []schema.Step, cfg *contract.Config) error {
	return WriteNarrativeSteps(steps, cfg)
}

// WriteTheme prints the color scheme choices and the active one.
func (ow *OutWriter) WriteTheme(active schema.ColorScheme, cfg *contract.Config) error {
	return WriteColorScheme(active, cfg)
}

// formatWriters bundles one writer per output mode.
type formatWriters struct {
	name    string
	text    func(io.Writer) error
	csv     func(io.Writer) error
	json    func(io.Writer) error
	parquet func(path string) error // nil when the view has no columnar form
}

// dispatch routes an output to the writer of the configured mode.
func dispatch(cfg *contract.Config, fw formatWriters) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, fw.json, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, fw.csv, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if fw.parquet == nil {
			return fmt.Errorf("parquet output is not supported for %s", fw.name)
		}
		if err := fw.parquet(cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		logWrote("Wrote Parquet", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, fw.text, "Wrote table")
	}
	return nil
}
