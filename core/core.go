// Package core has the dataset facade and the entry points of each command.
package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/internal/outwriter"
	"github.com/huangsam/folio/internal/parquet"
	"github.com/huangsam/folio/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// selectionOf returns the timeline selection configured by flags.
func selectionOf(cfg *contract.Config) Selection {
	return Selection{Progress: cfg.Progress, Step: cfg.Step}
}

// ExecuteProjects prints the filtered project list with its year legend.
func ExecuteProjects(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	ds := LoadDataset(cfg, mgr)
	return outwriter.NewOutWriter().WriteProjects(ds.ProjectsView(cfg.FilterState()), cfg)
}

// ExecuteBreakdown prints the year breakdown of the search results.
func ExecuteBreakdown(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	ds := LoadDataset(cfg, mgr)
	slices := ds.YearBreakdown(cfg.FilterState())
	title := schema.ProjectsTitle(len(ds.Projects)) + " by year"
	return outwriter.NewOutWriter().WriteBreakdown(title, slices, cfg)
}

// ExecuteCommits prints the commits visible at the configured position.
func ExecuteCommits(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	ds := LoadDataset(cfg, mgr)
	result, err := ds.CommitsView(cfg.FilterState(), selectionOf(cfg))
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCommits(result, cfg)
}

// ExecuteFiles prints the per-file line counts of the visible commits.
func ExecuteFiles(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	ds := LoadDataset(cfg, mgr)
	result, err := ds.CommitsView(cfg.FilterState(), selectionOf(cfg))
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteFiles(result.Files, cfg)
}

// ExecuteStats prints the summary statistics of the visible commits.
func ExecuteStats(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	ds := LoadDataset(cfg, mgr)
	summary, err := ds.Stats(cfg.FilterState(), selectionOf(cfg))
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStats(summary, cfg)
}

// ExecuteSteps prints the narrative steps.
func ExecuteSteps(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	ds := LoadDataset(cfg, mgr)
	return outwriter.NewOutWriter().WriteSteps(ds.Steps(), cfg)
}

// ExecuteThemeGet prints the stored color scheme.
func ExecuteThemeGet(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	return outwriter.NewOutWriter().WriteTheme(iocache.GetColorScheme(mgr), cfg)
}

// ExecuteThemeSet stores a color scheme and prints the result.
func ExecuteThemeSet(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, scheme schema.ColorScheme) error {
	if err := iocache.SetColorScheme(mgr, scheme); err != nil {
		return err
	}
	return ExecuteThemeGet(ctx, cfg, mgr)
}

// Export file names written by ExecuteExport.
const (
	ExportProjectsFile = "projects.parquet"
	ExportCommitsFile  = "commits.parquet"
	ExportLinesFile    = "lines.parquet"
)

// ExecuteExport writes projects, commits and lines as Parquet files into dir.
func ExecuteExport(_ context.Context, cfg *contract.Config, mgr contract.StoreManager, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	ds := LoadDataset(cfg, mgr)

	if err := parquet.WriteFile(parquet.ProjectRows(ds.Projects), filepath.Join(dir, ExportProjectsFile)); err != nil {
		return err
	}
	if err := parquet.WriteCommitsParquet(ds.Commits(), filepath.Join(dir, ExportCommitsFile)); err != nil {
		return err
	}
	if err := parquet.WriteLinesParquet(ds.Lines, filepath.Join(dir, ExportLinesFile)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stderr, "💾 Exported %d projects, %d commits and %d lines to %s\n",
		len(ds.Projects), ds.Index.Len(), len(ds.Lines), dir)
	return nil
}
