// Package parquet provides data structures and functions for exporting folio
// commit and line data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/folio/schema"
	"github.com/parquet-go/parquet-go"
)

// CommitRow represents one aggregated commit.
type CommitRow struct {
	// CommitID is the commit identifier
	CommitID string `parquet:"commit_id,snappy"`

	// URL is the canonical commit link
	URL string `parquet:"url,snappy"`

	// Author is the commit author (nullable)
	Author *string `parquet:"author,optional,snappy"`

	// Datetime is the commit instant (stored as TIMESTAMP with nanosecond precision)
	Datetime time.Time `parquet:"datetime,snappy"`

	// Timezone is the original UTC offset of the commit
	Timezone string `parquet:"timezone,snappy"`

	// HourFrac is the hour of day with fractional minutes
	HourFrac float64 `parquet:"hour_frac,snappy"`

	// TotalLines is the number of line records of the commit
	TotalLines int32 `parquet:"total_lines,snappy"`
}

// LineRow represents one line record of the source dataset.
type LineRow struct {
	CommitID string    `parquet:"commit_id,snappy"`
	File     string    `parquet:"file,snappy"`
	Line     int32     `parquet:"line,snappy"`
	Depth    int32     `parquet:"depth,snappy"`
	Length   int32     `parquet:"length,snappy"`
	Type     string    `parquet:"type,snappy"`
	Author   string    `parquet:"author,snappy"`
	Datetime time.Time `parquet:"datetime,snappy"`
}

// ProjectRow represents one portfolio project.
type ProjectRow struct {
	Title       string `parquet:"title,snappy"`
	Image       string `parquet:"image,snappy"`
	Description string `parquet:"description,snappy"`
	Year        string `parquet:"year,snappy"`
}

// SliceRow represents one slice of a categorical breakdown.
type SliceRow struct {
	Label      string  `parquet:"label,snappy"`
	Count      int32   `parquet:"count,snappy"`
	Proportion float64 `parquet:"proportion,snappy"`
	Selected   bool    `parquet:"selected,snappy"`
}

// ProjectRows converts project records into Parquet rows.
func ProjectRows(projects []schema.ProjectRecord) []ProjectRow {
	rows := make([]ProjectRow, len(projects))
	for i, p := range projects {
		rows[i] = ProjectRow{Title: p.Title, Image: p.Image, Description: p.Description, Year: p.Year}
	}
	return rows
}

// SliceRows converts breakdown slices into Parquet rows.
func SliceRows(slices []schema.Slice) []SliceRow {
	rows := make([]SliceRow, len(slices))
	for i, s := range slices {
		rows[i] = SliceRow{Label: s.Label, Count: int32(s.Count), Proportion: s.Proportion, Selected: s.Selected}
	}
	return rows
}

// CommitRows converts commit summaries into Parquet rows.
func CommitRows(commits []schema.CommitSummary) []CommitRow {
	rows := make([]CommitRow, len(commits))
	for i, c := range commits {
		var author *string
		if c.Author != "" {
			a := c.Author
			author = &a
		}
		rows[i] = CommitRow{
			CommitID:   c.ID,
			URL:        c.URL,
			Author:     author,
			Datetime:   c.Datetime,
			Timezone:   c.Timezone,
			HourFrac:   c.HourFrac,
			TotalLines: int32(c.TotalLines),
		}
	}
	return rows
}

// LineRows converts line records into Parquet rows.
func LineRows(lines []schema.LineRecord) []LineRow {
	rows := make([]LineRow, len(lines))
	for i, l := range lines {
		rows[i] = LineRow{
			CommitID: l.Commit,
			File:     l.File,
			Line:     int32(l.Line),
			Depth:    int32(l.Depth),
			Length:   int32(l.Length),
			Type:     l.Type,
			Author:   l.Author,
			Datetime: l.Datetime,
		}
	}
	return rows
}

// Write writes rows of any Parquet-tagged struct type to w.
func Write[T any](w io.Writer, rows []T) error {
	// The schema is automatically derived from the struct tags
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteFile writes rows to a Parquet file at outputPath.
func WriteFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteCommitsParquet writes commit summaries to a Parquet file.
func WriteCommitsParquet(commits []schema.CommitSummary, outputPath string) error {
	return WriteFile(CommitRows(commits), outputPath)
}

// WriteLinesParquet writes line records to a Parquet file.
func WriteLinesParquet(lines []schema.LineRecord, outputPath string) error {
	return WriteFile(LineRows(lines), outputPath)
}
