package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/folio/core/breakdown"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/parquet"
	"github.com/huangsam/folio/schema"
)

// WriteProjectsResult outputs the project list, dispatching based on the output format configured.
func WriteProjectsResult(result schema.ProjectsResult, cfg *contract.Config) error {
	return dispatch(cfg, formatWriters{
		name: "projects",
		text: func(w io.Writer) error { return writeProjectsTable(w, result, cfg) },
		csv:  func(w io.Writer) error { return writeProjectsCSV(w, result.Projects) },
		json: func(w io.Writer) error { return writeJSON(w, result) },
		parquet: func(path string) error {
			return parquet.WriteFile(parquet.ProjectRows(result.Projects), path)
		},
	})
}

// WriteSlices outputs a categorical breakdown, dispatching based on the output format configured.
func WriteSlices(title string, slices []schema.Slice, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(cfg, formatWriters{
		name: "breakdown",
		text: func(w io.Writer) error {
			if _, err := fmt.Fprintln(w, heading(cfg, "🥧", title)); err != nil {
				return err
			}
			return writeSlicesTable(w, slices, cfg)
		},
		csv: func(w io.Writer) error { return writeSlicesCSV(w, slices, fmtFloat) },
		json: func(w io.Writer) error {
			return writeJSON(w, struct {
				Title  string         `json:"title"`
				Slices []schema.Slice `json:"slices"`
			}{title, slices})
		},
		parquet: func(path string) error {
			return parquet.WriteFile(parquet.SliceRows(slices), path)
		},
	})
}

// writeProjectsTable generates and writes the human-readable project list and legend.
func writeProjectsTable(w io.Writer, result schema.ProjectsResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, heading(cfg, "📁", result.Title)); err != nil {
		return err
	}

	shown := result.Projects[:limitCount(len(result.Projects), cfg.ResultLimit)]
	descWidth := GetMaxTextWidth(cfg, 40)
	rows := make([][]string, 0, len(shown))
	for i, p := range shown {
		selected := result.Selected != nil && *result.Selected == p.Year
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Title,
			contract.SelectedLabel(p.Year, selected, cfg.UseColors),
			contract.TruncateText(p.Description, descWidth),
		})
	}
	if err := renderTable(w, []string{"#", "Title", "Year", "Description"}, rows); err != nil {
		return err
	}

	if len(shown) < len(result.Projects) {
		if _, err := fmt.Fprintf(w, "Showing %d of %d projects\n", len(shown), len(result.Projects)); err != nil {
			return err
		}
	}
	if result.Query != "" {
		if _, err := fmt.Fprintf(w, "Search: %q\n", result.Query); err != nil {
			return err
		}
	}
	return writeSlicesTable(w, result.Slices, cfg)
}

// writeSlicesTable writes slices with counts and shares as a table.
func writeSlicesTable(w io.Writer, slices []schema.Slice, cfg *contract.Config) error {
	rows := make([][]string, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, []string{
			contract.SelectedLabel(s.Label, s.Selected, cfg.UseColors),
			strconv.Itoa(s.Count),
			breakdown.FormatPercent(s.Proportion),
		})
	}
	return renderTable(w, []string{"Label", "Count", "Share"}, rows)
}

// writeProjectsCSV writes the projects in CSV format.
func writeProjectsCSV(w io.Writer, projects []schema.ProjectRecord) error {
	return writeCSVWithHeader(w, []string{"title", "image", "description", "year"}, func(cw *csv.Writer) error {
		for _, p := range projects {
			if err := cw.Write([]string{p.Title, p.Image, p.Description, p.Year}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSlicesCSV writes the slices in CSV format.
func writeSlicesCSV(w io.Writer, slices []schema.Slice, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"label", "count", "proportion", "selected"}, func(cw *csv.Writer) error {
		for _, s := range slices {
			rec := []string{s.Label, strconv.Itoa(s.Count), fmtFloat(s.Proportion), strconv.FormatBool(s.Selected)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
