package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/folio/core/breakdown"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/parquet"
	"github.com/huangsam/folio/schema"
	"github.com/samber/lo"
)

// DateTimeFormat is the layout of commit datetimes in table and CSV output.
const DateTimeFormat = "2006-01-02 15:04 -07:00"

// WriteCommitsResult outputs the commits view, dispatching based on the output format configured.
func WriteCommitsResult(result schema.CommitsResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(cfg, formatWriters{
		name: "commits",
		text: func(w io.Writer) error { return writeCommitsTable(w, result, cfg) },
		csv:  func(w io.Writer) error { return writeCommitsCSV(w, result, fmtFloat) },
		json: func(w io.Writer) error { return writeJSON(w, result) },
		parquet: func(path string) error {
			return parquet.WriteCommitsParquet(result.Visible, path)
		},
	})
}

// WriteFileBars outputs per-file line counts, dispatching based on the output format configured.
func WriteFileBars(files []schema.FileBar, cfg *contract.Config) error {
	return dispatch(cfg, formatWriters{
		name: "files",
		text: func(w io.Writer) error { return writeFilesTable(w, files, cfg) },
		csv:  func(w io.Writer) error { return writeFilesCSV(w, files) },
		json: func(w io.Writer) error { return writeJSON(w, files) },
	})
}

// writeCommitsTable generates and writes the human-readable commits view.
func writeCommitsTable(w io.Writer, result schema.CommitsResult, cfg *contract.Config) error {
	title := fmt.Sprintf("Commits until %s (%s)", formatCutoff(result.Cutoff), breakdown.FormatPercent(result.Progress/100))
	if _, err := fmt.Fprintln(w, heading(cfg, "🕒", title)); err != nil {
		return err
	}

	selected := lo.KeyBy(result.Selected, func(c schema.CommitSummary) string { return c.ID })
	shown := result.Visible[:limitCount(len(result.Visible), cfg.ResultLimit)]
	rows := make([][]string, 0, len(shown))
	for _, c := range shown {
		_, isSelected := selected[c.ID]
		rows = append(rows, []string{
			contract.SelectedLabel(c.ID, isSelected, cfg.UseColors),
			c.Datetime.Format(DateTimeFormat),
			c.Author,
			strconv.Itoa(c.TotalLines),
		})
	}
	if err := renderTable(w, []string{"Commit", "Datetime", "Author", "Lines"}, rows); err != nil {
		return err
	}
	if len(shown) < len(result.Visible) {
		if _, err := fmt.Fprintf(w, "Showing %d of %d commits\n", len(shown), len(result.Visible)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, result.Selection); err != nil {
		return err
	}
	if len(result.Languages) == 0 {
		return nil
	}
	return writeSlicesTable(w, result.Languages, cfg)
}

// writeFilesTable writes the per-file line counts as a table.
func writeFilesTable(w io.Writer, files []schema.FileBar, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, heading(cfg, "📄", fmt.Sprintf("%d files", len(files)))); err != nil {
		return err
	}
	nameWidth := GetMaxTextWidth(cfg, 30)
	shown := files[:limitCount(len(files), cfg.ResultLimit)]
	rows := make([][]string, 0, len(shown))
	for _, f := range shown {
		rows = append(rows, []string{
			contract.TruncatePath(f.Name, nameWidth),
			strconv.Itoa(f.Lines),
			formatTypes(f.Types),
		})
	}
	return renderTable(w, []string{"File", "Lines", "Types"}, rows)
}

// writeCommitsCSV writes the visible commits in CSV format with a selection column.
func writeCommitsCSV(w io.Writer, result schema.CommitsResult, fmtFloat func(float64) string) error {
	selected := lo.KeyBy(result.Selected, func(c schema.CommitSummary) string { return c.ID })
	header := []string{"id", "url", "author", "datetime", "hour_frac", "total_lines", "selected"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range result.Visible {
			_, isSelected := selected[c.ID]
			rec := []string{
				c.ID,
				c.URL,
				c.Author,
				c.Datetime.Format(time.RFC3339),
				fmtFloat(c.HourFrac),
				strconv.Itoa(c.TotalLines),
				strconv.FormatBool(isSelected),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeFilesCSV writes the per-file line counts in CSV format.
func writeFilesCSV(w io.Writer, files []schema.FileBar) error {
	return writeCSVWithHeader(w, []string{"file", "lines", "types"}, func(cw *csv.Writer) error {
		for _, f := range files {
			if err := cw.Write([]string{f.Name, strconv.Itoa(f.Lines), formatTypes(f.Types)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// formatTypes renders type counts as "js 3|html 1".
func formatTypes(types []schema.TypeCount) string {
	parts := lo.Map(types, func(t schema.TypeCount, _ int) string {
		return fmt.Sprintf("%s %d", t.Type, t.Lines)
	})
	return strings.Join(parts, "|")
}

// formatCutoff renders the cutoff, or a dash when the timeline is empty.
func formatCutoff(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateTimeFormat)
}
