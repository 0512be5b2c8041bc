package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

// statRow is one labeled value of the stats summary.
type statRow struct {
	Label string
	Value string
}

// WriteCommitStats outputs the summary statistics, dispatching based on the output format configured.
func WriteCommitStats(stats schema.CommitStats, cfg *contract.Config) error {
	return dispatch(cfg, formatWriters{
		name: "stats",
		text: func(w io.Writer) error {
			if _, err := fmt.Fprintln(w, heading(cfg, "📊", "Summary")); err != nil {
				return err
			}
			rows := [][]string{}
			for _, r := range statRows(stats, true) {
				rows = append(rows, []string{r.Label, r.Value})
			}
			return renderTable(w, []string{"Stat", "Value"}, rows)
		},
		csv: func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"stat", "value"}, func(cw *csv.Writer) error {
				for _, r := range statRows(stats, false) {
					if err := cw.Write([]string{r.Label, r.Value}); err != nil {
						return err
					}
				}
				return nil
			})
		},
		json: func(w io.Writer) error { return writeJSON(w, stats) },
	})
}

// statRows lists the stats in display order. Human rows group digits.
func statRows(stats schema.CommitStats, human bool) []statRow {
	num := strconv.Itoa
	if human {
		num = func(n int) string { return humanize.Comma(int64(n)) }
	}

	avg := "-"
	if stats.AvgFileLength != nil {
		avg = num(*stats.AvgFileLength)
	}
	longest := "-"
	if stats.LongestFile != "" {
		longest = fmt.Sprintf("%s (%s lines)", stats.LongestFile, num(stats.LongestFileLines))
		if !human {
			longest = stats.LongestFile
		}
	}
	period := stats.MostActivePeriod
	if period == "" {
		period = "-"
	}

	return []statRow{
		{"Total LOC", num(stats.TotalLOC)},
		{"Commits", num(stats.Commits)},
		{"Files", num(stats.Files)},
		{"Longest file", longest},
		{"Average file length", avg},
		{"Max depth", num(stats.MaxDepth)},
		{"Most active time", period},
	}
}
