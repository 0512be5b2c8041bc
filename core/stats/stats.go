// Package stats computes the summary tiles of the commit history.
package stats

import (
	"math"
	"time"

	"github.com/huangsam/folio/schema"
)

// Day periods as shown in the most-active-period tile.
const (
	Morning   = "in the morning"
	Afternoon = "in the afternoon"
	Evening   = "in the evening"
	Night     = "at night"
)

// Summarize computes the commit stats tiles from the loaded lines and commits.
func Summarize(lines []schema.LineRecord, commits []schema.CommitSummary) schema.CommitStats {
	st := schema.CommitStats{
		TotalLOC: len(lines),
		Commits:  len(commits),
	}

	// longest line number per file, in first-seen file order
	var files []string
	longest := make(map[string]int)
	periods := make(map[string]int)
	var periodOrder []string

	for _, l := range lines {
		if _, ok := longest[l.File]; !ok {
			files = append(files, l.File)
		}
		longest[l.File] = max(longest[l.File], l.Line)
		st.MaxDepth = max(st.MaxDepth, l.Depth)

		p := DayPeriod(l.Datetime)
		if _, ok := periods[p]; !ok {
			periodOrder = append(periodOrder, p)
		}
		periods[p]++
	}

	st.Files = len(files)
	if len(files) > 0 {
		sum := 0
		for _, f := range files {
			sum += longest[f]
			if longest[f] > st.LongestFileLines {
				st.LongestFile = f
				st.LongestFileLines = longest[f]
			}
		}
		avg := int(math.Round(float64(sum) / float64(len(files))))
		st.AvgFileLength = &avg
	}

	best := 0
	for _, p := range periodOrder {
		if periods[p] > best {
			best = periods[p]
			st.MostActivePeriod = p
		}
	}
	return st
}

// DayPeriod names the part of the day t falls in, in t's own zone.
func DayPeriod(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 6 && h < 12:
		return Morning
	case h >= 12 && h < 18:
		return Afternoon
	case h >= 18 && h < 21:
		return Evening
	default:
		return Night
	}
}
