// Package agg groups line-level records into one summary per commit.
package agg

import (
	"slices"
	"time"

	"github.com/huangsam/folio/schema"
	"github.com/samber/lo"
)

// Index is the result of aggregating line records by commit.
// Summaries are plain values; their constituent lines are kept in a
// separate commit-id lookup table owned by the index.
type Index struct {
	commits []schema.CommitSummary
	lines   map[string][]schema.LineRecord
}

// Aggregate groups lines by commit identifier in first-seen order. The first
// line of each group supplies the representative author and timestamps.
// Every input line ends up in exactly one group.
func Aggregate(lines []schema.LineRecord, urlBase string) *Index {
	idx := &Index{lines: make(map[string][]schema.LineRecord)}

	var order []string
	for _, line := range lines {
		if _, seen := idx.lines[line.Commit]; !seen {
			order = append(order, line.Commit)
		}
		idx.lines[line.Commit] = append(idx.lines[line.Commit], line)
	}

	idx.commits = make([]schema.CommitSummary, 0, len(order))
	for _, id := range order {
		group := idx.lines[id]
		idx.commits = append(idx.commits, summarize(id, urlBase, group))
	}
	return idx
}

// summarize builds the summary of one commit group.
func summarize(id, urlBase string, group []schema.LineRecord) schema.CommitSummary {
	first := group[0]
	return schema.CommitSummary{
		ID:         id,
		URL:        urlBase + id,
		Author:     first.Author,
		Date:       first.Date,
		Time:       first.Time,
		Timezone:   first.Timezone,
		Datetime:   first.Datetime,
		HourFrac:   HourFrac(first.Datetime),
		TotalLines: len(group),
	}
}

// HourFrac returns hours plus minutes/60 of t in its own zone.
func HourFrac(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// Commits returns the summaries in first-seen order.
func (idx *Index) Commits() []schema.CommitSummary {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.commits)
}

// SortedByDatetime returns the summaries ordered by datetime. Ties keep first-seen order.
func (idx *Index) SortedByDatetime() []schema.CommitSummary {
	sorted := idx.Commits()
	slices.SortStableFunc(sorted, func(a, b schema.CommitSummary) int {
		return a.Datetime.Compare(b.Datetime)
	})
	return sorted
}

// Lines returns the constituent lines of a commit, or nil for an unknown id.
func (idx *Index) Lines(id string) []schema.LineRecord {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.lines[id])
}

// LinesOf flattens the constituent lines of the given commits, in commit order.
func (idx *Index) LinesOf(commits []schema.CommitSummary) []schema.LineRecord {
	if idx == nil {
		return nil
	}
	return lo.FlatMap(commits, func(c schema.CommitSummary, _ int) []schema.LineRecord {
		return idx.lines[c.ID]
	})
}

// AllLines returns every line of the index in commit order.
func (idx *Index) AllLines() []schema.LineRecord {
	return idx.LinesOf(idx.Commits())
}

// FileCount returns the number of distinct files touched by a commit.
func (idx *Index) FileCount(id string) int {
	if idx == nil {
		return 0
	}
	return len(lo.UniqBy(idx.lines[id], func(l schema.LineRecord) string { return l.File }))
}

// Len returns the number of commits.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.commits)
}
