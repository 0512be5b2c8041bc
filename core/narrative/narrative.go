// Package narrative writes the scrollytelling text for each commit and the hover tooltip.
package narrative

import (
	"fmt"

	"github.com/huangsam/folio/core/agg"
	"github.com/huangsam/folio/schema"
)

// Layouts used for human-readable commit timestamps.
const (
	FullDateLayout  = "Monday, January 2, 2006"
	ShortTimeLayout = "3:04 PM"
	StepLayout      = FullDateLayout + " at " + ShortTimeLayout
)

// Steps returns one narrative step per commit in datetime order.
func Steps(idx *agg.Index) []schema.Step {
	commits := idx.SortedByDatetime()
	steps := make([]schema.Step, 0, len(commits))
	for i, c := range commits {
		steps = append(steps, schema.Step{
			Index:    i,
			CommitID: c.ID,
			URL:      c.URL,
			Datetime: c.Datetime,
			Text:     StepText(c, i == 0, idx.FileCount(c.ID)),
		})
	}
	return steps
}

// StepText is the sentence shown for one commit.
func StepText(c schema.CommitSummary, first bool, files int) string {
	made := "another glorious commit"
	if first {
		made = "my first commit, and it was glorious"
	}
	return fmt.Sprintf(
		"On %s, I made %s. I edited %d lines across %d files. Then I looked over all I had made, and I saw that it was very good.",
		c.Datetime.Format(StepLayout), made, c.TotalLines, files,
	)
}

// Tooltip returns the hover details of a commit.
func Tooltip(c schema.CommitSummary) schema.Tooltip {
	tip := schema.Tooltip{
		Link:   c.URL,
		ID:     c.ID,
		Author: c.Author,
		Lines:  c.TotalLines,
	}
	if !c.Datetime.IsZero() {
		tip.Date = c.Datetime.Format(FullDateLayout)
		tip.Time = c.Datetime.Format(ShortTimeLayout)
	}
	if tip.Author == "" {
		tip.Author = "Unknown"
	}
	return tip
}
