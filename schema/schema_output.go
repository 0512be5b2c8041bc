package schema

import (
	"fmt"
	"time"
)

// ProjectsResult is the projects page after filtering: the list view and the pie beside it.
type ProjectsResult struct {
	Title    string          `json:"title"`
	Query    string          `json:"query"`
	Selected *string         `json:"selected"`
	Projects []ProjectRecord `json:"projects"`
	Slices   []Slice         `json:"slices"`
}

// CommitsResult is the meta page at a given slider position and brush.
type CommitsResult struct {
	Progress  float64         `json:"progress"`
	Cutoff    time.Time       `json:"cutoff"`
	Visible   []CommitSummary `json:"visible"`
	Selected  []CommitSummary `json:"selected"`
	Selection string          `json:"selection"`
	Languages []Slice         `json:"languages"`
	Files     []FileBar       `json:"files"`
}

// ProjectsTitle returns the heading of the project list, e.g. "3 Projects".
func ProjectsTitle(count int) string {
	label := "Projects"
	if count == 1 {
		label = "Project"
	}
	return fmt.Sprintf("%d %s", count, label)
}

// SelectionLabel returns the brush selection counter, e.g. "No commits selected".
func SelectionLabel(count int) string {
	if count == 0 {
		return "No commits selected"
	}
	return fmt.Sprintf("%d commits selected", count)
}
