package filter

import (
	"time"

	"github.com/huangsam/folio/core/scale"
	"github.com/huangsam/folio/schema"
)

// FilterState is the interactive selection: search query, selected category,
// brush rectangle and time cutoff. It is a value; every update returns a new one.
type FilterState struct {
	Query    string
	Category *string
	Brush    *schema.Rect
	Cutoff   *time.Time
}

// WithQuery returns a state with the search query replaced. The category survives.
func (s FilterState) WithQuery(q string) FilterState {
	s.Query = q
	return s
}

// ToggleCategory selects category, or clears the selection when it is already selected.
func (s FilterState) ToggleCategory(category string) FilterState {
	if s.Category != nil && *s.Category == category {
		s.Category = nil
		return s
	}
	c := category
	s.Category = &c
	return s
}

// ClearCategory returns a state with no category selected.
func (s FilterState) ClearCategory() FilterState {
	s.Category = nil
	return s
}

// WithBrush returns a state with the brush rectangle replaced.
func (s FilterState) WithBrush(rect schema.Rect) FilterState {
	r := rect
	s.Brush = &r
	return s
}

// ClearBrush returns a state with no brush.
func (s FilterState) ClearBrush() FilterState {
	s.Brush = nil
	return s
}

// WithCutoff returns a state with the time cutoff replaced.
func (s FilterState) WithCutoff(t time.Time) FilterState {
	c := t
	s.Cutoff = &c
	return s
}

// ListView is what the project list shows: text and category filters intersected.
func ListView(records []schema.ProjectRecord, s FilterState) []schema.ProjectRecord {
	return FilterByCategory(FilterByText(records, s.Query), s.Category)
}

// PieSource is what the pie chart is computed from while searching: the text
// filter alone, so every category matching the query keeps its slice.
func PieSource(records []schema.ProjectRecord, s FilterState) []schema.ProjectRecord {
	return FilterByText(records, s.Query)
}

// VisibleCommits applies the time cutoff, when one is set.
func VisibleCommits(commits []schema.CommitSummary, s FilterState) []schema.CommitSummary {
	if s.Cutoff == nil {
		return append([]schema.CommitSummary{}, commits...)
	}
	return FilterByTimeCutoff(commits, *s.Cutoff)
}

// SelectedCommits applies the time cutoff and then the brush.
func SelectedCommits(commits []schema.CommitSummary, s FilterState, proj scale.Projector) []schema.CommitSummary {
	return FilterByBrush(VisibleCommits(commits, s), s.Brush, proj)
}
