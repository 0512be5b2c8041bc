package core

import (
	"github.com/huangsam/folio/core/breakdown"
	"github.com/huangsam/folio/core/filter"
	"github.com/huangsam/folio/core/narrative"
	"github.com/huangsam/folio/core/stats"
	"github.com/huangsam/folio/core/timeline"
	"github.com/huangsam/folio/schema"
)

// Selection names a point on the timeline. Step wins over Progress, which
// wins over the cutoff of the filter state. With none set the timeline end
// is used.
type Selection struct {
	Progress *float64
	Step     *int
}

// ProjectsView returns the filtered project list with the year breakdown of
// the search results.
func (d *Dataset) ProjectsView(state filter.FilterState) schema.ProjectsResult {
	return schema.ProjectsResult{
		Title:    schema.ProjectsTitle(len(d.Projects)),
		Query:    state.Query,
		Selected: state.Category,
		Projects: filter.ListView(d.Projects, state),
		Slices:   d.YearBreakdown(state),
	}
}

// YearBreakdown returns the pie slices over the search results, marking the
// selected year.
func (d *Dataset) YearBreakdown(state filter.FilterState) []schema.Slice {
	return breakdown.ByCategory(filter.PieSource(d.Projects, state), state.Category)
}

// Position resolves sel against the timeline.
func (d *Dataset) Position(state filter.FilterState, sel Selection) (timeline.Position, error) {
	switch {
	case sel.Step != nil:
		return d.Timeline.FromStep(*sel.Step)
	case sel.Progress != nil:
		return d.Timeline.FromProgress(*sel.Progress), nil
	case state.Cutoff != nil:
		return d.Timeline.FromCutoff(*state.Cutoff), nil
	default:
		return d.Timeline.End(), nil
	}
}

// CommitsView returns the commits visible at the resolved position, the
// brushed subset and the language breakdown of the brushed lines.
func (d *Dataset) CommitsView(state filter.FilterState, sel Selection) (schema.CommitsResult, error) {
	pos, err := d.Position(state, sel)
	if err != nil {
		return schema.CommitsResult{}, err
	}
	if d.Timeline.Len() > 0 {
		state = state.WithCutoff(pos.Cutoff)
	}

	visible := filter.VisibleCommits(d.Commits(), state)
	selected := filter.SelectedCommits(d.Commits(), state, d.Scatter)
	selectedLines := d.Index.LinesOf(selected)

	return schema.CommitsResult{
		Progress:  pos.Progress,
		Cutoff:    pos.Cutoff,
		Visible:   visible,
		Selected:  selected,
		Selection: schema.SelectionLabel(len(selected)),
		Languages: breakdown.ByLanguage(selectedLines),
		Files:     breakdown.ByFile(d.Index.LinesOf(visible)),
	}, nil
}

// Stats summarizes the commits visible at the resolved position.
func (d *Dataset) Stats(state filter.FilterState, sel Selection) (schema.CommitStats, error) {
	pos, err := d.Position(state, sel)
	if err != nil {
		return schema.CommitStats{}, err
	}
	visible := d.Timeline.Filtered(pos)
	return stats.Summarize(d.Index.LinesOf(visible), visible), nil
}

// Steps returns the narrative steps in datetime order.
func (d *Dataset) Steps() []schema.Step {
	return narrative.Steps(d.Index)
}

// Tooltip returns the tooltip of a commit, or false when the id is unknown.
func (d *Dataset) Tooltip(id string) (schema.Tooltip, bool) {
	for _, c := range d.Commits() {
		if c.ID == id {
			return narrative.Tooltip(c), true
		}
	}
	return schema.Tooltip{}, false
}
