package server

import (
	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/core/filter"
	"github.com/huangsam/folio/schema"
)

// FilterParams are the selection query parameters shared by the API and chart routes.
type FilterParams struct {
	Query    string   `form:"q"`
	Year     *string  `form:"year"`
	Brush    string   `form:"brush"`
	Progress *float64 `form:"progress"`
	Step     *int     `form:"step"`
}

// TooltipParams names a commit in the route.
type TooltipParams struct {
	ID string `uri:"id" binding:"required"`
}

// PieParams selects the breakdown drawn by the pie chart.
type PieParams struct {
	FilterParams
	Source string `form:"source"`
}

// ThemeParams is the body of a theme update.
type ThemeParams struct {
	ColorScheme string `json:"colorScheme"`
}

// Every request builds its own state from its parameters.
func (p *FilterParams) state() (filter.FilterState, error) {
	s := filter.FilterState{}.WithQuery(p.Query)
	if p.Year != nil && *p.Year != "" {
		s = s.ToggleCategory(*p.Year)
	}
	brush, err := filter.ParseBrush(p.Brush)
	if err != nil {
		return s, invalid("invalid brush: %w", err)
	}
	if brush != nil {
		s = s.WithBrush(*brush)
	}
	return s, nil
}

func (p *FilterParams) selection() (core.Selection, error) {
	if p.Progress != nil && !schema.ValidProgress(*p.Progress) {
		return core.Selection{}, invalid("progress must be between %d and %d", schema.MinProgress, schema.MaxProgress)
	}
	if p.Step != nil && *p.Step < 0 {
		return core.Selection{}, invalid("step cannot be negative")
	}
	return core.Selection{Progress: p.Progress, Step: p.Step}, nil
}
