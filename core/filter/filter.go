// Package filter has the pure predicates behind search, facet, brush and
// time-slider selection, and their composition over a FilterState.
package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/folio/core/scale"
	"github.com/huangsam/folio/schema"
	"github.com/samber/lo"
)

// fieldSeparator joins field values for text search. It cannot appear inside a field.
const fieldSeparator = "\x00"

// IsInBrush reports whether p lies inside rect, bounds inclusive on both axes.
// A nil rect contains nothing. Either diagonal of the rectangle may be given.
func IsInBrush(p schema.Point, rect *schema.Rect) bool {
	if rect == nil {
		return false
	}
	x0, x1 := minMax(rect.From.X, rect.To.X)
	y0, y1 := minMax(rect.From.Y, rect.To.Y)
	return x0 <= p.X && p.X <= x1 && y0 <= p.Y && p.Y <= y1
}

// FilterByBrush returns the commits whose projected position lies inside rect.
// A nil rect or projector selects nothing.
func FilterByBrush(commits []schema.CommitSummary, rect *schema.Rect, proj scale.Projector) []schema.CommitSummary {
	if rect == nil || proj == nil {
		return []schema.CommitSummary{}
	}
	return lo.Filter(commits, func(c schema.CommitSummary, _ int) bool {
		return IsInBrush(proj.Project(c), rect)
	})
}

// FilterByText returns the records with query as a case-insensitive substring
// of their joined field values. A blank query matches everything.
func FilterByText(records []schema.ProjectRecord, query string) []schema.ProjectRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(records)
	}
	return lo.Filter(records, func(r schema.ProjectRecord, _ int) bool {
		return strings.Contains(strings.ToLower(SearchText(r)), q)
	})
}

// SearchText joins every field value of a record for text search.
// Extra fields follow the known ones in key order.
func SearchText(r schema.ProjectRecord) string {
	values := []string{r.Title, r.Image, r.Description, r.Year}
	keys := lo.Keys(r.Extra)
	slices.Sort(keys)
	for _, k := range keys {
		values = append(values, fmt.Sprint(r.Extra[k]))
	}
	return strings.Join(values, fieldSeparator)
}

// FilterByCategory returns the records whose year equals category.
// A nil category matches everything.
func FilterByCategory(records []schema.ProjectRecord, category *string) []schema.ProjectRecord {
	if category == nil {
		return slices.Clone(records)
	}
	return lo.Filter(records, func(r schema.ProjectRecord, _ int) bool {
		return r.Year == *category
	})
}

// FilterByTimeCutoff returns the commits at or before cutoff.
func FilterByTimeCutoff(commits []schema.CommitSummary, cutoff time.Time) []schema.CommitSummary {
	return lo.Filter(commits, func(c schema.CommitSummary, _ int) bool {
		return !c.Datetime.After(cutoff)
	})
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
