// Package timeline keeps the time slider and the narrative scroll position in sync.
// Both drive the same cutoff; every driver returns the slider progress and the
// cutoff together so neither control can show a value the other disagrees with.
package timeline

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/huangsam/folio/core/filter"
	"github.com/huangsam/folio/core/scale"
	"github.com/huangsam/folio/schema"
)

// ErrStepOutOfRange is returned when a scroll step has no matching commit.
var ErrStepOutOfRange = errors.New("step out of range")

// Position is the synchronized state of both controls.
type Position struct {
	Progress float64   `json:"progress"`
	Cutoff   time.Time `json:"cutoff"`
}

// Timeline maps between slider progress, scroll steps and cutoff datetimes.
type Timeline struct {
	commits []schema.CommitSummary
	scale   scale.Time
}

// New builds a timeline over commits sorted by datetime. Input order is
// not trusted; the commits are sorted stably by datetime.
func New(commits []schema.CommitSummary) *Timeline {
	sorted := append([]schema.CommitSummary{}, commits...)
	sortByDatetime(sorted)

	tl := &Timeline{commits: sorted}
	if len(sorted) > 0 {
		tl.scale = scale.NewTime(sorted[0].Datetime, sorted[len(sorted)-1].Datetime, schema.MinProgress, schema.MaxProgress)
	}
	return tl
}

// Len returns the number of steps.
func (tl *Timeline) Len() int {
	return len(tl.commits)
}

// Commits returns the commits in step order.
func (tl *Timeline) Commits() []schema.CommitSummary {
	return append([]schema.CommitSummary{}, tl.commits...)
}

// FromProgress positions the slider, clamped to 0..100. NaN means the end.
func (tl *Timeline) FromProgress(p float64) Position {
	if len(tl.commits) == 0 {
		return Position{}
	}
	if math.IsNaN(p) {
		p = schema.MaxProgress
	}
	p = scale.Clamp(p, schema.MinProgress, schema.MaxProgress)
	return Position{Progress: p, Cutoff: tl.scale.Invert(p)}
}

// FromStep positions both controls on the commit of scroll step i.
func (tl *Timeline) FromStep(i int) (Position, error) {
	if i < 0 || i >= len(tl.commits) {
		return Position{}, fmt.Errorf("%w: %d not in [0, %d)", ErrStepOutOfRange, i, len(tl.commits))
	}
	cutoff := tl.commits[i].Datetime
	return Position{Progress: tl.progressOf(cutoff), Cutoff: cutoff}, nil
}

// FromCutoff positions both controls on an explicit cutoff.
func (tl *Timeline) FromCutoff(t time.Time) Position {
	if len(tl.commits) == 0 {
		return Position{}
	}
	return Position{Progress: tl.progressOf(t), Cutoff: t}
}

// End is the position that shows every commit.
func (tl *Timeline) End() Position {
	return tl.FromProgress(schema.MaxProgress)
}

// Filtered returns the commits visible at pos.
func (tl *Timeline) Filtered(pos Position) []schema.CommitSummary {
	if len(tl.commits) == 0 {
		return []schema.CommitSummary{}
	}
	return filter.FilterByTimeCutoff(tl.commits, pos.Cutoff)
}

func (tl *Timeline) progressOf(t time.Time) float64 {
	return scale.Clamp(tl.scale.Map(t), schema.MinProgress, schema.MaxProgress)
}

func sortByDatetime(commits []schema.CommitSummary) {
	slices.SortStableFunc(commits, func(a, b schema.CommitSummary) int {
		return a.Datetime.Compare(b.Datetime)
	})
}
