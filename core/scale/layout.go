package scale

import (
	"time"

	"github.com/huangsam/folio/schema"
)

// Margin is the space around the usable plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Plot dimensions of the commit scatterplot.
const (
	PlotWidth  = 1000
	PlotHeight = 600
	MinRadius  = 3
	MaxRadius  = 22
	HoursInDay = 24
)

// DefaultMargin is the margin of the commit scatterplot.
var DefaultMargin = Margin{Top: 10, Right: 10, Bottom: 30, Left: 20}

// Area is the usable region of a plot.
type Area struct {
	Top, Right, Bottom, Left float64
	Width, Height            float64
}

// UsableArea returns the plot region left after removing the margin.
func UsableArea(width, height float64, m Margin) Area {
	return Area{
		Top:    m.Top,
		Right:  width - m.Right,
		Bottom: height - m.Bottom,
		Left:   m.Left,
		Width:  width - m.Left - m.Right,
		Height: height - m.Top - m.Bottom,
	}
}

// Projector maps a commit to its position in screen space.
type Projector interface {
	Project(c schema.CommitSummary) schema.Point
}

// Scatter is the layout of the commit scatterplot: datetime on x,
// hour of day on y (0 at the bottom) and radius by total lines.
type Scatter struct {
	Area Area
	X    Time
	Y    Linear
	R    Sqrt
}

var _ Projector = Scatter{} // Compile-time check

// NewScatter builds the scatter layout for commits using the default plot size.
func NewScatter(commits []schema.CommitSummary) Scatter {
	area := UsableArea(PlotWidth, PlotHeight, DefaultMargin)

	var minT, maxT time.Time
	minLines, maxLines := 0, 0
	for i, c := range commits {
		if i == 0 || c.Datetime.Before(minT) {
			minT = c.Datetime
		}
		if i == 0 || c.Datetime.After(maxT) {
			maxT = c.Datetime
		}
		if i == 0 || c.TotalLines < minLines {
			minLines = c.TotalLines
		}
		if i == 0 || c.TotalLines > maxLines {
			maxLines = c.TotalLines
		}
	}

	return Scatter{
		Area: area,
		X:    NewTime(minT, maxT, area.Left, area.Right).Nice(),
		Y:    NewLinear(0, HoursInDay, area.Bottom, area.Top),
		R:    NewSqrt(float64(minLines), float64(maxLines), MinRadius, MaxRadius),
	}
}

// Project returns the screen position of a commit.
func (s Scatter) Project(c schema.CommitSummary) schema.Point {
	return schema.Point{X: s.X.Map(c.Datetime), Y: s.Y.Map(c.HourFrac)}
}

// Radius returns the mark radius of a commit.
func (s Scatter) Radius(c schema.CommitSummary) float64 {
	return s.R.Map(float64(c.TotalLines))
}
