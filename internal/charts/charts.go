// Package charts renders the commit scatter plot and the breakdown pie as
// interactive HTML using go-echarts.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/huangsam/folio/core/breakdown"
	"github.com/huangsam/folio/core/scale"
	"github.com/huangsam/folio/schema"
	"github.com/samber/lo"
)

// Chart colors.
const (
	commitColor   = "steelblue"
	selectedColor = "#ff6b6b"
	mutedColor    = "#cccccc"
)

// pieRadius leaves room for labels around the pie.
var pieRadius = []string{"0", "70%"}

// theme returns the echarts theme of a color scheme.
func theme(scheme schema.ColorScheme) string {
	if scheme == schema.DarkScheme {
		return "dark"
	}
	return "white"
}

// initOpts sizes a chart to the plot dimensions.
func initOpts(scheme schema.ColorScheme) opts.Initialization {
	return opts.Initialization{
		Width:  fmt.Sprintf("%dpx", scale.PlotWidth),
		Height: fmt.Sprintf("%dpx", scale.PlotHeight),
		Theme:  theme(scheme),
	}
}

// Scatter builds the commits-by-time-of-day scatter plot. Commits in
// selected are drawn in a separate highlighted series.
func Scatter(commits, selected []schema.CommitSummary, layout scale.Scatter, scheme schema.ColorScheme) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(scheme)),
		charts.WithTitleOpts(opts.Title{Title: "Commits by time of day", Subtitle: schema.SelectionLabel(len(selected))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
			Type: "time",
			Min:  layout.X.D0.UnixMilli(),
			Max:  layout.X.D1.UnixMilli(),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Time",
			Type:      "value",
			Min:       0,
			Max:       scale.HoursInDay,
			AxisLabel: &opts.AxisLabel{Formatter: "{value}:00"},
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	isSelected := lo.KeyBy(selected, func(c schema.CommitSummary) string { return c.ID })
	brushed := lo.Filter(commits, func(c schema.CommitSummary, _ int) bool {
		_, ok := isSelected[c.ID]
		return ok
	})
	rest := lo.Reject(commits, func(c schema.CommitSummary, _ int) bool {
		_, ok := isSelected[c.ID]
		return ok
	})

	scatter.AddSeries("Commits", scatterData(rest, layout),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: commitColor, Opacity: opts.Float(0.7)}))
	scatter.AddSeries("Selected", scatterData(brushed, layout),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: selectedColor}))
	return scatter
}

// scatterData converts commits to points sized by the radius scale.
func scatterData(commits []schema.CommitSummary, layout scale.Scatter) []opts.ScatterData {
	return lo.Map(commits, func(c schema.CommitSummary, _ int) opts.ScatterData {
		return opts.ScatterData{
			Name:       c.ID,
			Value:      []any{c.Datetime.UnixMilli(), c.HourFrac, c.ID},
			SymbolSize: int(2 * layout.Radius(c)),
		}
	})
}

// Pie builds the breakdown pie. The selected slice is highlighted and the
// others are muted while a selection exists.
func Pie(title string, slices []schema.Slice, scheme schema.ColorScheme) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(scheme)),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	hasSelection := lo.SomeBy(slices, func(s schema.Slice) bool { return s.Selected })
	data := lo.Map(slices, func(s schema.Slice, _ int) opts.PieData {
		d := opts.PieData{
			Name:  fmt.Sprintf("%s (%s)", s.Label, breakdown.FormatPercent(s.Proportion)),
			Value: s.Count,
		}
		switch {
		case s.Selected:
			d.ItemStyle = &opts.ItemStyle{Color: selectedColor}
		case hasSelection:
			d.ItemStyle = &opts.ItemStyle{Color: mutedColor}
		}
		return d
	})

	pie.AddSeries(title, data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
			charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius}),
		)
	return pie
}

// Renderer is any chart that renders itself as an HTML page.
type Renderer interface {
	Render(w io.Writer) error
}

// Render writes a chart as a standalone HTML page.
func Render(w io.Writer, chart Renderer) error {
	if err := chart.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
