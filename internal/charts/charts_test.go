package charts

import (
	"bytes"
	"testing"
	"time"

	"github.com/huangsam/folio/core/scale"
	"github.com/huangsam/folio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCommits() []schema.CommitSummary {
	zone := time.FixedZone("", -5*3600)
	return []schema.CommitSummary{
		{ID: "a1b2c3d", Datetime: time.Date(2025, 2, 10, 9, 15, 0, 0, zone), HourFrac: 9.25, TotalLines: 3},
		{ID: "e4f5a6b", Datetime: time.Date(2025, 2, 12, 14, 30, 0, 0, zone), HourFrac: 14.5, TotalLines: 4},
		{ID: "c7d8e9f", Datetime: time.Date(2025, 2, 15, 22, 45, 0, 0, zone), HourFrac: 22.75, TotalLines: 2},
	}
}

func TestScatterRender(t *testing.T) {
	commits := sampleCommits()
	chart := Scatter(commits, commits[1:2], scale.NewScatter(commits), schema.DarkScheme)
	require.NotNil(t, chart)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, chart))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "e4f5a6b")
	assert.Contains(t, out, "1 commits selected")
}

func TestScatterEmpty(t *testing.T) {
	chart := Scatter(nil, nil, scale.NewScatter(nil), schema.AutoScheme)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, chart))
	assert.Contains(t, buf.String(), "No commits selected")
}

func TestScatterData(t *testing.T) {
	commits := sampleCommits()
	layout := scale.NewScatter(commits)
	data := scatterData(commits, layout)

	require.Len(t, data, 3)
	assert.Equal(t, "a1b2c3d", data[0].Name)
	assert.Equal(t, 2*scale.MaxRadius, data[1].SymbolSize, "Largest commit gets the max radius")
	assert.Equal(t, 2*scale.MinRadius, data[2].SymbolSize, "Smallest commit gets the min radius")
}

func TestPieRender(t *testing.T) {
	slices := []schema.Slice{
		{Label: "2023", Count: 1, Proportion: 1.0 / 3},
		{Label: "2024", Count: 2, Proportion: 2.0 / 3, Selected: true},
	}
	chart := Pie("Projects by year", slices, schema.LightScheme)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, chart))
	out := buf.String()
	assert.Contains(t, out, "2023 (33.3%)")
	assert.Contains(t, out, "2024 (66.7%)")
	assert.Contains(t, out, selectedColor)
	assert.Contains(t, out, mutedColor)
}

func TestTheme(t *testing.T) {
	assert.Equal(t, "dark", theme(schema.DarkScheme))
	assert.Equal(t, "white", theme(schema.LightScheme))
	assert.Equal(t, "white", theme(schema.AutoScheme))
}
