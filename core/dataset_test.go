package core

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/folio/core/filter"
	"github.com/huangsam/folio/core/timeline"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		LinesPath:     filepath.Join("testdata", "loc.csv"),
		ProjectsPath:  filepath.Join("testdata", "projects.json"),
		CommitURLBase: schema.DefaultCommitURLBase,
		Output:        schema.JSONOut,
		OutputFile:    filepath.Join(t.TempDir(), "out.json"),
		ResultLimit:   contract.DefaultResultLimit,
		Precision:     contract.DefaultPrecision,
	}
}

func noStores() *iocache.MockStoreManager {
	mgr := &iocache.MockStoreManager{}
	mgr.On("GetDatasetStore").Return(nil)
	return mgr
}

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	return LoadDataset(testConfig(t), noStores())
}

func ids(commits []schema.CommitSummary) []string {
	out := make([]string, len(commits))
	for i, c := range commits {
		out[i] = c.ID
	}
	return out
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestLoadDataset(t *testing.T) {
	ds := testDataset(t)
	assert.Len(t, ds.Projects, 3)
	assert.Len(t, ds.Lines, 9)
	assert.Equal(t, 3, ds.Index.Len())
	assert.Equal(t, []string{"a1b2c3d", "e4f5a6b", "c7d8e9f"}, ids(ds.Commits()))
	assert.Equal(t, schema.DefaultCommitURLBase+"a1b2c3d", ds.Commits()[0].URL)
}

func TestLoadDatasetMissingSources(t *testing.T) {
	cfg := testConfig(t)
	cfg.LinesPath = filepath.Join(t.TempDir(), "missing.csv")
	cfg.ProjectsPath = filepath.Join(t.TempDir(), "missing.json")

	ds := LoadDataset(cfg, noStores())
	assert.Empty(t, ds.Projects)
	assert.Empty(t, ds.Commits())

	view := ds.ProjectsView(filter.FilterState{})
	assert.Equal(t, "0 Projects", view.Title)
	assert.Empty(t, view.Slices)

	result, err := ds.CommitsView(filter.FilterState{}, Selection{})
	require.NoError(t, err)
	assert.Empty(t, result.Visible)
	assert.Equal(t, "No commits selected", result.Selection)
}

func TestProjectsView(t *testing.T) {
	ds := testDataset(t)

	t.Run("no filter", func(t *testing.T) {
		view := ds.ProjectsView(filter.FilterState{})
		assert.Equal(t, "3 Projects", view.Title)
		assert.Len(t, view.Projects, 3)
		require.Len(t, view.Slices, 3)
		assert.Equal(t, 3, sumCounts(view.Slices))
	})

	t.Run("query narrows list and pie", func(t *testing.T) {
		view := ds.ProjectsView(filter.FilterState{}.WithQuery("BIKE"))
		require.Len(t, view.Projects, 1)
		assert.Equal(t, "Bike Traffic Map", view.Projects[0].Title)
		require.Len(t, view.Slices, 1)
		assert.Equal(t, "2024", view.Slices[0].Label)
	})

	t.Run("category narrows list only", func(t *testing.T) {
		state := filter.FilterState{}.ToggleCategory("2024")
		view := ds.ProjectsView(state)
		require.Len(t, view.Projects, 1)
		assert.Len(t, view.Slices, 3, "Pie keeps every year of the search results")
		assert.True(t, view.Slices[1].Selected)
		assert.Equal(t, "3 Projects", view.Title)
	})
}

func sumCounts(slices []schema.Slice) int {
	total := 0
	for _, s := range slices {
		total += s.Count
	}
	return total
}

func TestCommitsView(t *testing.T) {
	ds := testDataset(t)

	tests := []struct {
		name     string
		sel      Selection
		expected []string
	}{
		{"End by default", Selection{}, []string{"a1b2c3d", "e4f5a6b", "c7d8e9f"}},
		{"Progress zero", Selection{Progress: floatPtr(0)}, []string{"a1b2c3d"}},
		{"Step one", Selection{Step: intPtr(1)}, []string{"a1b2c3d", "e4f5a6b"}},
		{"Step wins over progress", Selection{Step: intPtr(0), Progress: floatPtr(100)}, []string{"a1b2c3d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ds.CommitsView(filter.FilterState{}, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(result.Visible))
			assert.Empty(t, result.Selected)
			assert.Empty(t, result.Languages)
		})
	}

	t.Run("step out of range", func(t *testing.T) {
		_, err := ds.CommitsView(filter.FilterState{}, Selection{Step: intPtr(3)})
		assert.ErrorIs(t, err, timeline.ErrStepOutOfRange)
	})

	t.Run("step and slider agree", func(t *testing.T) {
		byStep, err := ds.CommitsView(filter.FilterState{}, Selection{Step: intPtr(1)})
		require.NoError(t, err)
		bySlider, err := ds.CommitsView(filter.FilterState{}, Selection{Progress: floatPtr(byStep.Progress)})
		require.NoError(t, err)
		assert.Equal(t, ids(byStep.Visible), ids(bySlider.Visible))
	})
}

func TestCommitsViewBrush(t *testing.T) {
	ds := testDataset(t)
	state := filter.FilterState{}.WithBrush(schema.Rect{To: schema.Point{X: 1000, Y: 600}})

	result, err := ds.CommitsView(state, Selection{})
	require.NoError(t, err)
	assert.Len(t, result.Selected, 3)
	assert.Equal(t, "3 commits selected", result.Selection)

	require.Len(t, result.Languages, 3)
	assert.Equal(t, schema.Slice{Label: "html", Count: 3, Proportion: 3.0 / 9}, result.Languages[0])
	assert.Equal(t, "css", result.Languages[1].Label)
	assert.Equal(t, 5, result.Languages[2].Count)

	// The cutoff also bounds the brushed set
	result, err = ds.CommitsView(state, Selection{Progress: floatPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1b2c3d"}, ids(result.Selected))
}

func TestStats(t *testing.T) {
	ds := testDataset(t)

	summary, err := ds.Stats(filter.FilterState{}, Selection{})
	require.NoError(t, err)
	assert.Equal(t, 9, summary.TotalLOC)
	assert.Equal(t, 3, summary.Commits)
	assert.Equal(t, 4, summary.Files)
	assert.Equal(t, 2, summary.MaxDepth)

	summary, err = ds.Stats(filter.FilterState{}, Selection{Step: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalLOC)
	assert.Equal(t, 1, summary.Commits)
}

func TestStepsAndTooltip(t *testing.T) {
	ds := testDataset(t)

	steps := ds.Steps()
	require.Len(t, steps, 3)
	assert.Contains(t, steps[0].Text, "my first commit, and it was glorious")
	assert.Contains(t, steps[1].Text, "another glorious commit")

	tip, ok := ds.Tooltip("c7d8e9f")
	require.True(t, ok)
	assert.Equal(t, "Alex Kim", tip.Author)
	assert.Equal(t, 2, tip.Lines)

	_, ok = ds.Tooltip("nope")
	assert.False(t, ok)
}
