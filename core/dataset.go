package core

import (
	"time"

	"github.com/huangsam/folio/core/agg"
	"github.com/huangsam/folio/core/load"
	"github.com/huangsam/folio/core/scale"
	"github.com/huangsam/folio/core/timeline"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

// Dataset bundles the loaded projects and commit history with the derived
// aggregations every view reads from. It is immutable once built.
type Dataset struct {
	Projects []schema.ProjectRecord
	Lines    []schema.LineRecord
	Index    *agg.Index
	Timeline *timeline.Timeline
	Scatter  scale.Scatter
	LoadedAt time.Time
}

// NewDataset derives the aggregations of the given records.
func NewDataset(projects []schema.ProjectRecord, lines []schema.LineRecord, commitURLBase string) *Dataset {
	idx := agg.Aggregate(lines, commitURLBase)
	commits := idx.Commits()
	return &Dataset{
		Projects: projects,
		Lines:    lines,
		Index:    idx,
		Timeline: timeline.New(commits),
		Scatter:  scale.NewScatter(commits),
		LoadedAt: time.Now(),
	}
}

// LoadDataset reads both sources named by cfg. A source that fails to load
// is reported with a warning and treated as empty.
func LoadDataset(cfg *contract.Config, mgr contract.StoreManager) *Dataset {
	projects, err := load.ProjectsFromFile(cfg.ProjectsPath)
	if err != nil {
		contract.LogWarn("loading projects", err)
		projects = nil
	}

	lines, err := load.CachedLines(cfg.LinesPath, mgr)
	if err != nil {
		contract.LogWarn("loading commit lines", err)
		lines = nil
	}

	return NewDataset(projects, lines, cfg.CommitURLBase)
}

// Commits returns the commit summaries in datetime order.
func (d *Dataset) Commits() []schema.CommitSummary {
	return d.Timeline.Commits()
}
