package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/core/load"
	"github.com/huangsam/folio/core/site"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureDataset(t *testing.T) *core.Dataset {
	t.Helper()
	projects, err := load.ProjectsFromFile("testdata/projects.json")
	require.NoError(t, err)
	lines, err := load.LinesFromFile("testdata/loc.csv")
	require.NoError(t, err)
	return core.NewDataset(projects, lines, schema.DefaultCommitURLBase)
}

// newTestServer returns a server over the fixtures with no preference store.
func newTestServer(t *testing.T, opts *Options) (*server, *gin.Engine) {
	t.Helper()
	mgr := &iocache.MockStoreManager{}
	mgr.On("GetPreferenceStore").Return(nil).Maybe()
	ds := fixtureDataset(t)
	s := newServer(opts, mgr, func() *core.Dataset { return ds })
	s.reload()
	return s, s.router()
}

func request(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestProjectsAPI(t *testing.T) {
	_, r := newTestServer(t, nil)

	tests := []struct {
		name     string
		target   string
		titles   []string
		selected string
	}{
		{"All projects", "/api/projects", []string{"Lorem Ipsum Dashboard", "Bike Traffic Map", "Color Study"}, ""},
		{"Query", "/api/projects?q=BIKE", []string{"Bike Traffic Map"}, ""},
		{"Year", "/api/projects?year=2023", []string{"Lorem Ipsum Dashboard"}, "2023"},
		{"Published mount", "/portfolio/api/projects?q=color", []string{"Color Study"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(t, r, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, w.Code)

			got := decode[schema.ProjectsResult](t, w)
			assert.Equal(t, "3 Projects", got.Title)
			titles := make([]string, 0, len(got.Projects))
			for _, p := range got.Projects {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.titles, titles)
			if tt.selected == "" {
				assert.Nil(t, got.Selected)
			} else {
				require.NotNil(t, got.Selected)
				assert.Equal(t, tt.selected, *got.Selected)
			}
		})
	}
}

func TestBreakdownAPIKeepsSlicesWhileFiltering(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := request(t, r, http.MethodGet, "/api/breakdown?year=2024", "")
	require.Equal(t, http.StatusOK, w.Code)

	slices := decode[[]schema.Slice](t, w)
	require.Len(t, slices, 3)
	total := 0
	for _, s := range slices {
		total += s.Count
		assert.Equal(t, s.Label == "2024", s.Selected)
	}
	assert.Equal(t, 3, total)
}

func TestCommitsAPI(t *testing.T) {
	_, r := newTestServer(t, nil)

	t.Run("End of timeline", func(t *testing.T) {
		w := request(t, r, http.MethodGet, "/api/commits", "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[schema.CommitsResult](t, w)
		assert.Len(t, got.Visible, 3)
		assert.Empty(t, got.Selected)
		assert.Equal(t, "No commits selected", got.Selection)
		assert.Equal(t, 100.0, got.Progress)
	})

	t.Run("First step", func(t *testing.T) {
		w := request(t, r, http.MethodGet, "/api/commits?step=0", "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[schema.CommitsResult](t, w)
		require.Len(t, got.Visible, 1)
		assert.Equal(t, "a1b2c3d", got.Visible[0].ID)
		assert.Equal(t, 0.0, got.Progress)
	})

	t.Run("Brush over the whole plot", func(t *testing.T) {
		w := request(t, r, http.MethodGet, "/api/commits?brush=0,0,1000,600", "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[schema.CommitsResult](t, w)
		assert.Len(t, got.Selected, 3)
		assert.Equal(t, "3 commits selected", got.Selection)
		assert.NotEmpty(t, got.Languages)
	})
}

func TestBadRequests(t *testing.T) {
	_, r := newTestServer(t, nil)

	tests := []struct {
		name   string
		target string
	}{
		{"Malformed brush", "/api/commits?brush=1,2"},
		{"Progress out of range", "/api/commits?progress=150"},
		{"Progress not a number", "/api/stats?progress=half"},
		{"Progress NaN on commits", "/api/commits?progress=NaN"},
		{"Progress NaN on stats", "/api/stats?progress=NaN"},
		{"Progress infinite on files", "/api/files?progress=Inf"},
		{"Non-finite brush", "/api/commits?brush=NaN,0,1,1"},
		{"Step out of range", "/api/commits?step=99"},
		{"Negative step", "/api/stats?step=-1"},
		{"Unknown pie source", "/charts/pie?source=authors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(t, r, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestStatsAPI(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := request(t, r, http.MethodGet, "/api/stats?step=0", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[schema.CommitStats](t, w)
	assert.Equal(t, 3, got.TotalLOC)
	assert.Equal(t, 1, got.Commits)
	assert.Equal(t, 2, got.Files)
}

func TestStepsAndTooltip(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := request(t, r, http.MethodGet, "/api/steps", "")
	require.Equal(t, http.StatusOK, w.Code)
	steps := decode[[]schema.Step](t, w)
	require.Len(t, steps, 3)
	assert.Contains(t, steps[0].Text, "my first commit")

	w = request(t, r, http.MethodGet, "/api/commits/c7d8e9f/tooltip", "")
	require.Equal(t, http.StatusOK, w.Code)
	tip := decode[schema.Tooltip](t, w)
	assert.Equal(t, "Alex Kim", tip.Author)
	assert.Equal(t, 2, tip.Lines)

	w = request(t, r, http.MethodGet, "/api/commits/missing/tooltip", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNavAPI(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := request(t, r, http.MethodGet, "/api/nav?path=/portfolio/projects/", "")
	require.Equal(t, http.StatusOK, w.Code)

	links := decode[[]site.NavLink](t, w)
	require.Len(t, links, len(site.Pages))
	for _, l := range links {
		assert.Equal(t, l.Title == "Projects", l.Current, l.Title)
	}
}

func TestThemeAPI(t *testing.T) {
	store := &iocache.MockCacheStore{}
	store.On("Set", schema.ColorSchemeKey, []byte("dark"), 1, mock.Anything).Return(nil).Once()
	store.On("Set", schema.ColorSchemeKey, []byte("light"), 1, mock.Anything).Return(errors.New("disk full")).Once()
	store.On("Get", schema.ColorSchemeKey).Return([]byte("dark"), 1, int64(0), nil)

	mgr := &iocache.MockStoreManager{}
	mgr.On("GetPreferenceStore").Return(store)
	ds := fixtureDataset(t)
	s := newServer(nil, mgr, func() *core.Dataset { return ds })
	r := s.router()

	w := request(t, r, http.MethodPut, "/api/theme", `{"colorScheme":"dark"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"label":"Dark"`)

	w = request(t, r, http.MethodGet, "/api/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"colorScheme":"dark"`)

	w = request(t, r, http.MethodPut, "/api/theme", `{"colorScheme":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(t, r, http.MethodPut, "/api/theme", `{"colorScheme":"light"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "disk full")

	store.AssertExpectations(t)
}

func TestChartsRenderHTML(t *testing.T) {
	_, r := newTestServer(t, nil)

	for _, target := range []string{"/charts/scatter", "/charts/pie", "/charts/pie?source=languages&brush=0,0,1000,600"} {
		t.Run(target, func(t *testing.T) {
			w := request(t, r, http.MethodGet, target, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), "echarts")
		})
	}
}

func TestPages(t *testing.T) {
	_, r := newTestServer(t, &Options{Heading: "h3"})

	w := request(t, r, http.MethodGet, "/portfolio/projects/?q=bike", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h3>Bike Traffic Map</h3>")
	assert.NotContains(t, body, "Color Study")
	assert.Contains(t, body, `class="current"`)

	w = request(t, r, http.MethodGet, "/portfolio/meta/", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, "charts/scatter?")
	assert.Contains(t, body, "my first commit")
	assert.Contains(t, body, "index.html (3 lines)")
	assert.Contains(t, body, "<dt>Avg file length</dt><dd>2 lines</dd>")
}

func TestPagesWithoutLines(t *testing.T) {
	s, r := newTestServer(t, nil)
	description := strings.Repeat("A long project description. ", 40)
	ds := core.NewDataset([]schema.ProjectRecord{{Title: "Essay", Description: description, Year: "2025"}}, nil, "")
	s.load = func() *core.Dataset { return ds }
	s.reload()

	w := request(t, r, http.MethodGet, "/portfolio/projects/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), description)

	w = request(t, r, http.MethodGet, "/portfolio/meta/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<dt>Avg file length</dt><dd>n/a</dd>")

	w = request(t, r, http.MethodGet, "/api/files", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestBasePathOverride(t *testing.T) {
	_, r := newTestServer(t, &Options{BasePath: "site"})

	assert.Equal(t, http.StatusOK, request(t, r, http.MethodGet, "/site/api/steps", "").Code)
	assert.Equal(t, http.StatusNotFound, request(t, r, http.MethodGet, "/api/steps", "").Code)
}

func TestReloadSwapsSnapshot(t *testing.T) {
	s, r := newTestServer(t, nil)
	before := s.snapshot()

	empty := core.NewDataset(nil, nil, "")
	s.load = func() *core.Dataset { return empty }
	s.reload()

	assert.NotSame(t, before, s.snapshot())
	w := request(t, r, http.MethodGet, "/api/steps", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]schema.Step](t, w))
}

func TestMetricsEndpoint(t *testing.T) {
	_, r := newTestServer(t, nil)
	request(t, r, http.MethodGet, "/api/steps", "")

	w := request(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `folio_http_requests_total{route="/api/steps",status="200"} 1`)
	assert.Contains(t, body, `folio_dataset_reloads_total{result="ok"} 1`)
	assert.Contains(t, body, "folio_dataset_commits 3")
	assert.Contains(t, body, "folio_dataset_projects 3")
}
