package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/folio/internal/charts"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/schema"
)

// Pie sources.
const (
	yearsSource     = "years"
	languagesSource = "languages"
)

func (s *server) initCharts(r *gin.RouterGroup) {
	r.GET("charts/scatter", htmlP[FilterParams](s.scatterChart))
	r.GET("charts/pie", htmlP[PieParams](s.pieChart))
}

// htmlP is getP for handlers that render a chart page.
func htmlP[P any](f func(*P) (charts.Renderer, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindQuery(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		chart, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		var buf bytes.Buffer
		if err := charts.Render(&buf, chart); err != nil {
			sendError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

func (s *server) scatterChart(params *FilterParams) (charts.Renderer, error) {
	result, err := s.commitsResult(params)
	if err != nil {
		return nil, err
	}
	ds := s.snapshot()
	return charts.Scatter(result.Visible, result.Selected, ds.Scatter, iocache.GetColorScheme(s.mgr)), nil
}

func (s *server) pieChart(params *PieParams) (charts.Renderer, error) {
	scheme := iocache.GetColorScheme(s.mgr)

	switch params.Source {
	case "", yearsSource:
		state, err := params.state()
		if err != nil {
			return nil, err
		}
		ds := s.snapshot()
		return charts.Pie(schema.ProjectsTitle(len(ds.Projects))+" by year", ds.YearBreakdown(state), scheme), nil

	case languagesSource:
		result, err := s.commitsResult(&params.FilterParams)
		if err != nil {
			return nil, err
		}
		return charts.Pie("Lines by language", result.Languages, scheme), nil

	default:
		return nil, invalid("unknown pie source %q, must be %q or %q", params.Source, yearsSource, languagesSource)
	}
}
