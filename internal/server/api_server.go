package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/folio/core/site"
	"github.com/huangsam/folio/core/timeline"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/schema"
)

func (s *server) initAPI(r *gin.RouterGroup) {
	r.GET("api/projects", getP[FilterParams](s.projectsList))
	r.GET("api/breakdown", getP[FilterParams](s.yearBreakdown))
	r.GET("api/commits", getP[FilterParams](s.commitsList))
	r.GET("api/commits/:id/tooltip", getU[TooltipParams](s.commitTooltip))
	r.GET("api/files", getP[FilterParams](s.filesList))
	r.GET("api/stats", getP[FilterParams](s.commitStats))
	r.GET("api/steps", get(s.stepsList))
	r.GET("api/nav", s.navLinks)
	r.GET("api/theme", get(s.themeGet))
	r.PUT("api/theme", putP[ThemeParams](s.themeSet))
}

func (s *server) projectsList(params *FilterParams) (any, error) {
	state, err := params.state()
	if err != nil {
		return nil, err
	}
	return s.snapshot().ProjectsView(state), nil
}

func (s *server) yearBreakdown(params *FilterParams) (any, error) {
	state, err := params.state()
	if err != nil {
		return nil, err
	}
	return s.snapshot().YearBreakdown(state), nil
}

func (s *server) commitsResult(params *FilterParams) (schema.CommitsResult, error) {
	state, err := params.state()
	if err != nil {
		return schema.CommitsResult{}, err
	}
	sel, err := params.selection()
	if err != nil {
		return schema.CommitsResult{}, err
	}

	result, err := s.snapshot().CommitsView(state, sel)
	if errors.Is(err, timeline.ErrStepOutOfRange) {
		return result, badRequest{err: err}
	}
	return result, err
}

func (s *server) commitsList(params *FilterParams) (any, error) {
	return s.commitsResult(params)
}

func (s *server) filesList(params *FilterParams) (any, error) {
	result, err := s.commitsResult(params)
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

func (s *server) commitTooltip(params *TooltipParams) (any, error) {
	tip, ok := s.snapshot().Tooltip(params.ID)
	if !ok {
		return nil, errorNotFound
	}
	return tip, nil
}

func (s *server) commitStats(params *FilterParams) (any, error) {
	state, err := params.state()
	if err != nil {
		return nil, err
	}
	sel, err := params.selection()
	if err != nil {
		return nil, err
	}

	summary, err := s.snapshot().Stats(state, sel)
	if errors.Is(err, timeline.ErrStepOutOfRange) {
		return nil, badRequest{err: err}
	}
	return summary, err
}

func (s *server) stepsList() (any, error) {
	return s.snapshot().Steps(), nil
}

// navLinks builds the navigation for the page named by the path parameter.
// The base path depends on the request host.
func (s *server) navLinks(c *gin.Context) {
	base := site.BasePath(c.Request.Host, s.opts.BasePath)
	c.JSON(http.StatusOK, site.NavLinks(base, c.Query("path")))
}

func (s *server) themeGet() (any, error) {
	scheme := iocache.GetColorScheme(s.mgr)
	return gin.H{"colorScheme": scheme, "label": schema.SchemeLabel(scheme)}, nil
}

func (s *server) themeSet(params *ThemeParams) (any, error) {
	scheme, err := site.ParseColorScheme(params.ColorScheme)
	if err != nil {
		return nil, badRequest{err: err}
	}
	if err := iocache.SetColorScheme(s.mgr, scheme); err != nil {
		return nil, err
	}
	return gin.H{"colorScheme": scheme, "label": schema.SchemeLabel(scheme)}, nil
}
