package server

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/folio/core/breakdown"
	"github.com/huangsam/folio/core/site"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/schema"
)

// schemeOption is one entry of the theme selector.
type schemeOption struct {
	Value    schema.ColorScheme
	Label    string
	Selected bool
}

type pageData struct {
	Title    string
	Heading  schema.HeadingLevel
	Base     string
	Nav      []site.NavLink
	Scheme   schema.ColorScheme
	Schemes  []schemeOption
	Query    string
	Projects *schema.ProjectsResult
	Stats    *schema.CommitStats
	Steps    []schema.Step
	Charts   url.Values
}

func (s *server) initPages(r *gin.RouterGroup) {
	for _, p := range site.Pages {
		r.GET(p.URL, s.page(p))
	}
}

func (s *server) page(p site.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params FilterParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		base := site.BasePath(c.Request.Host, s.opts.BasePath)
		data := s.pageData(p, base, c.Request.URL.Path)

		switch p.Title {
		case "Projects":
			state, err := params.state()
			if err != nil {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			view := s.snapshot().ProjectsView(state)
			data.Projects = &view
			data.Query = params.Query

		case "Meta":
			state, err := params.state()
			if err != nil {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			sel, err := params.selection()
			if err != nil {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			summary, err := s.snapshot().Stats(state, sel)
			if err != nil {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			data.Stats = &summary
			data.Steps = s.snapshot().Steps()
			data.Charts = c.Request.URL.Query()
		}

		c.HTML(http.StatusOK, "page.html", data)
	}
}

func (s *server) pageData(p site.Page, base, currentPath string) pageData {
	scheme := iocache.GetColorScheme(s.mgr)
	options := make([]schemeOption, 0, len(schema.AllColorSchemes))
	for _, cs := range schema.AllColorSchemes {
		options = append(options, schemeOption{Value: cs, Label: schema.SchemeLabel(cs), Selected: cs == scheme})
	}

	return pageData{
		Title:   p.Title,
		Heading: s.heading(),
		Base:    base,
		Nav:     site.NavLinks(base, currentPath),
		Scheme:  scheme,
		Schemes: options,
	}
}

func (s *server) heading() schema.HeadingLevel {
	if _, ok := schema.ValidHeadingLevels[s.opts.Heading]; ok {
		return s.opts.Heading
	}
	return schema.DefaultHeading
}

var pageFuncs = template.FuncMap{
	"percent":  breakdown.FormatPercent,
	"heading": func(level schema.HeadingLevel, text string) template.HTML {
		return template.HTML("<" + string(level) + ">" + template.HTMLEscapeString(text) + "</" + string(level) + ">")
	},
	"query": func(v url.Values, extra ...string) template.URL {
		q := url.Values{}
		for k, vs := range v {
			q[k] = vs
		}
		for i := 0; i+1 < len(extra); i += 2 {
			q.Set(extra[i], extra[i+1])
		}
		return template.URL(q.Encode())
	},
}
