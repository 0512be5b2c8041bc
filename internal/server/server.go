// Package server serves the portfolio pages, a JSON API over the loaded
// dataset, the rendered charts and the Prometheus metrics.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/core/site"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

//go:embed templates/*.html
var templates embed.FS

// shutdownTimeout bounds the graceful shutdown of in-flight requests.
const shutdownTimeout = 5 * time.Second

// Options configures the server.
type Options struct {
	Addr     string
	BasePath string // Empty resolves the base path from the request host
	Watch    bool   // Reload the dataset when a source file changes
	Heading  schema.HeadingLevel
}

// LoaderFunc builds a fresh dataset from the sources.
type LoaderFunc func() *core.Dataset

// Run loads the dataset and serves until ctx is done.
func Run(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	opts := &Options{Addr: cfg.Addr, BasePath: cfg.BasePath, Watch: cfg.Watch, Heading: cfg.Heading}
	s := newServer(opts, mgr, func() *core.Dataset { return core.LoadDataset(cfg, mgr) })

	_, _ = fmt.Fprintf(os.Stderr, "📂 Loading %s and %s...\n", cfg.LinesPath, cfg.ProjectsPath)
	s.reload()

	if opts.Watch {
		sw, err := newSourceWatcher(cfg.LinesPath, cfg.ProjectsPath)
		if err != nil {
			return fmt.Errorf("failed to watch sources: %w", err)
		}
		go sw.run(ctx, func(path string) {
			_, _ = fmt.Fprintf(os.Stderr, "🔄 %s changed, reloading\n", path)
			s.reload()
		})
	}

	_, _ = fmt.Fprintf(os.Stderr, "🌐 Serving on http://%s\n", opts.Addr)
	return s.run(ctx)
}

type server struct {
	opts    *Options
	mgr     contract.StoreManager
	load    LoaderFunc
	metrics *metrics

	mu sync.RWMutex
	ds *core.Dataset
}

func newServer(opts *Options, mgr contract.StoreManager, load LoaderFunc) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Addr == "" {
		opts.Addr = contract.DefaultAddr
	}

	return &server{
		opts:    opts,
		mgr:     mgr,
		load:    load,
		metrics: newMetrics(),
		ds:      core.NewDataset(nil, nil, ""),
	}
}

// snapshot returns the current dataset. Datasets are immutable, so the
// caller may keep using it after a reload swapped it out.
func (s *server) snapshot() *core.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

func (s *server) reload() {
	ds := s.load()
	if ds == nil {
		s.metrics.reloads.WithLabelValues("failed").Inc()
		return
	}

	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()

	s.metrics.reloads.WithLabelValues("ok").Inc()
	s.metrics.commits.Set(float64(ds.Index.Len()))
	s.metrics.projects.Set(float64(len(ds.Projects)))
}

// mounts returns the path prefixes the routes are registered under. Without
// an override both the local and the published base paths are served.
func (s *server) mounts() []string {
	if s.opts.BasePath != "" {
		return []string{site.NormalizeBasePath(s.opts.BasePath)}
	}
	return []string{site.LocalBasePath, site.PublishedBasePath}
}

func (s *server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(s.metrics.middleware())
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(pageFuncs).ParseFS(templates, "templates/*.html")))

	r.GET("/metrics", s.metrics.handler())

	for _, mount := range s.mounts() {
		g := r.Group(mount)
		s.initPages(g)
		s.initAPI(g)
		s.initCharts(g)
	}
	return r
}

func (s *server) run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
