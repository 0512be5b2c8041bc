package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	reloads  *prometheus.CounterVec
	commits  prometheus.Gauge
	projects prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_http_requests_total",
			Help: "HTTP requests served, by route and status.",
		}, []string{"route", "status"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_dataset_reloads_total",
			Help: "Dataset reloads triggered by source changes, by result.",
		}, []string{"result"}),
		commits: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_dataset_commits",
			Help: "Commits in the loaded dataset.",
		}),
		projects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_dataset_projects",
			Help: "Projects in the loaded dataset.",
		}),
	}
	m.registry.MustRegister(m.requests, m.reloads, m.commits, m.projects)
	return m
}

// middleware counts every request by its route pattern.
func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
