package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder on a Prometheus registry.
type PrometheusRecorder struct {
	registry      *prometheus.Registry
	pagesTotal    prometheus.Counter
	skippedTotal  prometheus.Counter
	buildDuration prometheus.Histogram
	buildsTotal   *prometheus.CounterVec
	sitemapTotal  prometheus.Counter
}

// NewPrometheusRecorder creates a recorder with its own registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	r := &PrometheusRecorder{
		registry: reg,
		pagesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vdpbuilder_pages_generated_total",
			Help: "Vehicle detail pages written to disk.",
		}),
		skippedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vdpbuilder_pages_skipped_total",
			Help: "Pages skipped because their content was unchanged.",
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vdpbuilder_build_duration_seconds",
			Help:    "Duration of pipeline runs.",
			Buckets: prometheus.DefBuckets,
		}),
		buildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vdpbuilder_builds_total",
			Help: "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		sitemapTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vdpbuilder_sitemap_updates_total",
			Help: "Successful sitemap merges.",
		}),
	}
	reg.MustRegister(r.pagesTotal, r.skippedTotal, r.buildDuration, r.buildsTotal, r.sitemapTotal)
	return r
}

func (r *PrometheusRecorder) PagesGenerated(n int) { r.pagesTotal.Add(float64(n)) }
func (r *PrometheusRecorder) PagesSkipped(n int)   { r.skippedTotal.Add(float64(n)) }

func (r *PrometheusRecorder) BuildCompleted(d time.Duration, success bool) {
	r.buildDuration.Observe(d.Seconds())
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	r.buildsTotal.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRecorder) SitemapUpdated() { r.sitemapTotal.Inc() }

// Handler serves the registry in Prometheus exposition format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
