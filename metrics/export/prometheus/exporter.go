package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	goCommon "github.com/MrEthical07/goCommon"
	"github.com/MrEthical07/goCommon/metrics/export/internaldefs"
)

type metricsSource interface {
	MetricsSnapshot() goCommon.MetricsSnapshot
}

// PrometheusExporter exposes goCommon metrics as a [prometheus.Collector].
type PrometheusExporter struct {
	source      metricsSource
	failures    *prometheus.Desc
	truncations *prometheus.Desc
}

// NewPrometheusExporter creates a Prometheus exporter that reads from the given [goCommon.Runtime].
func NewPrometheusExporter(rt *goCommon.Runtime) *PrometheusExporter {
	return NewPrometheusExporterFromSource(rt)
}

// NewPrometheusExporterFromSource creates a Prometheus exporter from any
// value with a MetricsSnapshot method.
func NewPrometheusExporterFromSource(source metricsSource) *PrometheusExporter {
	return &PrometheusExporter{
		source: source,
		failures: prometheus.NewDesc(
			internaldefs.Failures.Name,
			internaldefs.Failures.Help,
			internaldefs.Failures.Labels,
			nil,
		),
		truncations: prometheus.NewDesc(
			internaldefs.Truncations.Name,
			internaldefs.Truncations.Help,
			nil,
			nil,
		),
	}
}

// Describe implements [prometheus.Collector].
func (p *PrometheusExporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- p.failures
	ch <- p.truncations
}

// Collect implements [prometheus.Collector]. Nothing is emitted while the
// source reports no counters, which is the case for disabled metrics.
func (p *PrometheusExporter) Collect(ch chan<- prometheus.Metric) {
	if p == nil || p.source == nil {
		return
	}

	snapshot := p.source.MetricsSnapshot()
	samples := internaldefs.FailureSamples(snapshot.Failures)
	if len(samples) == 0 && snapshot.Truncations == 0 {
		return
	}

	for _, s := range samples {
		ch <- prometheus.MustNewConstMetric(p.failures, prometheus.CounterValue, float64(s.Value), s.Kind)
	}
	ch <- prometheus.MustNewConstMetric(p.truncations, prometheus.CounterValue, float64(snapshot.Truncations))
}

// Handler returns an http.Handler that serves the exporter from a private
// registry in Prometheus exposition format.
func (p *PrometheusExporter) Handler() http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(p)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

var _ prometheus.Collector = (*PrometheusExporter)(nil)
