// Package prometheus provides a Prometheus collector for goCommon metrics.
//
// [NewPrometheusExporter] accepts a [goCommon.Runtime] and implements
// [prometheus.Collector]. Failed results are exported as
// gocommon_result_failures_total{kind="..."} and truncated descriptions as
// gocommon_describe_truncations_total. [PrometheusExporter.Handler] serves
// the collector from a private registry.
//
// # What this package must NOT do
//
//   - Register metrics in the global Prometheus registry. Callers mount the
//     Handler or register the collector themselves.
//   - Mutate runtime state.
package prometheus
