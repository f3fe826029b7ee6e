// Package otel provides OpenTelemetry metric exporter bindings for goCommon
// failure counters.
//
// [NewOTelExporter] registers one Int64ObservableCounter for failed results
// (attribute "kind") and one for truncated descriptions. A single callback
// reads [goCommon.Runtime.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider. Callers supply the Meter.
//   - Mutate runtime state.
package otel
