// Package goCommon wires the result and flagset foundation packages into a
// running process: structured logging for the fatal path, failure metrics, and
// YAML configuration.
//
// The core packages ([github.com/MrEthical07/goCommon/result] and
// [github.com/MrEthical07/goCommon/flagset]) work without this package. A
// [Runtime] built through [Builder.Build] installs a zerolog logger into the
// result fatal path and a [Metrics] observer that counts failed results by
// kind.
//
// # Architecture boundaries
//
// goCommon is the ambient surface. It exposes [Config], [Builder], [Runtime],
// and [Metrics]. Exporters under metrics/export read [MetricsSnapshot] values
// and never touch counters directly.
//
// # What this package must NOT do
//
//   - Be imported by result or flagset (no import cycles).
//   - Register metrics in a global registry.
//   - Log anything on the hot path of result or flagset operations.
package goCommon
