// Package result provides the error taxonomy and the typed result value used for
// explicit fallible computation across goCommon.
//
// An [Error] is a kind from a closed set of 17 plus a message. A [Result] holds
// either a success value or an [Error], never both; [Status] is the variant with
// no success payload. Failures are ordinary values: callers inspect them,
// transform them with [Map], [MapErr], [AndThen] and [OrElse], or forward them.
//
// # Fatal escape hatches
//
// [Unwrap] and [Verify] (and [Result.Value] / [Result.Err] on the wrong
// variant) log one event and terminate the process with exit status
// [AbortExitCode]. They are for invariants the caller has already proven and
// must never be applied to results influenced by untrusted input.
//
// # Architecture boundaries
//
// Describe output is assembled by internal/format into pooled scratch buffers;
// callers always receive owned strings. The logger and the failure observer are
// swapped atomically and may be replaced while other goroutines build results.
//
// # What this package must NOT do
//
//   - Import flagset, goCommon, or any exporter package.
//   - Log anything outside the fatal path.
//   - Retry or recover failures on the caller's behalf.
package result
