package goCommon

import (
	"sync/atomic"

	"github.com/MrEthical07/goCommon/result"
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics counts failed results by kind and truncated error descriptions.
//
// Metrics implements [result.Observer]; [Builder.Build] installs it. All
// methods are safe for concurrent use and are no-ops on a nil or disabled
// Metrics.
type Metrics struct {
	enabled          bool
	trackTruncations bool
	failures         [result.NumKinds]paddedCounter
	truncations      paddedCounter
}

// MetricsSnapshot is a point-in-time copy of [Metrics].
type MetricsSnapshot struct {
	Failures    map[result.Kind]uint64
	Truncations uint64
}

// NewMetrics returns counters gated by cfg.
//
// NewMetrics does not mutate shared global state and can be used concurrently.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:          cfg.Enabled,
		trackTruncations: cfg.Enabled && cfg.TrackTruncations,
	}
}

// Enabled reports whether m records anything.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// TruncationsEnabled reports whether m records description truncations.
func (m *Metrics) TruncationsEnabled() bool {
	return m != nil && m.trackTruncations
}

// ObserveFailure counts one failed result of the given kind.
func (m *Metrics) ObserveFailure(kind result.Kind) {
	if m == nil || !m.enabled || !kind.Valid() {
		return
	}
	atomic.AddUint64(&m.failures[kind].value, 1)
}

// ObserveTruncation counts one truncated error description.
func (m *Metrics) ObserveTruncation() {
	if m == nil || !m.trackTruncations {
		return
	}
	atomic.AddUint64(&m.truncations.value, 1)
}

// Failures returns the number of failed results of the given kind.
func (m *Metrics) Failures(kind result.Kind) uint64 {
	if m == nil || !kind.Valid() {
		return 0
	}
	return atomic.LoadUint64(&m.failures[kind].value)
}

// Truncations returns the number of truncated error descriptions.
func (m *Metrics) Truncations() uint64 {
	if m == nil {
		return 0
	}
	return atomic.LoadUint64(&m.truncations.value)
}

// Snapshot copies the current counters.
//
// A disabled Metrics yields an empty, non-nil Failures map.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Failures: map[result.Kind]uint64{}}
	}

	s := MetricsSnapshot{
		Failures: make(map[result.Kind]uint64, result.NumKinds),
	}
	for _, kind := range result.Kinds() {
		s.Failures[kind] = atomic.LoadUint64(&m.failures[kind].value)
	}
	s.Truncations = atomic.LoadUint64(&m.truncations.value)
	return s
}

var _ result.Observer = (*Metrics)(nil)
