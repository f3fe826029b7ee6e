package goCommon

import (
	"strings"
	"sync"
	"testing"

	"github.com/MrEthical07/goCommon/result"
)

func TestMetricsDisabledNoIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false, TrackTruncations: true})
	m.ObserveFailure(result.KindValue)
	m.ObserveTruncation()

	if got := m.Failures(result.KindValue); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := m.Truncations(); got != 0 {
		t.Fatalf("expected 0 truncations, got %d", got)
	}
	if s := m.Snapshot(); s.Failures == nil || len(s.Failures) != 0 {
		t.Fatalf("disabled snapshot must be empty and non-nil, got %v", s.Failures)
	}
}

func TestMetricsEnabledIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.ObserveFailure(result.KindKey)
	m.ObserveFailure(result.KindKey)
	m.ObserveFailure(result.KindKey)
	m.ObserveFailure(result.Kind(200))

	if got := m.Failures(result.KindKey); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := m.Failures(result.Kind(200)); got != 0 {
		t.Fatalf("invalid kind must not count, got %d", got)
	}
}

func TestMetricsTruncationsGated(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, TrackTruncations: false})
	m.ObserveTruncation()
	if m.TruncationsEnabled() || m.Truncations() != 0 {
		t.Fatal("truncations must not be tracked when disabled")
	}

	m = NewMetrics(MetricsConfig{Enabled: true, TrackTruncations: true})
	m.ObserveTruncation()
	if m.Truncations() != 1 {
		t.Fatalf("expected 1 truncation, got %d", m.Truncations())
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveFailure(result.KindValue)
	m.ObserveTruncation()
	if m.Enabled() || m.Failures(result.KindValue) != 0 || m.Truncations() != 0 {
		t.Fatal("nil metrics must read as zero")
	}
	if s := m.Snapshot(); s.Failures == nil {
		t.Fatal("nil metrics snapshot must have a non-nil map")
	}
}

func TestMetricsConcurrentIncrementSafe(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, TrackTruncations: true})

	const goroutines = 32
	const perG = 4000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m.ObserveFailure(result.KindTimeout)
				m.ObserveTruncation()
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines * perG)
	if got := m.Failures(result.KindTimeout); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
	if got := m.Truncations(); got != want {
		t.Fatalf("expected %d truncations, got %d", want, got)
	}
}

func TestMetricsSnapshotCoversEveryKind(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.ObserveFailure(result.KindOS)

	s := m.Snapshot()
	if len(s.Failures) != result.NumKinds {
		t.Fatalf("expected %d kinds, got %d", result.NumKinds, len(s.Failures))
	}
	if s.Failures[result.KindOS] != 1 || s.Failures[result.KindValue] != 0 {
		t.Fatalf("unexpected snapshot: %v", s.Failures)
	}
}

func TestMetricsAsResultObserver(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, TrackTruncations: true})
	restore := result.SetObserver(m)
	defer restore()

	_ = result.Fail[int](result.ErrOf(result.KindZeroDivision, "division by zero"))
	_ = result.Failure(result.ErrOf(result.KindZeroDivision, "again"))
	_ = result.ErrOf(result.KindValue, strings.Repeat("x", 300)).Describe()

	if got := m.Failures(result.KindZeroDivision); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := m.Truncations(); got != 1 {
		t.Fatalf("expected 1 truncation, got %d", got)
	}
}
