package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	goCommon "github.com/MrEthical07/goCommon"
	"github.com/MrEthical07/goCommon/metrics/export/internaldefs"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

type metricsSource interface {
	MetricsSnapshot() goCommon.MetricsSnapshot
}

type OTelExporter struct {
	source       metricsSource
	registration metric.Registration
	failures     metric.Int64ObservableCounter
	truncations  metric.Int64ObservableCounter
}

func NewOTelExporter(meter metric.Meter, rt *goCommon.Runtime) (*OTelExporter, error) {
	if rt == nil {
		return nil, ErrNilSource
	}
	return NewOTelExporterFromSource(meter, rt)
}

func NewOTelExporterFromSource(meter metric.Meter, source metricsSource) (*OTelExporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	exporter := &OTelExporter{source: source}

	failures, err := meter.Int64ObservableCounter(
		internaldefs.Failures.Name,
		metric.WithDescription(internaldefs.Failures.Help),
	)
	if err != nil {
		return nil, fmt.Errorf("create observable counter %s: %w", internaldefs.Failures.Name, err)
	}
	exporter.failures = failures

	truncations, err := meter.Int64ObservableCounter(
		internaldefs.Truncations.Name,
		metric.WithDescription(internaldefs.Truncations.Help),
	)
	if err != nil {
		return nil, fmt.Errorf("create observable counter %s: %w", internaldefs.Truncations.Name, err)
	}
	exporter.truncations = truncations

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		snapshot := exporter.source.MetricsSnapshot()
		for _, s := range internaldefs.FailureSamples(snapshot.Failures) {
			observer.ObserveInt64(exporter.failures, int64(s.Value),
				metric.WithAttributes(attribute.String(internaldefs.KindLabel, s.Kind)))
		}
		observer.ObserveInt64(exporter.truncations, int64(snapshot.Truncations))
		return nil
	}, failures, truncations)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration
	return exporter, nil
}

func (e *OTelExporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
