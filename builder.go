package goCommon

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MrEthical07/goCommon/result"
)

// Builder assembles a [Runtime].
//
// Builder instances are intended to be configured during initialization and used once.
type Builder struct {
	config Config
	output io.Writer
	built  bool
}

// New returns a Builder holding [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
//
// WithConfig replaces the whole configuration; validation happens in Build.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithOutput sends log output to w instead of the configured stream.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// WithLogLevel overrides the configured log level.
func (b *Builder) WithLogLevel(level string) *Builder {
	b.config.Log.Level = level
	return b
}

// WithMetricsEnabled turns failure counting on or off.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, creates the logger and metrics, and
// installs them into the result package. A Builder builds once.
func (b *Builder) Build() (*Runtime, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(b.config.Log, b.output)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		config:  b.config,
		logger:  logger,
		metrics: NewMetrics(b.config.Metrics),
	}
	rt.restoreLogger = result.SetLogger(logger)
	if rt.metrics.Enabled() {
		rt.restoreObserver = result.SetObserver(rt.metrics)
	}

	b.built = true
	logger.Debug().
		Bool("metrics", rt.metrics.Enabled()).
		Str("format", b.config.Log.Format).
		Msg("gocommon runtime ready")
	return rt, nil
}

func newLogger(cfg LogConfig, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("%w: %w", ErrInvalidConfig, result.ErrOf(result.KindValue, err.Error()))
	}

	w := out
	if w == nil {
		switch cfg.Output {
		case "stdout":
			w = os.Stdout
		default:
			w = os.Stderr
		}
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Runtime owns the logger and metrics installed by [Builder.Build].
type Runtime struct {
	config  Config
	logger  zerolog.Logger
	metrics *Metrics

	restoreLogger   func()
	restoreObserver func()
	closeOnce       sync.Once
}

// Logger returns the runtime logger.
func (r *Runtime) Logger() *zerolog.Logger {
	return &r.logger
}

// Metrics returns the runtime counters. They are never nil.
func (r *Runtime) Metrics() *Metrics {
	return r.metrics
}

// MetricsSnapshot returns [Metrics.Snapshot] of the runtime metrics.
func (r *Runtime) MetricsSnapshot() MetricsSnapshot {
	return r.metrics.Snapshot()
}

// Config returns the configuration the runtime was built with.
func (r *Runtime) Config() Config {
	return r.config
}

// Close restores the logger and observer that were installed before Build,
// unless a later runtime has since replaced them. Runtimes whose lifetimes
// overlap should be closed in reverse build order. Close is idempotent.
func (r *Runtime) Close() error {
	r.closeOnce.Do(func() {
		if r.restoreObserver != nil {
			r.restoreObserver()
		}
		if r.restoreLogger != nil {
			r.restoreLogger()
		}
	})
	return nil
}
