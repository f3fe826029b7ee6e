package goCommon

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/MrEthical07/goCommon/result"
)

// Config is the runtime configuration read by [Builder.Build].
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the zerolog logger installed into the result fatal path.
type LogConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	// Format is "json" or "console".
	Format string `yaml:"format" validate:"required,oneof=json console"`
	// Output is "stderr" or "stdout". [Builder.WithOutput] overrides it.
	Output string `yaml:"output" validate:"required,oneof=stderr stdout"`
}

// MetricsConfig defines a public type used by goCommon APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable.
type MetricsConfig struct {
	Enabled          bool `yaml:"enabled"`
	TrackTruncations bool `yaml:"track_truncations"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Metrics: MetricsConfig{
			Enabled:          true,
			TrackTruncations: true,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks c. Failures wrap [ErrInvalidConfig] and a
// [result.KindValue] error naming the first offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("%s: %q fails %s", fe.Namespace(), fe.Value(), tagText(fe))
		return fmt.Errorf("%w: %w", ErrInvalidConfig, result.ErrOf(result.KindValue, msg))
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, result.ErrOf(result.KindValue, err.Error()))
}

func tagText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// LoadConfig reads a YAML file over [DefaultConfig] and validates the result.
// Read failures carry [result.KindOS], decode failures [result.KindSyntax].
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", result.ErrOf(result.KindOS, err.Error()))
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over [DefaultConfig]. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", result.ErrOf(result.KindSyntax, strings.TrimPrefix(err.Error(), "yaml: ")))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
