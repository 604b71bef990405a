// Package config loads linkcut CLI settings from defaults, an optional YAML
// file and LINKCUT_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultRunVerify   = false
	DefaultRunFailFast = false
	DefaultRunMaxRows  = 50

	DefaultBenchVertices = 100_000
	DefaultBenchSteps    = 200_000
	DefaultBenchSeed     = 1
	DefaultBenchShape    = "random"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration. Field tags use mapstructure for
// viper unmarshalling and validate for go-playground/validator.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Run     RunConfig     `mapstructure:"run"`
	Bench   BenchConfig   `mapstructure:"bench"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig selects slog's level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// RunConfig holds script execution knobs.
type RunConfig struct {
	Verify   bool `mapstructure:"verify"`
	FailFast bool `mapstructure:"fail_fast"`
	MaxRows  int  `mapstructure:"max_rows" validate:"gte=0"`
}

// BenchConfig describes the generated benchmark workload.
type BenchConfig struct {
	Vertices int    `mapstructure:"vertices" validate:"gte=2"`
	Steps    int    `mapstructure:"steps" validate:"gte=0"`
	Seed     int64  `mapstructure:"seed"`
	Shape    string `mapstructure:"shape" validate:"oneof=random forest path star binary caterpillar"`
}

// MetricsConfig says where metrics go after a run. Both may be empty.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
	Addr     string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

var validate = validator.New()

// Validate checks every field against its tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s=%v fails %q", ErrInvalidConfig, fe.Namespace(), fe.Value(), fe.Tag())
		}

		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
