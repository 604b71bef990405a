package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".linkcut"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. LINKCUT_BENCH_SEED.
const envPrefix = "LINKCUT"

// envKeySeparator replaces "." of nested keys in environment variable names.
const envKeySeparator = "_"

// Load reads configuration from defaults, the config file and the
// environment, in increasing priority. An explicit configPath must exist;
// otherwise .linkcut.yaml is looked up in the working directory and $HOME
// and may be absent.
func Load(configPath string) (*Config, *viper.Viper, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, v, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetDefault("run.verify", DefaultRunVerify)
	v.SetDefault("run.fail_fast", DefaultRunFailFast)
	v.SetDefault("run.max_rows", DefaultRunMaxRows)

	v.SetDefault("bench.vertices", DefaultBenchVertices)
	v.SetDefault("bench.steps", DefaultBenchSteps)
	v.SetDefault("bench.seed", DefaultBenchSeed)
	v.SetDefault("bench.shape", DefaultBenchShape)

	v.SetDefault("metrics.textfile", "")
	v.SetDefault("metrics.addr", "")
}
