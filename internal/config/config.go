// Package config loads the barista configuration from a YAML file, the environment and .env files.
package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/w-029/DP-TemplatePattern/pkg/logger"
)

const envPrefix = "BARISTA"

var ErrInvalidConcurrency = errors.New("concurrency must not be negative")

// OrderConfig lists what is prepared when no beverage is given on the command line.
type OrderConfig struct {
	Beverages   []string `mapstructure:"beverages" yaml:"beverages"`
	Condiments  bool     `mapstructure:"condiments" yaml:"condiments"`
	Concurrency int      `mapstructure:"concurrency" yaml:"concurrency"`
}

// GraphConfig configures the DOT drawing of the prepared recipes.
type GraphConfig struct {
	Output  string `mapstructure:"output" yaml:"output"`
	Measure bool   `mapstructure:"measure" yaml:"measure"`
}

// Config wraps the entire barista configuration.
type Config struct {
	Log   logger.Config `mapstructure:"log" yaml:"log"`
	Order OrderConfig   `mapstructure:"order" yaml:"order"`
	Graph GraphConfig   `mapstructure:"graph" yaml:"graph"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("order.beverages", []string{"coffee"})
	v.SetDefault("order.condiments", true)
	v.SetDefault("order.concurrency", 1)
	v.SetDefault("graph.output", "")
	v.SetDefault("graph.measure", false)
}

// Load loads the config from the file path, falling back to defaults when the file does not exist.
// Environment variables prefixed with BARISTA_ override both, e.g. BARISTA_LOG_LEVEL=debug.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "unable to read config file %s", filePath)
			}
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	if cfg.Order.Concurrency < 0 {
		return nil, ErrInvalidConcurrency
	}

	return cfg, nil
}

// LoadDotEnv loads the given .env files into the environment. Missing files are ignored
// and variables already set are not overridden.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		err := godotenv.Load(file)
		if err != nil {
			return errors.Wrapf(err, "unable to load %s", file)
		}
	}

	return nil
}
