// Package logger builds the logrus logger used by the barista command.
package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the logging configuration.
type Config struct {
	Level      string `mapstructure:"level" yaml:"level"`             // debug, info, warn, error
	OutputFile string `mapstructure:"file" yaml:"file"`               // optional, logs go to stderr only when empty
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`       // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"` // rotated files kept
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`         // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// New creates a logger writing to console, and to a rotated file when config.OutputFile is set.
// Logs never go to stdout, which carries the recipe notifications.
func New(config Config, console io.Writer) (*logrus.Logger, error) {
	if console == nil {
		console = os.Stderr
	}

	level := logrus.InfoLevel
	if config.Level != "" {
		var err error
		level, err = logrus.ParseLevel(config.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", config.Level)
		}
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	if config.OutputFile == "" {
		log.SetOutput(console)

		return log, nil
	}

	fileWriter := &lumberjack.Logger{
		Filename:   config.OutputFile,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
	log.SetOutput(io.MultiWriter(console, fileWriter))

	return log, nil
}
