// Package cli implements the barista command line.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/w-029/DP-TemplatePattern/internal/config"
	"github.com/w-029/DP-TemplatePattern/pkg/logger"
)

const appName = "barista"

type app struct {
	configFile string
	debug      bool

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd creates the barista root command. Logs are written to logOut,
// recipe notifications to the command output.
func NewRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Prepare caffeine beverages with a fixed recipe",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(logOut)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "f", "barista.yaml", "config file to use")

	rootCmd.AddCommand(
		a.newBrewCmd(),
		a.newMenuCmd(),
	)

	return rootCmd
}

// init reads the .env file, the configuration and builds the logger.
func (a *app) init(logOut io.Writer) error {
	err := config.LoadDotEnv(".env")
	if err != nil {
		return err
	}

	a.cfg, err = config.Load(a.configFile)
	if err != nil {
		return errors.Wrap(err, "unable to load configuration")
	}

	if a.debug {
		a.cfg.Log.Level = logrus.DebugLevel.String()
	}

	a.log, err = logger.New(a.cfg.Log, logOut)
	if err != nil {
		return errors.Wrap(err, "unable to create logger")
	}

	a.log.WithField("file", a.configFile).Debug("configuration loaded")

	return nil
}
