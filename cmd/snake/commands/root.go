package commands

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake plays the classic snake game in your terminal",
	Version:           version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error { return setupLogging() },
	RunE: func(c *cobra.Command, args []string) error {
		startExporter()
		return play()
	},
}

var (
	logFile  string
	logLevel = config.LogLevel
	seed     = config.Seed
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file, logs are discarded when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", seed, "seed for food placement, 0 seeds from the clock")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupLogging keeps logrus off the terminal, which termbox owns while the
// game runs.
func setupLogging() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(ioutil.Discard)
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "unable to open log file")
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(f)
	return nil
}
