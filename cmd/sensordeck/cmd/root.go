package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "sensordeck",
	Short: "SensorDeck - themeable sensor panel toolkit",
	Long: `SensorDeck renders themeable, skinnable sensor panels.

Examples:
  sensordeck view               # Launch the demo viewer
  sensordeck themes             # List theme presets
  sensordeck skins              # List registered skins`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the console logger at the level picked by
// --log-level; --verbose forces debug.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	console := zerolog.NewConsoleWriter()
	console.Out = os.Stderr
	console.TimeFormat = time.RFC3339
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "shorthand for --log-level debug")
}
