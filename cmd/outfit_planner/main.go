// Package main provides the command-line interface for the outfit planner.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "outfit_planner",
	Short: "Outfit recommendations from your wardrobe",
	Long: `Outfit planner combines the available items of a wardrobe into outfits that suit the weather
and the occasion, then ranks them by color harmony and personal preference.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		configureLogging(cmd.ErrOrStderr(), verbose)
	},
}

// configureLogging installs the structured logger used by the library packages.
// slog.SetDefault redirects the log package through the handler at Info level,
// which the Warn threshold would drop, so the server's log output is pointed back at w.
func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
