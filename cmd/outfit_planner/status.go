package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/observability"
)

var statusCommand = &cobra.Command{
	Use:   "status",
	Short: "Show wardrobe availability and composition",
	RunE:  runStatusCmd,
}

var (
	statusJSON   bool
	statusSource sourceFlags
)

func init() {
	statusCommand.Flags().BoolVar(&statusJSON, "json", false, "Print the statistics as JSON")
	statusSource.register(statusCommand)
	rootCmd.AddCommand(statusCommand)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	statusSource.apply(cmd, &cfg)
	if cfg, err = finishConfig(cfg); err != nil {
		return err
	}

	wardrobe, database, err := openWardrobe(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer func() { _ = database.Close() }()
	}

	stats := wardrobe.Stats()
	if statusJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(stats)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintWardrobeStatus(stats)
	printer.PrintUnavailable(stats)
	return nil
}
