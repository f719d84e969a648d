package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/observability"
	"github.com/jonathan/outfit-planner/internal/types"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Check whether a specific combination of items works",
	Long:  `Runs the availability, weather, occasion, and color checks against the given item IDs and scores the combination when it passes.`,
	RunE:  runCheckCmd,
}

var (
	checkIDs      []int
	checkWeather  string
	checkOccasion string
	checkColors   []string
	checkStyles   []string
	checkJSON     bool
	checkSource   sourceFlags
)

func init() {
	checkCommand.Flags().IntSliceVar(&checkIDs, "ids", nil, "Item IDs to combine (comma-separated)")
	checkCommand.Flags().StringVarP(&checkWeather, "weather", "w", "", "Weather: hot, warm, cool, cold")
	checkCommand.Flags().StringVarP(&checkOccasion, "occasion", "o", "", "Occasion: formal, business, casual, sporty, party")
	checkCommand.Flags().StringSliceVar(&checkColors, "colors", nil, "Preferred colors (comma-separated)")
	checkCommand.Flags().StringSliceVar(&checkStyles, "styles", nil, "Preferred styles (comma-separated)")
	checkCommand.Flags().BoolVar(&checkJSON, "json", false, "Print the result as JSON")
	checkSource.register(checkCommand)

	_ = checkCommand.MarkFlagRequired("ids")
	rootCmd.AddCommand(checkCommand)
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("weather") {
		cfg.Weather = checkWeather
	}
	if flags.Changed("occasion") {
		cfg.Occasion = checkOccasion
	}
	if flags.Changed("colors") {
		cfg.PreferredColors = checkColors
	}
	if flags.Changed("styles") {
		cfg.PreferredStyles = checkStyles
	}
	checkSource.apply(cmd, &cfg)

	cfg, err = finishConfig(cfg)
	if err != nil {
		return err
	}
	if cfg.Weather == "" || cfg.Occasion == "" {
		return fmt.Errorf("--weather and --occasion are required (via flag or config)")
	}

	wardrobe, database, err := openWardrobe(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer func() { _ = database.Close() }()
	}

	items, missing := wardrobe.Snapshot().Lookup(checkIDs)
	if len(missing) > 0 {
		return fmt.Errorf("unknown item ids: %v", missing)
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	result := engine.Check(items, types.Weather(cfg.Weather), types.Occasion(cfg.Occasion), cfg.Preferences())

	if checkJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCheck(result.Items, result.Validation, result.Score)
	return nil
}
