package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/config"
	"github.com/jonathan/outfit-planner/internal/observability"
	"github.com/jonathan/outfit-planner/internal/schemas"
	"github.com/jonathan/outfit-planner/internal/types"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend outfits for the given weather and occasion",
	Long: `Builds every valid outfit from the available items, scores each one, and prints the best matches.

Weather is one of hot, warm, cool, cold. Occasion is one of formal, business, casual, sporty, party.`,
	RunE: runRecommendCmd,
}

var (
	recWeather     string
	recOccasion    string
	recColors      []string
	recStyles      []string
	recMaxResults  int
	recSingleBases int
	recDoubleBases int
	recParallel    bool
	recStrict      bool
	recJSON        bool
	recOut         string
	recSource      sourceFlags
)

func init() {
	recommendCommand.Flags().StringVarP(&recWeather, "weather", "w", "", "Weather: hot, warm, cool, cold")
	recommendCommand.Flags().StringVarP(&recOccasion, "occasion", "o", "", "Occasion: formal, business, casual, sporty, party")
	recommendCommand.Flags().StringSliceVar(&recColors, "colors", nil, "Preferred colors (comma-separated)")
	recommendCommand.Flags().StringSliceVar(&recStyles, "styles", nil, "Preferred styles (comma-separated)")
	recommendCommand.Flags().IntVarP(&recMaxResults, "max-results", "n", 0, "Number of recommendations (1-20, default 5)")
	recommendCommand.Flags().IntVar(&recSingleBases, "single-accessory-bases", 0, "Top base outfits extended with one accessory (default 10)")
	recommendCommand.Flags().IntVar(&recDoubleBases, "double-accessory-bases", 0, "Top base outfits extended with two accessories (default 5)")
	recommendCommand.Flags().BoolVar(&recParallel, "parallel", false, "Generate independent stages concurrently")
	recommendCommand.Flags().BoolVar(&recStrict, "strict", false, "Reject unrecognized weather or occasion values")
	recommendCommand.Flags().BoolVar(&recJSON, "json", false, "Print the recommendation set as JSON")
	recommendCommand.Flags().StringVar(&recOut, "out", "", "Also write the recommendation set as JSON to this file")
	recSource.register(recommendCommand)

	rootCmd.AddCommand(recommendCommand)
}

func runRecommendCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	flags := cmd.Flags()
	if flags.Changed("weather") {
		cfg.Weather = recWeather
	}
	if flags.Changed("occasion") {
		cfg.Occasion = recOccasion
	}
	if flags.Changed("colors") {
		cfg.PreferredColors = recColors
	}
	if flags.Changed("styles") {
		cfg.PreferredStyles = recStyles
	}
	if flags.Changed("max-results") {
		cfg.MaxResults = recMaxResults
	}
	if flags.Changed("single-accessory-bases") {
		cfg.SingleAccessoryBases = recSingleBases
	}
	if flags.Changed("double-accessory-bases") {
		cfg.DoubleAccessoryBases = recDoubleBases
	}
	if flags.Changed("parallel") {
		cfg.Parallel = recParallel
	}
	if flags.Changed("strict") {
		cfg.Strict = recStrict
	}
	recSource.apply(cmd, &cfg)

	// Step 3: Apply defaults and validate
	cfg, err = finishConfig(cfg)
	if err != nil {
		return err
	}
	if cfg.Weather == "" {
		return fmt.Errorf("--weather is required (via flag or config)")
	}
	if cfg.Occasion == "" {
		return fmt.Errorf("--occasion is required (via flag or config)")
	}

	// Step 4: Run the query
	wardrobe, database, err := openWardrobe(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer func() { _ = database.Close() }()
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	query := queryFromConfig(cfg)
	set, err := engine.Recommend(ctx, wardrobe.Snapshot(), query, nil)
	if err != nil {
		return err
	}

	if database != nil {
		if err := database.SaveRecommendationSet(ctx, set); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save recommendation history: %v\n", err)
		}
	}

	// Step 5: Output
	if recOut != "" {
		if err := writeRecommendations(recOut, set); err != nil {
			return err
		}
		warnIfInvalid(cmd, schemas.RecommendationsSchema, recOut)
	}

	if recJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(set)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintQuery(query)
	printer.PrintRecommendations(set)
	return nil
}

func queryFromConfig(cfg config.Config) types.Query {
	return types.Query{
		Weather:     types.Weather(cfg.Weather),
		Occasion:    types.Occasion(cfg.Occasion),
		Preferences: cfg.Preferences(),
		MaxResults:  cfg.MaxResults,
	}
}

func writeRecommendations(path string, set *types.RecommendationSet) error {
	content, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	return nil
}

// warnIfInvalid validates a written file against its schema. Problems are reported, not returned.
func warnIfInvalid(cmd *cobra.Command, schemaName, path string) {
	schemaPath := schemas.ResolveSchemaPath(schemaName)
	if schemaPath == "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: schema %s not found, skipping validation\n", schemaName)
		return
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s does not match %s: %v\n", path, schemaName, err)
	}
}
