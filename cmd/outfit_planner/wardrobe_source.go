package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/config"
	"github.com/jonathan/outfit-planner/internal/db"
	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/pipeline"
)

// sourceFlags are the wardrobe-location flags shared by most commands
type sourceFlags struct {
	wardrobe    string
	databaseURL string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.wardrobe, "wardrobe", "", "Path to a JSON or YAML wardrobe file (defaults to OUTFIT_WARDROBE)")
	cmd.Flags().StringVar(&f.databaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
}

// apply overrides the wardrobe location in cfg. The two locations are
// mutually exclusive, so setting one clears the other.
func (f *sourceFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("wardrobe") {
		cfg.Wardrobe = f.wardrobe
		cfg.DatabaseURL = ""
	}
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL = f.databaseURL
		cfg.Wardrobe = ""
	}
}

// loadConfig reads --config when given. The result still needs flag overrides
// and finishConfig.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if configPath == "" {
		return cfg, nil
	}

	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	slog.Debug("loaded config", "path", configPath)
	return *loaded, nil
}

// finishConfig fills unset values from the environment and built-in defaults, then validates.
func finishConfig(cfg config.Config) (config.Config, error) {
	env := config.FromEnv()
	if cfg.Wardrobe != "" || cfg.DatabaseURL != "" {
		env.Wardrobe, env.DatabaseURL = "", ""
	}
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(config.Config{Port: config.DefaultPort})
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openWardrobe loads the wardrobe from the configured file or database, falling
// back to the built-in sample. The returned database is nil unless one is configured;
// the caller closes it.
func openWardrobe(ctx context.Context, cfg config.Config) (*inventory.Wardrobe, *db.DB, error) {
	switch {
	case cfg.Wardrobe != "":
		w, err := inventory.LoadWardrobe(cfg.Wardrobe)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("loaded wardrobe file", "path", cfg.Wardrobe, "items", w.Len())
		return w, nil, nil

	case cfg.DatabaseURL != "":
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		w, err := database.LoadWardrobe(ctx)
		if err != nil {
			_ = database.Close()
			return nil, nil, err
		}
		slog.Debug("loaded wardrobe from database", "items", w.Len())
		return w, database, nil

	default:
		slog.Info("no wardrobe configured, using the sample wardrobe")
		return inventory.SampleWardrobe(), nil, nil
	}
}

func newEngine(cfg config.Config) (*pipeline.Engine, error) {
	limits := cfg.Limits()
	return pipeline.NewEngine(pipeline.Options{
		Weights:  cfg.Weights,
		Limits:   &limits,
		Parallel: cfg.Parallel,
		Strict:   cfg.Strict,
		Logger:   slog.Default(),
	})
}
