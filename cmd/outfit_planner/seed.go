package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/db"
	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/schemas"
)

var seedCommand = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample wardrobe to a file or database",
	Long: `Writes the built-in 80-item sample wardrobe either to a JSON/YAML file (--out) or,
after applying migrations, to the database (--database-url).`,
	RunE: runSeedCmd,
}

var (
	seedOut         string
	seedDatabaseURL string
)

func init() {
	seedCommand.Flags().StringVar(&seedOut, "out", "", "Wardrobe file to write (.json, .yaml, .yml)")
	seedCommand.Flags().StringVar(&seedDatabaseURL, "database-url", "", "PostgreSQL connection URL")
	seedCommand.MarkFlagsMutuallyExclusive("out", "database-url")
	seedCommand.MarkFlagsOneRequired("out", "database-url")
	rootCmd.AddCommand(seedCommand)
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	sample := inventory.SampleWardrobe()

	if seedOut != "" {
		if err := inventory.WriteWardrobe(seedOut, sample); err != nil {
			return err
		}
		if inventory.FormatFor(seedOut) == inventory.FormatJSON {
			warnIfInvalid(cmd, schemas.WardrobeSchema, seedOut)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d items to %s\n", sample.Len(), seedOut)
		return nil
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, seedDatabaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if err := database.RunMigrations(ctx); err != nil {
		return err
	}
	count, err := database.SaveWardrobe(ctx, sample)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d items\n", count)
	return nil
}
