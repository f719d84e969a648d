package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/types"
)

var availabilityCommand = &cobra.Command{
	Use:   "availability",
	Short: "Mark an item available or unavailable",
	Long: `Updates an item's availability in the configured wardrobe file or database.

Use --available=false with an optional --reason (default "in laundry") to take an item out of rotation.`,
	RunE: runAvailabilityCmd,
}

var (
	availID     int
	available   bool
	availReason string
	availSource sourceFlags
)

func init() {
	availabilityCommand.Flags().IntVar(&availID, "id", 0, "Item ID")
	availabilityCommand.Flags().BoolVar(&available, "available", true, "Whether the item is available")
	availabilityCommand.Flags().StringVar(&availReason, "reason", "", "Why the item is unavailable")
	availSource.register(availabilityCommand)

	_ = availabilityCommand.MarkFlagRequired("id")
	rootCmd.AddCommand(availabilityCommand)
}

func runAvailabilityCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	availSource.apply(cmd, &cfg)
	if cfg, err = finishConfig(cfg); err != nil {
		return err
	}
	if cfg.Wardrobe == "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("--wardrobe or --database-url is required to update availability")
	}

	wardrobe, database, err := openWardrobe(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer func() { _ = database.Close() }()
	}

	var item types.Item
	if available {
		item, err = wardrobe.MarkAvailable(availID)
	} else {
		item, err = wardrobe.MarkUnavailable(availID, availReason)
	}
	if err != nil {
		return err
	}

	if database != nil {
		err = database.SetAvailability(ctx, item.ID, item.Available, item.UnavailableReason)
	} else {
		err = inventory.WriteWardrobe(cfg.Wardrobe, wardrobe)
	}
	if err != nil {
		return err
	}

	if item.Available {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s %s is now available\n", item.ID, item.Color, item.Name)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s %s is now unavailable (%s)\n", item.ID, item.Color, item.Name, item.UnavailableReason)
	}
	return nil
}
