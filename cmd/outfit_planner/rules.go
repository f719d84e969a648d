package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/observability"
	"github.com/jonathan/outfit-planner/internal/rules"
)

var rulesCommand = &cobra.Command{
	Use:   "rules",
	Short: "List the weather and occasion options",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintRules(rules.Default())
	},
}

func init() {
	rootCmd.AddCommand(rulesCommand)
}
