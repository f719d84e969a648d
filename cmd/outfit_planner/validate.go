package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate <wardrobe-file>",
	Short: "Validate a wardrobe file against the wardrobe schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateCmd,
}

var validateSchema string

func init() {
	validateCommand.Flags().StringVar(&validateSchema, "schema", "", "Path to the wardrobe JSON schema (default: schemas/wardrobe.schema.json)")
	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(cmd *cobra.Command, args []string) error {
	path := args[0]

	schemaPath := validateSchema
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.WardrobeSchema)
		if schemaPath == "" {
			return fmt.Errorf("schema %s not found; pass --schema", schemas.WardrobeSchema)
		}
	}

	if err := schemas.ValidateWardrobeFile(schemaPath, path); err != nil {
		return err
	}

	// Loading catches duplicate IDs, which the schema cannot express
	wardrobe, err := inventory.LoadWardrobe(path)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d items)\n", path, wardrobe.Len())
	return nil
}
