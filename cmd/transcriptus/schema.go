package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/transcriptus/internal/database"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the MySQL table definitions used when database.enabled is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := database.Schema()
			if err != nil {
				return fmt.Errorf("database.Schema() > %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), schema)
			return err
		},
	}
}
