package cmd

import (
	"github.com/spf13/cobra"

	"github.com/factorykit/offspring/schema"
)

func SchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the instantiate message.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(schema.InstantiateMsg())
			return err
		},
	}
}
