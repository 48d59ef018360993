package cmd

import (
	"github.com/spf13/cobra"

	"github.com/factorykit/offspring/types"
)

func ValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->",
		Short: "Validate an instantiate message and print the resulting config.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			cfg, err := a.vm.ValidateInstantiateMsg(msg)
			if err != nil {
				if ve := types.ToValidationError(err); ve != nil {
					if perr := printJSON(cmd, map[string]any{"error": ve}); perr != nil {
						return perr
					}
				}
				return err
			}
			return printJSON(cmd, cfg)
		},
	}
}
