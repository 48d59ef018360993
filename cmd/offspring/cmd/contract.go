package cmd

import (
	"github.com/spf13/cobra"

	"github.com/factorykit/offspring/internal/storage"
	"github.com/factorykit/offspring/types"
)

func InstantiateCommand(a *app) *cobra.Command {
	var sender, contractAddr, codeHash string
	command := &cobra.Command{
		Use:   "instantiate <file|->",
		Short: "Instantiate the offspring in the local store and print the response.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			return a.withStore(func(store storage.KVStore) error {
				res, err := a.vm.Instantiate(env(contractAddr, codeHash), types.MessageInfo{Sender: sender}, msg, store, nil)
				if err != nil {
					return err
				}
				return printJSON(cmd, res)
			})
		},
	}
	command.Flags().StringVar(&sender, "sender", "", "Address instantiating the contract, usually the factory")
	command.Flags().StringVar(&contractAddr, "contract-address", "", "Address of the new offspring")
	command.Flags().StringVar(&codeHash, "code-hash", "", "Code hash of the offspring")
	_ = command.MarkFlagRequired("contract-address")
	return command
}

func ExecuteCommand(a *app) *cobra.Command {
	var sender string
	command := &cobra.Command{
		Use:   "execute <json>",
		Short: "Run an execute message, e.g. '{\"increment\":{}}', and print the response.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store storage.KVStore) error {
				info, err := a.vm.Info(store)
				if err != nil {
					return err
				}
				e := env(info.Address, "")
				res, err := a.vm.Execute(e, types.MessageInfo{Sender: sender}, []byte(args[0]), store, nil)
				if err != nil {
					return err
				}
				return printJSON(cmd, res)
			})
		},
	}
	command.Flags().StringVar(&sender, "sender", "", "Address sending the message")
	_ = command.MarkFlagRequired("sender")
	return command
}

func StateCommand(a *app) *cobra.Command {
	var raw bool
	command := &cobra.Command{
		Use:   "state",
		Short: "Print what the offspring has stored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(store storage.KVStore) error {
				if raw {
					entries := storage.Dump(store)
					keys := make([]string, 0, len(entries))
					for _, e := range entries {
						keys = append(keys, string(e.Key))
					}
					return printJSON(cmd, keys)
				}
				info, err := a.vm.Info(store)
				if err != nil {
					return err
				}
				return printJSON(cmd, info)
			})
		},
	}
	command.Flags().BoolVar(&raw, "keys", false, "List the raw storage keys instead")
	return command
}
