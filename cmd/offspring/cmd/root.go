package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/factorykit/offspring"
	"github.com/factorykit/offspring/internal/config"
	"github.com/factorykit/offspring/internal/storage"
	"github.com/factorykit/offspring/types"
)

// app is the state shared by the commands of one root command.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger zerolog.Logger
	vm     *offspring.VM
}

func RootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "offspring",
		Short:             "Validate and run offspring contracts against a local store",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyConfig, "", "Path to the config file, e.g. /path/to/config.yaml")
	flags.String(config.KeyLogLevel, "info", "Log level, options: debug, info, warn, error")
	flags.String(config.KeyAddressRule, "bech32", "Address rule, options: bech32, basic")
	flags.String(config.KeyAddressPrefix, "secret", "Bech32 prefix addresses must carry, empty accepts any")
	flags.String(config.KeyHome, ".offspring", "Directory of the contract database")
	flags.String(config.KeyDBBackend, "goleveldb", "Database backend, options: goleveldb, memdb")

	for _, key := range []string{
		config.KeyConfig,
		config.KeyLogLevel,
		config.KeyAddressRule,
		config.KeyAddressPrefix,
		config.KeyHome,
		config.KeyDBBackend,
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(ValidateCommand(a))
	rootCmd.AddCommand(SchemaCommand())
	rootCmd.AddCommand(InstantiateCommand(a))
	rootCmd.AddCommand(ExecuteCommand(a))
	rootCmd.AddCommand(StateCommand(a))
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	api, err := cfg.GoAPI()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.vm = offspring.NewVM(api, offspring.WithLogger(logger))
	logger.Debug().
		Str("address_rule", cfg.AddressRule).
		Str("address_prefix", cfg.AddressPrefix).
		Str("home", cfg.Home).
		Msg("Configuration loaded")
	return nil
}

// withStore opens the contract database for the duration of fn.
func (a *app) withStore(fn func(store storage.KVStore) error) error {
	if err := os.MkdirAll(a.cfg.Home, 0o755); err != nil {
		return err
	}
	store, err := storage.Open(a.cfg.DBName, a.cfg.Backend(), a.cfg.Home)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.logger.Error().Err(err).Msg("closing database")
		}
	}()
	return fn(store)
}

func env(contractAddr, codeHash string) types.Env {
	now := time.Now()
	return types.Env{
		Block: types.BlockInfo{
			Height:  uint64(now.Unix()),
			Time:    types.Uint64(now.UnixNano()),
			ChainID: "local",
		},
		Contract: types.EnvContractInfo{
			Address:  contractAddr,
			CodeHash: codeHash,
		},
	}
}

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	bz, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return bz, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
