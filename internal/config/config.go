// Package config loads the offspring host configuration from flags, a
// config file, the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/factorykit/offspring/internal/address"
	"github.com/factorykit/offspring/types"
)

// EnvPrefix is prepended to every environment variable, e.g. OFFSPRING_LOG_LEVEL.
const EnvPrefix = "OFFSPRING"

// Keys, shared by flags, config files and the environment.
const (
	KeyConfig        = "config"
	KeyLogLevel      = "log-level"
	KeyAddressRule   = "address-rule"
	KeyAddressPrefix = "address-prefix"
	KeyHome          = "home"
	KeyDBBackend     = "db-backend"
	KeyDBName        = "db-name"
)

type Config struct {
	// zerolog level name
	LogLevel string
	// "bech32" or "basic"
	AddressRule string
	// Human readable part required by the bech32 rule. Empty accepts any.
	AddressPrefix string
	// Directory holding the contract database
	Home      string
	DBBackend string
	DBName    string
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, zerolog.LevelInfoValue)
	v.SetDefault(KeyAddressRule, address.RuleBech32)
	v.SetDefault(KeyAddressPrefix, "secret")
	v.SetDefault(KeyHome, ".offspring")
	v.SetDefault(KeyDBBackend, string(dbm.GoLevelDBBackend))
	v.SetDefault(KeyDBName, "offspring")
}

// Load reads the configuration from v. Before that the given .env files
// (or ./.env when none are given) are loaded into the process environment;
// missing files are skipped.
func Load(v *viper.Viper, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		LogLevel:      v.GetString(KeyLogLevel),
		AddressRule:   v.GetString(KeyAddressRule),
		AddressPrefix: v.GetString(KeyAddressPrefix),
		Home:          v.GetString(KeyHome),
		DBBackend:     v.GetString(KeyDBBackend),
		DBName:        v.GetString(KeyDBName),
	}
	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	if _, err := address.ByName(c.AddressRule, c.AddressPrefix); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyAddressRule, err)
	}
	if c.Home == "" {
		return fmt.Errorf("%s is required", KeyHome)
	}
	if c.DBName == "" {
		return fmt.Errorf("%s is required", KeyDBName)
	}
	return nil
}

// GoAPI builds the host API for the configured address rule.
func (c *Config) GoAPI() (types.GoAPI, error) {
	rule, err := address.ByName(c.AddressRule, c.AddressPrefix)
	if err != nil {
		return types.GoAPI{}, err
	}
	return types.GoAPI{ValidateAddress: rule}, nil
}

// Backend returns the configured cometbft-db backend.
func (c *Config) Backend() dbm.BackendType {
	return dbm.BackendType(c.DBBackend)
}

// NewLogger returns a console logger writing to w at the given level.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
