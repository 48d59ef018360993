package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "bech32", cfg.AddressRule)
	assert.Equal(t, "secret", cfg.AddressPrefix)
	assert.Equal(t, dbm.GoLevelDBBackend, cfg.Backend())
	assert.Equal(t, "offspring", cfg.DBName)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("OFFSPRING_ADDRESS_RULE", "basic")
	t.Setenv("OFFSPRING_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "basic", cfg.AddressRule)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("OFFSPRING_ADDRESS_PREFIX=cosmos\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("OFFSPRING_ADDRESS_PREFIX") })

	cfg, err := Load(viper.New(), envFile)
	require.NoError(t, err)
	assert.Equal(t, "cosmos", cfg.AddressPrefix)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "offspring.yaml")
	require.NoError(t, os.WriteFile(file, []byte("address-rule: basic\nhome: "+dir+"\ndb-backend: memdb\n"), 0o600))

	v := viper.New()
	v.Set(KeyConfig, file)
	cfg, err := Load(v, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "basic", cfg.AddressRule)
	assert.Equal(t, dir, cfg.Home)
	assert.Equal(t, dbm.MemDBBackend, cfg.Backend())

	v = viper.New()
	v.Set(KeyConfig, filepath.Join(dir, "nope.yaml"))
	_, err = Load(v, noEnvFile(t))
	require.ErrorContains(t, err, "read config file")
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", AddressRule: "bech32", Home: ".offspring", DBName: "offspring"}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"log level":    func(c *Config) { c.LogLevel = "loud" },
		"address rule": func(c *Config) { c.AddressRule = "base58" },
		"home":         func(c *Config) { c.Home = "" },
		"db name":      func(c *Config) { c.DBName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestGoAPI(t *testing.T) {
	cfg := Config{AddressRule: "basic"}
	api, err := cfg.GoAPI()
	require.NoError(t, err)
	addr, err := api.AddrValidate("secret1xyz")
	require.NoError(t, err)
	assert.Equal(t, "secret1xyz", addr.String())

	cfg = Config{AddressRule: "bech32", AddressPrefix: "secret"}
	api, err = cfg.GoAPI()
	require.NoError(t, err)
	_, err = api.AddrValidate("secret1xyz")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("field", "owner").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "field=owner")

	_, err = NewLogger(&buf, "loud")
	require.Error(t, err)
}
