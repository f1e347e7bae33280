package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
defaults:
  currency: eur
log:
  level: debug
  format: json
`)

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Defaults.Currency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("ATM_LOG_LEVEL", "warn")
	t.Setenv("ATM_DEFAULTS_CURRENCY", "GBP")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "GBP", cfg.Defaults.Currency)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_InvalidCurrency(t *testing.T) {
	path := writeConfig(t, "defaults:\n  currency: dollars\n")

	_, err := loadConfig(viper.New(), path)
	assert.ErrorContains(t, err, "invalid defaults.currency")
}

func TestLoadConfig_ExpandsLogFile(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	path := writeConfig(t, "log:\n  file: ~/atm/atm.log\n")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "atm", "atm.log"), cfg.Log.File)
}

func TestNewRootCmd_Flags(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"config", "log-level", "currency"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	info, _, err := root.Find([]string{"info"})
	require.NoError(t, err)
	assert.Equal(t, "info", info.Name())
}
