package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/atm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_OpensStartingAccount(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.File = filepath.Join(t.TempDir(), "atm.log")
	cfg.Log.Format = "json"
	cfg.Log.Level = "info"

	a, cleanup, err := NewApp(cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, a.SessionID)

	ok, err := a.Service.Teller.VerifyPIN("1234")
	require.NoError(t, err)
	assert.True(t, ok)

	msg, err := a.Service.Teller.CheckBalance()
	require.NoError(t, err)
	assert.Equal(t, "Your current balance is: $1000.00", msg)

	cleanup()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), a.SessionID)
	assert.Contains(t, string(data), "session started")
}

func TestNewApp_SessionsDoNotShareState(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "disabled"

	first, cleanupFirst, err := NewApp(cfg)
	require.NoError(t, err)
	defer cleanupFirst()

	_, err = first.Service.Teller.ChangePIN("1234", "9999")
	require.NoError(t, err)

	second, cleanupSecond, err := NewApp(cfg)
	require.NoError(t, err)
	defer cleanupSecond()

	ok, err := second.Service.Teller.VerifyPIN("1234")
	require.NoError(t, err)
	assert.True(t, ok)

	history, err := second.Service.Teller.ViewHistory()
	require.NoError(t, err)
	assert.Equal(t, "No transactions to display.", history)
}

func TestAppDataDir(t *testing.T) {
	dir, err := AppDataDir()
	require.NoError(t, err)
	assert.Contains(t, dir, "atm")
}
