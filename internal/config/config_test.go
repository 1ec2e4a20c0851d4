package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "save_data.json", e.SavePath)
	assert.Equal(t, "", e.BalancePath)
	assert.Equal(t, int64(0), e.Seed)
	assert.Equal(t, 60, e.TPS)
	assert.False(t, e.Verbose)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FELINE_SAVE_PATH", "/tmp/cat.json")
	t.Setenv("FELINE_SEED", "42")
	t.Setenv("FELINE_VERBOSE", "true")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cat.json", e.SavePath)
	assert.Equal(t, int64(42), e.Seed)
	assert.True(t, e.Verbose)
}

func TestLoadEnvRejectsBadTPS(t *testing.T) {
	t.Setenv("FELINE_TPS", "0")
	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FELINE_TPS")
}

func TestLoadEnvParseError(t *testing.T) {
	t.Setenv("FELINE_SEED", "not-a-number")
	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestDefaultBalance(t *testing.T) {
	b := Default()
	assert.Equal(t, 50, b.StartingMoney)
	assert.Equal(t, map[string]int{"Meowmunch": 5, "Purrplay": 10, "Furbath": 15}, b.Prices)
	assert.Equal(t, 5*time.Second, b.Timers.DecayInterval())
	assert.Equal(t, 10*time.Second, b.Timers.AutosaveInterval())
	assert.Equal(t, 2*time.Second, b.Timers.StoreMessage())
	assert.Equal(t, 5, b.Chores.TrashCount)
	assert.Equal(t, 5, b.Chores.TrashReward)
	require.NoError(t, b.Validate())
}

func TestLoadBalanceEmptyPathIsDefault(t *testing.T) {
	b, err := LoadBalance("")
	require.NoError(t, err)
	assert.Equal(t, Default(), b)
}

func TestLoadBalancePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	content := `
starting_money: 80
prices:
  Furbath: 20
timers:
  decay_interval_ms: 3000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, err := LoadBalance(path)
	require.NoError(t, err)
	assert.Equal(t, 80, b.StartingMoney)
	assert.Equal(t, 20, b.Prices["Furbath"])
	assert.Equal(t, 5, b.Prices["Meowmunch"], "untouched prices keep their defaults")
	assert.Equal(t, 3*time.Second, b.Timers.DecayInterval())
	assert.Equal(t, 10*time.Second, b.Timers.AutosaveInterval())
}

func TestLoadBalanceUnknownItem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prices:\n  Catnip: 3\n"), 0o644))

	_, err := LoadBalance(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Catnip")
}

func TestLoadBalanceMissingFile(t *testing.T) {
	_, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadBalanceInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prices: [unterminated"), 0o644))

	_, err := LoadBalance(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
