package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TWEET_LEDGER_DB", "")
	t.Setenv("TWEET_LEDGER_KEYPAIR", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tweet-ledger", "tweets.db"), cfg.DB)
	assert.Equal(t, filepath.Join(home, ".tweet-ledger", "id.json"), cfg.Keypair)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TWEET_LEDGER_DB", "/tmp/x.db")
	t.Setenv("TWEET_LEDGER_KEYPAIR", "/tmp/id.json")
	t.Setenv("TWEET_LEDGER_LOG_LEVEL", "debug")
	t.Setenv("TWEET_LEDGER_LOG_FORMAT", "json")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DB:        "/tmp/x.db",
		Keypair:   "/tmp/id.json",
		LogLevel:  "debug",
		LogFormat: "json",
	}, cfg)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TWEET_LEDGER_LOG_LEVEL=error\n"), 0o600))
	t.Chdir(dir)
	// godotenv never overrides a set variable; Setenv only registers the restore.
	t.Setenv("TWEET_LEDGER_LOG_LEVEL", "")
	os.Unsetenv("TWEET_LEDGER_LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load()
	require.NoError(t, err)
}
