// Package config loads tweet-ledger settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every variable, e.g. TWEET_LEDGER_DB.
const Prefix = "TWEET_LEDGER"

// Config holds runtime settings. Empty paths resolve under ~/.tweet-ledger.
type Config struct {
	DB        string `envconfig:"DB"`
	Keypair   string `envconfig:"KEYPAIR"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads an optional .env file from the working directory, then the
// environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.DB == "" {
		cfg.DB = filepath.Join(home, ".tweet-ledger", "tweets.db")
	}
	if cfg.Keypair == "" {
		cfg.Keypair = filepath.Join(home, ".tweet-ledger", "id.json")
	}
	return cfg, nil
}
