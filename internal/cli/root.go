// Package cli implements the tweet-ledger CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/tweet-ledger/internal/config"
	"github.com/rcliao/tweet-ledger/internal/logger"
	"github.com/rcliao/tweet-ledger/internal/store"
	"github.com/rcliao/tweet-ledger/internal/tweet"
)

var (
	dbPath     string
	formatFlag string

	cfg config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "tweet-ledger",
	Short: "Fixed-size tweet records",
	Long:  "A tiny CLI that stores topic-tagged tweets as fixed-size 1376-byte account records. SQLite-backed, single binary.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if formatFlag != "json" && formatFlag != "text" {
			return fmt.Errorf("invalid --format %q (use json or text)", formatFlag)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $TWEET_LEDGER_DB or ~/.tweet-ledger/tweets.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DB
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath(), store.WithLogger(logger.Get()))
}

func openService() (*tweet.Service, *store.SQLiteStore, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return tweet.NewService(s, tweet.SystemClock{}, logger.Get()), s, nil
}

func exitErr(msg string, err error) {
	if code, ok := tweet.CodeOf(err); ok {
		fmt.Fprintf(os.Stderr, "error: %s: %v (code %d)\n", msg, err, code)
	} else {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	}
	os.Exit(1)
}
