package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/tweet-ledger/internal/identity"
	"github.com/rcliao/tweet-ledger/internal/tweet"
)

func init() {
	cmd := &cobra.Command{
		Use:   "send [content]",
		Short: "Send a tweet",
		Long: "Send a tweet authored by the keypair's public key. Content can be a positional arg or piped via stdin.\n" +
			"Topic is at most 50 characters and content at most 280. Both may be empty.",
		Run: runSend,
	}

	cmd.Flags().StringP("topic", "t", "", "Topic (max 50 characters)")
	cmd.Flags().StringP("keypair", "k", "", "Keypair file (default: $TWEET_LEDGER_KEYPAIR or ~/.tweet-ledger/id.json)")

	RootCmd.AddCommand(cmd)
}

func runSend(cmd *cobra.Command, args []string) {
	topic, _ := cmd.Flags().GetString("topic")
	keypairPath, _ := cmd.Flags().GetString("keypair")
	if keypairPath == "" {
		keypairPath = cfg.Keypair
	}

	// Get content: positional args first, then check stdin
	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			// Drop the line terminator a pipe adds; keep everything else.
			content = strings.TrimSuffix(string(b), "\n")
		}
	}

	kp, err := identity.Load(keypairPath)
	if err != nil {
		exitErr("load keypair", err)
	}

	svc, s, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	t, err := svc.Send(cmd.Context(), tweet.SendParams{
		Author:  kp.Pubkey(),
		Topic:   topic,
		Content: content,
	})
	if err != nil {
		s.Close()
		exitErr("send", err)
	}

	printTweet(cmd.OutOrStdout(), t)
}
