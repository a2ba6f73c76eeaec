package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/tweet-ledger/internal/identity"
)

func init() {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair",
		Long:  "Generate an ed25519 keypair. Its public key becomes the author of every tweet sent with it.",
		Run:   runKeygen,
	}

	cmd.Flags().StringP("outfile", "o", "", "Keypair file (default: $TWEET_LEDGER_KEYPAIR or ~/.tweet-ledger/id.json)")
	cmd.Flags().Bool("force", false, "Overwrite an existing keypair file")

	RootCmd.AddCommand(cmd)
}

func runKeygen(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("outfile")
	force, _ := cmd.Flags().GetBool("force")
	if out == "" {
		out = cfg.Keypair
	}

	kp, err := identity.Generate(nil)
	if err != nil {
		exitErr("keygen", err)
	}
	if err := kp.Save(out, force); err != nil {
		exitErr("keygen", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"pubkey":%q,"path":%q}`+"\n", kp.Pubkey().String(), out)
}
