package cli

import (
	"encoding/hex"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcliao/tweet-ledger/internal/schema"
)

func init() {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the tweet account layout",
		Run:   runLayout,
	}

	RootCmd.AddCommand(cmd)
}

func runLayout(cmd *cobra.Command, args []string) {
	fields := schema.Fields()

	if formatFlag != "text" {
		printJSON(cmd.OutOrStdout(), map[string]any{
			"discriminator": hex.EncodeToString(schema.TweetDiscriminator[:]),
			"space":         schema.TweetLen,
			"fields":        fields,
		})
		return
	}

	table := newTable(cmd.OutOrStdout(), "Field", "Offset", "Size", "Description")
	for _, f := range fields {
		offset := "-"
		if f.Offset >= 0 {
			offset = strconv.Itoa(f.Offset)
		}
		table.Append([]string{f.Name, offset, strconv.Itoa(f.Size), f.Description})
	}
	table.SetFooter([]string{"total", "", strconv.Itoa(schema.TweetLen), ""})
	table.Render()
}
