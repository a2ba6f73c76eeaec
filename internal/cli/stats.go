package cli

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		s.Close()
		exitErr("stats", err)
	}

	if formatFlag != "text" {
		printJSON(cmd.OutOrStdout(), stats)
		return
	}

	table := newTable(cmd.OutOrStdout())
	table.AppendBulk([][]string{
		{"db", stats.DBPath},
		{"db size", humanize.Bytes(uint64(stats.DBSizeBytes))},
		{"accounts", strconv.Itoa(stats.TotalAccounts)},
		{"reserved", humanize.Bytes(uint64(stats.ReservedBytes))},
	})
	for _, t := range stats.Tags {
		table.Append([]string{"tag " + t.Tag, strconv.Itoa(t.Count) + " accounts, " + humanize.Bytes(uint64(t.ReservedBytes))})
	}
	table.Render()
}
