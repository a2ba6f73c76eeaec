package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get ADDRESS",
		Short: "Fetch a tweet by address",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	svc, s, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	t, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		s.Close()
		exitErr("get", err)
	}

	printTweet(cmd.OutOrStdout(), t)
}
