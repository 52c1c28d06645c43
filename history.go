package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/prodify/internal/errmsg"
	"github.com/llehouerou/prodify/internal/state"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently previewed tracks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		stateMgr, err := state.Open()
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpHistoryLoad, err)
		}
		defer stateMgr.Close()

		previews, err := stateMgr.RecentPreviews(historyLimit)
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpHistoryLoad, err)
		}
		if len(previews) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No previews yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, p := range previews {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", humanize.Time(p.PlayedAt), p.Producer, p.Title, p.TrackID)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of previews to list")
}
