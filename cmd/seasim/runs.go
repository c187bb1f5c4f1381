package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ngmaloney/seastate/internal/database"
)

func newRunsCmd(root *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := database.NewRunRepository(root.dbPath).ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRESET\tHS\tDURATION\tFRAMES\tRMS\tWHEN")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%.2f m\t%.1f s\t%s\t%.3f m\t%s\n",
					shortID(r.ID), orDash(r.PresetName), r.SignificantWaveHeight, r.Duration,
					humanize.Comma(int64(r.Frames)), r.RMSElevation, humanize.Time(r.CreatedAt))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
