package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var usageCommand = &cobra.Command{
	Use:   "usage",
	Short: "Show the recorded API usage ledger and projected spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, closeLedger, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeLedger()

		entries, err := tracker.History(cmd.Context())
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), styleFaint.Render("No API calls recorded yet."))
			return nil
		}

		lines := []string{
			"| When | API | Status | Cost |",
			"| --- | --- | --- | --- |",
		}

		var (
			total     float64
			succeeded int
		)

		for _, entry := range entries {
			call := entry.Value

			status := fmt.Sprintf("%d", call.StatusCode)
			if call.StatusCode == 0 {
				status = "—"
			}

			lines = append(lines, fmt.Sprintf("| %s | %s | %s | $%.4f |",
				call.Timestamp.Format("2006-01-02 15:04:05"),
				call.API,
				status,
				call.Cost,
			))

			total += call.Cost
			if call.Success {
				succeeded++
			}
		}

		rendered, err := renderMarkdown(strings.Join(lines, "\n"), renderWidth())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), rendered)
		fmt.Fprintf(cmd.OutOrStdout(), "%d calls (%d succeeded), %s total\n",
			len(entries),
			succeeded,
			styleDollar.Render(fmt.Sprintf("$%.4f", total)),
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCommand)
}
