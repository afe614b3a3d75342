package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "gmaps",
	Short: "Call paid Google Maps Platform and LLM gateway APIs, and know what it costs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("temporary", "t", false, "Use a temporary in-memory usage ledger")
}
