package main

import (
	"fmt"
	"strings"

	"github.com/parkerdavis/gmaps"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/spf13/cobra"
)

var placeCommand = &cobra.Command{
	Use:   "place <query>",
	Short: "Find a place from a text query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := mapsClient()
		if err != nil {
			return err
		}

		fields, err := cmd.Flags().GetStringSlice("fields")
		if err != nil {
			return err
		}

		tracker, closeLedger, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeLedger()

		resp, err := client.FindPlace(cmd.Context(), gmaps.FindPlaceRequest{
			Input:  strings.Join(args, " "),
			Fields: fields,
		})
		recordCall(cmd.Context(), tracker, usage.APIPlaces, err)
		if err != nil {
			return err
		}

		if len(resp.Candidates) == 0 {
			return fmt.Errorf("no candidates for %q (status %s)", strings.Join(args, " "), resp.Status)
		}

		for _, candidate := range resp.Candidates {
			loc := candidate.Geometry.Location
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				styleBold.Render(candidate.Name),
				styleFaint.Render(fmt.Sprintf("%f,%f", loc.Lat, loc.Lng)),
			)
		}

		return nil
	},
}

func init() {
	placeCommand.Flags().StringSlice("fields", []string{"name", "geometry"}, "place data fields to request")

	rootCmd.AddCommand(placeCommand)
}
