package main

import (
	"fmt"
	"strings"

	"github.com/parkerdavis/gmaps"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/spf13/cobra"
)

var geocodeCommand = &cobra.Command{
	Use:   "geocode <address>",
	Short: "Convert an address to coordinates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := mapsClient()
		if err != nil {
			return err
		}

		tracker, closeLedger, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeLedger()

		resp, err := client.Geocode(cmd.Context(), gmaps.GeocodeRequest{
			Address: strings.Join(args, " "),
		})
		recordCall(cmd.Context(), tracker, usage.APIGeocoding, err)
		if err != nil {
			return err
		}

		if len(resp.Results) == 0 {
			return fmt.Errorf("no results for %q (status %s)", strings.Join(args, " "), resp.Status)
		}

		for _, result := range resp.Results {
			loc := result.Geometry.Location
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				styleBold.Render(fmt.Sprintf("%f,%f", loc.Lat, loc.Lng)),
				styleFaint.Render(result.FormattedAddress),
			)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(geocodeCommand)
}
