package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/parkerdavis/gmaps"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/spf13/cobra"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Smoke-test the Maps Platform APIs and estimate what it cost",
	Long: `Check makes one small billable request against each of the Static Maps,
Geocoding, and Places APIs, reports which of them work with the configured
key, and estimates the session cost against the monthly free tier.`,
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

		out := cmd.OutOrStdout()

		checks := []struct {
			name string
			api  string
			run  func(ctx context.Context) (string, error)
		}{
			{
				name: "Static Maps",
				api:  usage.APIStaticMaps,
				run: func(ctx context.Context) (string, error) {
					img, err := client.GetStaticMap(ctx, gmaps.StaticMapRequest{
						Center: "Google HQ, Mountain View, CA",
						Zoom:   15,
						Size:   "400x400",
					})
					if err != nil {
						return "", err
					}
					return fmt.Sprintf("%.1f KB image", float64(len(img))/1024), nil
				},
			},
			{
				name: "Geocoding",
				api:  usage.APIGeocoding,
				run: func(ctx context.Context) (string, error) {
					resp, err := client.Geocode(ctx, gmaps.GeocodeRequest{
						Address: "1600 Amphitheatre Parkway, Mountain View, CA",
					})
					if err != nil {
						return "", err
					}
					if len(resp.Results) == 0 {
						return "", fmt.Errorf("no results (status %s)", resp.Status)
					}
					loc := resp.Results[0].Geometry.Location
					return fmt.Sprintf("%f,%f", loc.Lat, loc.Lng), nil
				},
			},
			{
				name: "Places",
				api:  usage.APIPlaces,
				run: func(ctx context.Context) (string, error) {
					resp, err := client.FindPlace(ctx, gmaps.FindPlaceRequest{
						Input: "Golden Gate Bridge",
					})
					if err != nil {
						return "", err
					}
					if len(resp.Candidates) == 0 {
						return "", fmt.Errorf("no candidates (status %s)", resp.Status)
					}
					return resp.Candidates[0].Name, nil
				},
			},
		}

		for _, check := range checks {
			detail, err := check.run(cmd.Context())
			recordCall(cmd.Context(), tracker, check.api, err)

			if err != nil {
				fmt.Fprintf(out, "%s %s %s\n", styleFail.Render("✗"), check.name, styleFaint.Render(err.Error()))
				continue
			}
			fmt.Fprintf(out, "%s %s %s\n", stylePass.Render("✓"), check.name, styleFaint.Render(detail))
		}

		summary := tracker.Summary()
		projection := summary.Project()

		report := strings.Join([]string{
			"# Session",
			"",
			fmt.Sprintf("%d calls, %d passed, %d failed, $%.4f spent.", summary.Calls, summary.Succeeded, summary.Failed, summary.Cost),
			"",
			"# If this ran daily",
			"",
			fmt.Sprintf("- Daily: $%.4f", projection.Daily),
			fmt.Sprintf("- Monthly (30 days): $%.2f", projection.Monthly),
			fmt.Sprintf("- Yearly: $%.2f", projection.Yearly),
		}, "\n")

		if projection.WithinFreeTier() {
			report += fmt.Sprintf("\n\nWithin the $%.0f/month free tier, $%.2f remaining.", usage.FreeTierMonthlyCredit, projection.FreeTierRemaining)
		} else {
			report += fmt.Sprintf("\n\nWould exceed the $%.0f/month free tier by $%.2f.", usage.FreeTierMonthlyCredit, -projection.FreeTierRemaining)
		}

		rendered, err := renderMarkdown(report, renderWidth())
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)

		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d checks failed", summary.Failed, summary.Calls)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCommand)
}
