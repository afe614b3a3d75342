package main

import (
	"fmt"

	"github.com/parkerdavis/gmaps"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/spf13/cobra"
)

var staticmapCommand = &cobra.Command{
	Use:   "staticmap",
	Short: "Fetch a static map image and save it",
	Example: `  gmaps staticmap --center "Times Square, New York, NY" --zoom 15 -o output/times_square.png
  gmaps staticmap --center "San Francisco, CA" --zoom 12 \
      --marker "color:red|label:G|Golden Gate Bridge, San Francisco, CA" \
      --marker "color:blue|label:A|Alcatraz Island, San Francisco, CA" \
      -o output/sf_landmarks.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := mapsClient()
		if err != nil {
			return err
		}

		center := cmd.Flag("center").Value.String()
		size := cmd.Flag("size").Value.String()
		maptype := cmd.Flag("maptype").Value.String()
		path := cmd.Flag("path").Value.String()
		output := cmd.Flag("output").Value.String()
		zoom, err := cmd.Flags().GetInt("zoom")
		if err != nil {
			return err
		}
		markerFlags, err := cmd.Flags().GetStringArray("marker")
		if err != nil {
			return err
		}

		req := gmaps.StaticMapRequest{
			Center:  center,
			Zoom:    zoom,
			Size:    size,
			MapType: maptype,
			Path:    path,
		}

		for _, mf := range markerFlags {
			marker, err := parseMarker(mf)
			if err != nil {
				return err
			}
			req.Markers = append(req.Markers, marker)
		}

		tracker, closeLedger, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeLedger()

		body, err := client.SaveStaticMap(cmd.Context(), req, output)
		recordCall(cmd.Context(), tracker, usage.APIStaticMaps, err)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s saved %s %s\n",
			stylePass.Render("✓"),
			output,
			styleFaint.Render(fmt.Sprintf("(%.1f KB)", float64(len(body))/1024)),
		)

		return nil
	},
}

func init() {
	staticmapCommand.Flags().String("center", "", "location to center the map on")
	staticmapCommand.Flags().Int("zoom", gmaps.DefaultZoom, "map zoom level")
	staticmapCommand.Flags().String("size", gmaps.DefaultSize, "image size as <width>x<height>")
	staticmapCommand.Flags().String("maptype", gmaps.DefaultMapType, "map type (roadmap, satellite, terrain, hybrid)")
	staticmapCommand.Flags().StringArray("marker", nil, "marker in pipe-delimited form, repeatable")
	staticmapCommand.Flags().String("path", "", "path overlay definition")
	staticmapCommand.Flags().StringP("output", "o", "output/map.png", "destination file")

	rootCmd.AddCommand(staticmapCommand)
}
