package main

import (
	"fmt"
	"strings"

	"github.com/parkerdavis/gmaps"
)

// parseMarker parses a --marker flag value in the API's own pipe-delimited
// format, e.g. "color:red|label:G|Golden Gate Bridge, San Francisco, CA".
// Fragments with a known style prefix set that style; the remaining fragment
// is the location.
func parseMarker(s string) (gmaps.Marker, error) {
	var m gmaps.Marker

	for _, part := range strings.Split(s, "|") {
		switch {
		case strings.HasPrefix(part, "color:"):
			m.Color = strings.TrimPrefix(part, "color:")
		case strings.HasPrefix(part, "label:"):
			m.Label = strings.TrimPrefix(part, "label:")
		case strings.HasPrefix(part, "size:"):
			m.Size = strings.TrimPrefix(part, "size:")
		default:
			if m.Location != "" {
				return m, fmt.Errorf("marker %q has more than one location", s)
			}
			m.Location = part
		}
	}

	if m.Location == "" {
		return m, fmt.Errorf("marker %q has no location", s)
	}

	return m, nil
}
