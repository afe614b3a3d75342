package gmaps

// MapType is a known Static Maps API map format.
//
// https://developers.google.com/maps/documentation/maps-static/start#MapTypes
type MapType = string

const (
	// MapTypeRoadmap is the standard roadmap image, the default if no map
	// type is specified.
	MapTypeRoadmap MapType = "roadmap"

	// MapTypeSatellite is a satellite image.
	MapTypeSatellite MapType = "satellite"

	// MapTypeTerrain is a physical relief map image, showing terrain and
	// vegetation.
	MapTypeTerrain MapType = "terrain"

	// MapTypeHybrid is a hybrid of the satellite and roadmap image, showing
	// a transparent layer of major streets and place names on the satellite
	// image.
	MapTypeHybrid MapType = "hybrid"
)

// MarkerSize is a known marker size for the Static Maps API.
//
// https://developers.google.com/maps/documentation/maps-static/start#MarkerStyles
type MarkerSize = string

const (
	MarkerSizeTiny  MarkerSize = "tiny"
	MarkerSizeMid   MarkerSize = "mid"
	MarkerSizeSmall MarkerSize = "small"
)
