package gmaps_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/parkerdavis/gmaps"
	"github.com/shoenig/test/must"
	"github.com/spf13/afero"
)

func TestMarker_String(t *testing.T) {
	m := gmaps.Marker{
		Color:    "red",
		Label:    "G",
		Location: "Golden Gate Bridge",
	}
	must.Eq(t, "color:red|label:G|Golden Gate Bridge", m.String())
}

func TestMarker_String_allFields(t *testing.T) {
	m := gmaps.Marker{
		Color:    "blue",
		Label:    "A",
		Size:     gmaps.MarkerSizeMid,
		Location: "Alcatraz Island",
	}
	must.Eq(t, "color:blue|label:A|size:mid|Alcatraz Island", m.String())
}

func TestMarker_String_bareLocation(t *testing.T) {
	m := gmaps.Marker{Location: "40.714728,-73.998672"}
	must.Eq(t, "40.714728,-73.998672", m.String())
}

func TestBuildStaticMapURL(t *testing.T) {
	c, err := gmaps.NewClient("test_key")
	must.NoError(t, err)

	url := c.BuildStaticMapURL(gmaps.StaticMapRequest{
		Center: "New York, NY",
		Zoom:   10,
	})

	must.StrContains(t, url, "center=New+York%2C+NY")
	must.StrContains(t, url, "zoom=10")
	must.StrContains(t, url, "key=test_key")
	must.StrHasPrefix(t, "https://maps.googleapis.com/maps/api/staticmap?", url)
}

func TestBuildStaticMapURL_deterministic(t *testing.T) {
	c, err := gmaps.NewClient("test_key")
	must.NoError(t, err)

	req := gmaps.StaticMapRequest{
		Center:  "San Francisco, CA",
		Zoom:    12,
		Size:    "640x480",
		MapType: gmaps.MapTypeTerrain,
		Markers: []gmaps.Marker{
			{Color: "red", Label: "G", Location: "Golden Gate Bridge"},
		},
		Path: "color:0xff0000ff|37.8,-122.4|37.7,-122.5",
	}

	must.Eq(t, c.BuildStaticMapURL(req), c.BuildStaticMapURL(req))
}

func TestBuildStaticMapURL_dropsUnsetFields(t *testing.T) {
	c, err := gmaps.NewClient("test_key")
	must.NoError(t, err)

	url := c.BuildStaticMapURL(gmaps.StaticMapRequest{Center: "Chicago, IL"})

	must.StrNotContains(t, url, "zoom=")
	must.StrNotContains(t, url, "size=")
	must.StrNotContains(t, url, "maptype=")
	must.StrNotContains(t, url, "markers=")
	must.StrNotContains(t, url, "path=")
}

func TestBuildStaticMapURL_repeatedMarkers(t *testing.T) {
	c, err := gmaps.NewClient("test_key")
	must.NoError(t, err)

	url := c.BuildStaticMapURL(gmaps.StaticMapRequest{
		Markers: []gmaps.Marker{
			{Color: "red", Label: "G", Location: "Golden Gate Bridge, San Francisco, CA"},
			{Color: "blue", Label: "A", Location: "Alcatraz Island, San Francisco, CA"},
		},
	})

	// One query parameter occurrence per marker.
	must.Eq(t, 2, strings.Count(url, "markers="))
}

func TestStaticMapRequest_Validate(t *testing.T) {
	cases := []struct {
		name string
		req  gmaps.StaticMapRequest
		ok   bool
	}{
		{name: "zero value", req: gmaps.StaticMapRequest{}, ok: true},
		{name: "typical", req: gmaps.StaticMapRequest{Center: "NYC", Zoom: 10, Size: "600x400"}, ok: true},
		{name: "negative zoom", req: gmaps.StaticMapRequest{Zoom: -1}, ok: false},
		{name: "malformed size", req: gmaps.StaticMapRequest{Size: "600by400"}, ok: false},
		{name: "zero width", req: gmaps.StaticMapRequest{Size: "0x400"}, ok: false},
		{name: "marker without location", req: gmaps.StaticMapRequest{Markers: []gmaps.Marker{{Color: "red"}}}, ok: false},
		{name: "empty marker list", req: gmaps.StaticMapRequest{Markers: []gmaps.Marker{}}, ok: false},
		{name: "marker with location", req: gmaps.StaticMapRequest{Markers: []gmaps.Marker{{Location: "Golden Gate Bridge"}}}, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.ok {
				must.NoError(t, err)
				return
			}
			must.Error(t, err)
			must.True(t, errors.Is(err, gmaps.ErrInvalidRequest))

			var vErr *gmaps.ValidationError
			must.True(t, errors.As(err, &vErr))
		})
	}
}

// testServer returns a static maps test double and a client pointed at it.
func testServer(t *testing.T, handler http.HandlerFunc) *gmaps.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := gmaps.NewClient("test_key",
		gmaps.WithBaseURL(srv.URL),
		gmaps.WithHTTPClient(srv.Client()),
	)
	must.NoError(t, err)

	return c
}

func TestGetStaticMap(t *testing.T) {
	img := []byte("\x89PNG fake image bytes")

	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		must.Eq(t, "/maps/api/staticmap", r.URL.Path)

		query := r.URL.Query()
		must.Eq(t, "test_key", query.Get("key"))
		must.Eq(t, "Times Square, New York, NY", query.Get("center"))

		// Unset fields pick up the documented defaults.
		must.Eq(t, "13", query.Get("zoom"))
		must.Eq(t, "600x400", query.Get("size"))
		must.Eq(t, "roadmap", query.Get("maptype"))

		w.Write(img)
	})

	body, err := c.GetStaticMap(t.Context(), gmaps.StaticMapRequest{
		Center: "Times Square, New York, NY",
	})
	must.NoError(t, err)
	must.Eq(t, img, body)
}

func TestGetStaticMap_repeatedMarkersOnWire(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		markers := r.URL.Query()["markers"]
		must.Eq(t, []string{
			"color:red|label:G|Golden Gate Bridge, San Francisco, CA",
			"color:blue|label:A|Alcatraz Island, San Francisco, CA",
		}, markers)

		w.Write([]byte("ok"))
	})

	_, err := c.GetStaticMap(t.Context(), gmaps.StaticMapRequest{
		Center: "San Francisco, CA",
		Zoom:   12,
		Markers: []gmaps.Marker{
			{Color: "red", Label: "G", Location: "Golden Gate Bridge, San Francisco, CA"},
			{Color: "blue", Label: "A", Location: "Alcatraz Island, San Francisco, CA"},
		},
	})
	must.NoError(t, err)
}

func TestGetStaticMap_apiError(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("The provided API key is invalid."))
	})

	body, err := c.GetStaticMap(t.Context(), gmaps.StaticMapRequest{Center: "NYC"})
	must.Nil(t, body)
	must.Error(t, err)
	must.True(t, errors.Is(err, gmaps.ErrRequestFailed))

	var apiErr *gmaps.APIError
	must.True(t, errors.As(err, &apiErr))
	must.Eq(t, http.StatusForbidden, apiErr.StatusCode)
	must.Eq(t, []byte("The provided API key is invalid."), apiErr.Body)
}

func TestGetStaticMap_validatesBeforeNetwork(t *testing.T) {
	var hits int

	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	_, err := c.GetStaticMap(t.Context(), gmaps.StaticMapRequest{Zoom: -1})
	must.Error(t, err)
	must.True(t, errors.Is(err, gmaps.ErrInvalidRequest))
	must.Eq(t, 0, hits)
}

func TestSaveStaticMap(t *testing.T) {
	img := []byte("\x89PNG fake image bytes")

	fs := afero.NewMemMapFs()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(img)
	}))
	t.Cleanup(srv.Close)

	c, err := gmaps.NewClient("test_key",
		gmaps.WithBaseURL(srv.URL),
		gmaps.WithHTTPClient(srv.Client()),
		gmaps.WithFilesystem(fs),
	)
	must.NoError(t, err)

	// Parent directories do not exist yet.
	destination := "output/maps/times_square.png"

	body, err := c.SaveStaticMap(t.Context(), gmaps.StaticMapRequest{Center: "Times Square"}, destination)
	must.NoError(t, err)
	must.Eq(t, img, body)

	written, err := afero.ReadFile(fs, destination)
	must.NoError(t, err)
	must.Eq(t, img, written)
}

func TestSaveStaticMap_writeError(t *testing.T) {
	img := []byte("\x89PNG fake image bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(img)
	}))
	t.Cleanup(srv.Close)

	c, err := gmaps.NewClient("test_key",
		gmaps.WithBaseURL(srv.URL),
		gmaps.WithHTTPClient(srv.Client()),
		gmaps.WithFilesystem(afero.NewReadOnlyFs(afero.NewMemMapFs())),
	)
	must.NoError(t, err)

	body, err := c.SaveStaticMap(t.Context(), gmaps.StaticMapRequest{Center: "Times Square"}, "output/map.png")
	must.Error(t, err)
	must.True(t, errors.Is(err, gmaps.ErrWriteFailed))

	// The fetched bytes survive the failed write.
	must.Eq(t, img, body)
}

func TestGetStaticMap_live(t *testing.T) {
	if os.Getenv(gmaps.EnvAPIKey) == "" {
		t.Skipf("Skipping test because %s is not set", gmaps.EnvAPIKey)
	}

	c, err := gmaps.NewClient("")
	must.NoError(t, err)

	img, err := c.GetStaticMap(t.Context(), gmaps.StaticMapRequest{
		Center: "Golden Gate Bridge, San Francisco, CA",
		Zoom:   14,
		Size:   "400x400",
	})
	must.NoError(t, err)
	must.Positive(t, len(img))

	t.Logf("image size: %.1f KB", float64(len(img))/1024)
}

func ExampleClient_BuildStaticMapURL() {
	c, err := gmaps.NewClient("test_key")
	if err != nil {
		panic(err)
	}

	url := c.BuildStaticMapURL(gmaps.StaticMapRequest{
		Center: "New York, NY",
		Zoom:   10,
	})

	fmt.Println(url)
	// Output: https://maps.googleapis.com/maps/api/staticmap?center=New+York%2C+NY&key=test_key&zoom=10
}

func ExampleMarker_String() {
	m := gmaps.Marker{
		Color:    "red",
		Label:    "G",
		Location: "Golden Gate Bridge",
	}

	fmt.Println(m.String())
	// Output: color:red|label:G|Golden Gate Bridge
}
