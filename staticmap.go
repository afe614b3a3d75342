package gmaps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"
)

// staticMapPath is the endpoint path for the Static Maps API.
const staticMapPath = "/maps/api/staticmap"

// Defaults for StaticMapRequest fields that are left unset.
const (
	DefaultZoom    = 13
	DefaultSize    = "600x400"
	DefaultMapType = MapTypeRoadmap
)

// Marker describes a single map marker: a required location plus optional
// visual styling.
//
// https://developers.google.com/maps/documentation/maps-static/start#Markers
type Marker struct {
	// Color is the marker color, either a named color or a 24-bit hex value.
	Color string

	// Label is a single uppercase alphanumeric character shown on the marker.
	Label string

	// Size is the marker size, one of the MarkerSize constants.
	Size string

	// Location is the place the marker points at, either an address or a
	// "lat,lng" pair. Required.
	Location string
}

// String encodes the marker in the API's pipe-delimited format, joining the
// non-empty color, label, and size fragments followed by the bare location:
//
//	color:red|label:G|Golden Gate Bridge
func (m Marker) String() string {
	var parts []string

	if m.Color != "" {
		parts = append(parts, "color:"+m.Color)
	}
	if m.Label != "" {
		parts = append(parts, "label:"+m.Label)
	}
	if m.Size != "" {
		parts = append(parts, "size:"+m.Size)
	}
	if m.Location != "" {
		parts = append(parts, m.Location)
	}

	return strings.Join(parts, "|")
}

// Validate checks that the marker has a location.
func (m Marker) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Location, validation.Required),
	)
}

// StaticMapRequest holds the parameters for a Static Maps API request.
//
// A zero Zoom, Size, or MapType falls back to the corresponding default when
// the request is sent; Center, Markers, and Path are optional and omitted
// from the request when unset.
//
// https://developers.google.com/maps/documentation/maps-static/start
type StaticMapRequest struct {
	// Center is the location the map is centered on, either an address or a
	// "lat,lng" pair. Optional when markers are present.
	Center string

	// Zoom is the map zoom level. Defaults to 13.
	Zoom int

	// Size is the image size as "<width>x<height>". Defaults to "600x400".
	Size string

	// MapType is the map format. Defaults to MapTypeRoadmap.
	MapType string

	// Markers is the list of markers to render. Each marker becomes its own
	// repeated "markers" query parameter.
	Markers []Marker

	// Path is a path overlay definition, passed through as-is.
	//
	// https://developers.google.com/maps/documentation/maps-static/start#Paths
	Path string
}

var sizePattern = regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*$`)

// Validate checks the request parameters. It never touches the network, and
// any failure is reported as a ValidationError.
func (r StaticMapRequest) Validate() error {
	errs := validation.Errors{
		"zoom":    validation.Validate(r.Zoom, validation.Min(0)),
		"size":    validation.Validate(r.Size, validation.Match(sizePattern).Error("must be <width>x<height> with positive integers")),
		"markers": validation.Validate(r.Markers),
	}

	if r.Markers != nil && len(r.Markers) == 0 {
		errs["markers"] = errors.New("must contain at least one marker")
	}

	if err := errs.Filter(); err != nil {
		return &ValidationError{Err: err}
	}

	return nil
}

// withDefaults fills in the documented defaults for unset fields.
func (r StaticMapRequest) withDefaults() StaticMapRequest {
	if r.Zoom == 0 {
		r.Zoom = DefaultZoom
	}
	if r.Size == "" {
		r.Size = DefaultSize
	}
	if r.MapType == "" {
		r.MapType = DefaultMapType
	}
	return r
}

// BuildStaticMapURL returns the full Static Maps endpoint URL for the given
// request, with the API key included. Fields without a value are dropped and
// the remaining query parameters are encoded in net/url's canonical sorted
// order, so identical inputs always produce an identical URL.
//
// It is a pure function of the request and client fields: no I/O happens,
// and no defaults are filled in.
func (c *Client) BuildStaticMapURL(req StaticMapRequest) string {
	query := url.Values{}

	query.Set("key", c.APIKey)

	if req.Center != "" {
		query.Set("center", req.Center)
	}
	if req.Zoom > 0 {
		query.Set("zoom", strconv.Itoa(req.Zoom))
	}
	if req.Size != "" {
		query.Set("size", req.Size)
	}
	if req.MapType != "" {
		query.Set("maptype", req.MapType)
	}
	for _, m := range req.Markers {
		// One query parameter occurrence per marker, never a single
		// combined value.
		query.Add("markers", m.String())
	}
	if req.Path != "" {
		query.Set("path", req.Path)
	}

	return c.BaseURL + staticMapPath + "?" + query.Encode()
}

// GetStaticMap fetches a static map image and returns the raw image bytes.
//
// Unset request fields fall back to their defaults, the request is validated
// before any network call, and a non-2xx response is returned as an APIError
// carrying the status code and response body. There is no retry and no
// caching: every call performs exactly one HTTP GET.
//
// # Example
//
//	img, _ := client.GetStaticMap(ctx, gmaps.StaticMapRequest{
//		Center: "Times Square, New York, NY",
//		Zoom:   15,
//	})
func (c *Client) GetStaticMap(ctx context.Context, req StaticMapRequest) ([]byte, error) {
	req = req.withDefaults()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildStaticMapURL(req), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{Endpoint: staticMapPath, StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}

// SaveStaticMap fetches a static map image and writes it to the destination
// path, creating any missing parent directories. The fetched bytes are
// returned in both outcomes: if the write fails after a successful fetch,
// the caller still has the image and gets a WriteError describing what went
// wrong, so the (already paid for) response is not lost.
func (c *Client) SaveStaticMap(ctx context.Context, req StaticMapRequest, destination string) ([]byte, error) {
	body, err := c.GetStaticMap(ctx, req)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(destination); dir != "." {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return body, &WriteError{Path: destination, Err: err}
		}
	}

	if err := afero.WriteFile(c.fs, destination, body, 0o644); err != nil {
		return body, &WriteError{Path: destination, Err: err}
	}

	return body, nil
}
