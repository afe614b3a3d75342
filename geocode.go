package gmaps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// geocodePath is the endpoint path for the Geocoding API.
const geocodePath = "/maps/api/geocode/json"

// LatLng is a latitude/longitude pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeRequest holds the parameters for a Geocoding API request.
//
// https://developers.google.com/maps/documentation/geocoding/requests-geocoding
type GeocodeRequest struct {
	// Address is the street address or place to geocode. Required.
	Address string
}

// Validate checks the request parameters.
func (r GeocodeRequest) Validate() error {
	err := validation.Errors{
		"address": validation.Validate(r.Address, validation.Required),
	}.Filter()
	if err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// GeocodeResponse is the response from a Geocoding API request.
//
// https://developers.google.com/maps/documentation/geocoding/requests-geocoding#GeocodingResponses
type GeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string   `json:"formatted_address"`
		PlaceID          string   `json:"place_id"`
		Types            []string `json:"types"`
		Geometry         struct {
			Location     LatLng `json:"location"`
			LocationType string `json:"location_type"`
		} `json:"geometry"`
	} `json:"results"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Geocode converts an address into geographic coordinates.
//
// # Example
//
//	resp, _ := client.Geocode(ctx, gmaps.GeocodeRequest{
//		Address: "1600 Amphitheatre Parkway, Mountain View, CA",
//	})
//
//	loc := resp.Results[0].Geometry.Location
func (c *Client) Geocode(ctx context.Context, req GeocodeRequest) (*GeocodeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("address", req.Address)
	query.Set("key", c.APIKey)

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+geocodePath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Endpoint: geocodePath, StatusCode: resp.StatusCode, Body: body}
	}

	gResp := &GeocodeResponse{}
	err = json.NewDecoder(resp.Body).Decode(gResp)
	if err != nil {
		return nil, err
	}

	return gResp, nil
}
