package gmaps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// findPlacePath is the endpoint path for the Places API "Find Place" search.
const findPlacePath = "/maps/api/place/findplacefromtext/json"

// InputTypeTextQuery searches by free-form text, the default input type.
const InputTypeTextQuery = "textquery"

// InputTypePhoneNumber searches by phone number in E.164 format.
const InputTypePhoneNumber = "phonenumber"

// FindPlaceRequest holds the parameters for a Places API "Find Place" request.
//
// https://developers.google.com/maps/documentation/places/web-service/search-find-place
type FindPlaceRequest struct {
	// Input is the text to search for. Required.
	Input string

	// InputType is how Input should be interpreted. Defaults to
	// InputTypeTextQuery.
	InputType string

	// Fields are the place data fields to return, e.g. "name" and
	// "geometry". Defaults to name and geometry. Each requested field incurs
	// its own billing tier.
	Fields []string
}

// Validate checks the request parameters.
func (r FindPlaceRequest) Validate() error {
	err := validation.Errors{
		"input":     validation.Validate(r.Input, validation.Required),
		"inputtype": validation.Validate(r.InputType, validation.In(InputTypeTextQuery, InputTypePhoneNumber)),
	}.Filter()
	if err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// FindPlaceResponse is the response from a "Find Place" request.
type FindPlaceResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address,omitempty"`
		Geometry         struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"candidates"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// FindPlace looks up a place from a text query or phone number.
//
// # Example
//
//	resp, _ := client.FindPlace(ctx, gmaps.FindPlaceRequest{
//		Input: "Golden Gate Bridge",
//	})
//
//	for _, candidate := range resp.Candidates {
//		fmt.Println(candidate.Name)
//	}
func (c *Client) FindPlace(ctx context.Context, req FindPlaceRequest) (*FindPlaceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.InputType == "" {
		req.InputType = InputTypeTextQuery
	}
	if len(req.Fields) == 0 {
		req.Fields = []string{"name", "geometry"}
	}

	query := url.Values{}
	query.Set("input", req.Input)
	query.Set("inputtype", req.InputType)
	query.Set("fields", strings.Join(req.Fields, ","))
	query.Set("key", c.APIKey)

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+findPlacePath+"?"+query.Encode(), nil)
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
		return nil, &APIError{Endpoint: findPlacePath, StatusCode: resp.StatusCode, Body: body}
	}

	pResp := &FindPlaceResponse{}
	err = json.NewDecoder(resp.Body).Decode(pResp)
	if err != nil {
		return nil, err
	}

	return pResp, nil
}
