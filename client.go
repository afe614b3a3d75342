// Package gmaps is a client for the Google Maps Platform web service APIs,
// covering the Static Maps, Geocoding, and Places (Find Place) endpoints.
//
// These are paid APIs: every successful request costs money once the monthly
// free tier is exhausted, so the client keeps each call explicit and
// synchronous with no hidden retries or caching.
//
// https://developers.google.com/maps/documentation
package gmaps

import (
	"net/http"
	"os"

	"github.com/spf13/afero"
)

// EnvAPIKey is the environment variable the client reads the API key from
// when no explicit key is provided.
const EnvAPIKey = "GOOGLE_MAPS_API_KEY"

// DefaultBaseURL is the default base URL for the Maps Platform web services.
const DefaultBaseURL = "https://maps.googleapis.com"

// Client is a client for the Google Maps Platform web service APIs.
//
// https://developers.google.com/maps/documentation/webservices
type Client struct {
	// APIKey is the API key to use for requests.
	APIKey string

	// HTTPClient is the HTTP client to use for requests.
	HTTPClient *http.Client

	// BaseURL is the base URL for the Maps Platform web services.
	BaseURL string

	// fs is the filesystem used for destination writes.
	fs afero.Fs
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithHTTPClient is a ClientOption that sets the HTTP client to use for requests.
//
// If the client is nil, then http.DefaultClient is used.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		if c == nil {
			c = http.DefaultClient
		}
		client.HTTPClient = c
	}
}

// WithBaseURL is a ClientOption that sets the base URL to use for requests,
// which is useful for testing against a local server.
func WithBaseURL(baseURL string) ClientOption {
	return func(client *Client) {
		client.BaseURL = baseURL
	}
}

// WithFilesystem is a ClientOption that sets the filesystem used when saving
// responses to a destination path. The default is the host filesystem.
func WithFilesystem(fs afero.Fs) ClientOption {
	return func(client *Client) {
		if fs == nil {
			fs = afero.NewOsFs()
		}
		client.fs = fs
	}
}

// NewClient returns a new Client with the given API key. If the key is empty,
// it is read from the GOOGLE_MAPS_API_KEY environment variable. A key must be
// available one way or the other, otherwise a ConfigurationError is returned.
//
// # Example
//
//	c, err := gmaps.NewClient(os.Getenv(gmaps.EnvAPIKey))
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}

	if apiKey == "" {
		return nil, &ConfigurationError{EnvVar: EnvAPIKey}
	}

	c := &Client{
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
		BaseURL:    DefaultBaseURL,
		fs:         afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
