package cborg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the default base URL for the CBORG gateway.
const DefaultBaseURL = "https://api.cborg.lbl.gov"

// EnvAPIKey is the environment variable holding the gateway API key.
const EnvAPIKey = "CBORG_API_KEY"

// Client represents a CBORG gateway client for the key management endpoints.
type Client struct {
	// HTTPClient is the HTTP client used to communicate with the gateway.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// APIKey is your CBORG gateway key.
	APIKey string

	// BaseURL is the base URL for the gateway.
	BaseURL string
}

// NewClient creates a new Client for the CBORG gateway.
func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		HTTPClient: httpClient,
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
	}
}

// OpenAIBaseURL returns the gateway's OpenAI-compatible base URL, suitable
// for the official OpenAI SDK's base URL option.
func (c *Client) OpenAIBaseURL() string {
	return c.BaseURL + "/v1/"
}

// KeyInfo describes the spend and budget state of a gateway key.
//
// https://litellm-api.up.railway.app/#/key%20management
type KeyInfo struct {
	// Key is the (hashed) key the information belongs to.
	Key string `json:"key"`

	Info struct {
		// KeyName is the redacted display name of the key.
		KeyName string `json:"key_name"`

		// KeyAlias is the human-assigned alias, if any.
		KeyAlias string `json:"key_alias"`

		// Spend is the total spend accrued by the key, in dollars.
		Spend float64 `json:"spend"`

		// MaxBudget is the key's budget ceiling in dollars, or nil for
		// unlimited.
		MaxBudget *float64 `json:"max_budget"`

		// Models are the model identifiers the key may call. Empty means
		// all models.
		Models []string `json:"models"`

		// TPMLimit and RPMLimit are the tokens- and requests-per-minute
		// limits, or nil for the gateway defaults.
		TPMLimit *int `json:"tpm_limit"`
		RPMLimit *int `json:"rpm_limit"`

		// Blocked reports whether the key has been blocked by an admin.
		Blocked bool `json:"blocked"`

		ExpiresAt string `json:"expires"`
	} `json:"info"`
}

// Remaining returns the budget left on the key in dollars, and whether the
// key has a budget ceiling at all.
func (ki *KeyInfo) Remaining() (float64, bool) {
	if ki.Info.MaxBudget == nil {
		return 0, false
	}
	return *ki.Info.MaxBudget - ki.Info.Spend, true
}

// handleErrorResponse turns a non-success gateway response into an error
// carrying the gateway's error code, type, and message.
func handleErrorResponse(resp *http.Response) error {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	err := unmarshalJSON(resp.Body, &errResp)
	if err != nil {
		return fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return fmt.Errorf("gateway error: %s: %s: %s", errResp.Error.Code, errResp.Error.Type, errResp.Error.Message)
}

// unmarshalJSON reads the response body and unmarshals it into the provided result struct.
func unmarshalJSON(r io.Reader, result any) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(b, result)
	if err != nil {
		return err
	}
	return nil
}

// GetKeyInfo fetches spend and budget information for the client's own key.
func (c *Client) GetKeyInfo(ctx context.Context) (*KeyInfo, error) {
	url := fmt.Sprintf("%s/key/info", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, handleErrorResponse(resp)
	}

	var info KeyInfo
	err = unmarshalJSON(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal gateway response: %w", err)
	}

	return &info, nil
}
