package gmaps_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/parkerdavis/gmaps"
	"github.com/shoenig/test/must"
)

func TestNewClient_missingKey(t *testing.T) {
	t.Setenv(gmaps.EnvAPIKey, "")

	c, err := gmaps.NewClient("")
	must.Error(t, err)
	must.Nil(t, c)

	must.True(t, errors.Is(err, gmaps.ErrCredentialRequired))

	var confErr *gmaps.ConfigurationError
	must.True(t, errors.As(err, &confErr))
	must.Eq(t, gmaps.EnvAPIKey, confErr.EnvVar)
}

func TestNewClient_envFallback(t *testing.T) {
	t.Setenv(gmaps.EnvAPIKey, "env_key")

	c, err := gmaps.NewClient("")
	must.NoError(t, err)
	must.Eq(t, "env_key", c.APIKey)
}

func TestNewClient_explicitKeyWins(t *testing.T) {
	t.Setenv(gmaps.EnvAPIKey, "env_key")

	c, err := gmaps.NewClient("explicit_key")
	must.NoError(t, err)
	must.Eq(t, "explicit_key", c.APIKey)
}

func TestNewClient_options(t *testing.T) {
	hc := &http.Client{}

	c, err := gmaps.NewClient("test_key",
		gmaps.WithHTTPClient(hc),
		gmaps.WithBaseURL("http://localhost:8080"),
	)
	must.NoError(t, err)
	must.Eq(t, hc, c.HTTPClient)
	must.Eq(t, "http://localhost:8080", c.BaseURL)
}

func TestNewClient_nilHTTPClient(t *testing.T) {
	c, err := gmaps.NewClient("test_key", gmaps.WithHTTPClient(nil))
	must.NoError(t, err)
	must.Eq(t, http.DefaultClient, c.HTTPClient)
}
