package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/parkerdavis/gmaps"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/shoenig/test/must"
)

func TestRecordCall(t *testing.T) {
	tracker := usage.NewTracker(nil, nil)

	recordCall(t.Context(), tracker, usage.APIStaticMaps, nil)

	session := tracker.Session()
	must.Eq(t, 1, len(session))
	must.True(t, session[0].Success)
	must.Eq(t, http.StatusOK, session[0].StatusCode)
	must.Eq(t, usage.DefaultPricing[usage.APIStaticMaps], session[0].Cost)
}

func TestRecordCall_writeFailureStillBilled(t *testing.T) {
	tracker := usage.NewTracker(nil, nil)

	// The fetch completed and was billed; only the disk write failed.
	err := &gmaps.WriteError{Path: "output/map.png", Err: errors.New("read-only filesystem")}
	recordCall(t.Context(), tracker, usage.APIStaticMaps, err)

	session := tracker.Session()
	must.Eq(t, 1, len(session))
	must.True(t, session[0].Success)
	must.Eq(t, http.StatusOK, session[0].StatusCode)
	must.Eq(t, usage.DefaultPricing[usage.APIStaticMaps], session[0].Cost)
}

func TestRecordCall_apiError(t *testing.T) {
	tracker := usage.NewTracker(nil, nil)

	err := &gmaps.APIError{Endpoint: "/maps/api/staticmap", StatusCode: http.StatusForbidden}
	recordCall(t.Context(), tracker, usage.APIStaticMaps, err)

	session := tracker.Session()
	must.Eq(t, 1, len(session))
	must.False(t, session[0].Success)
	must.Eq(t, http.StatusForbidden, session[0].StatusCode)
	must.Eq(t, 0, session[0].Cost)
}

func TestRecordCall_rejectedRequestsNotRecorded(t *testing.T) {
	tracker := usage.NewTracker(nil, nil)

	recordCall(t.Context(), tracker, usage.APIStaticMaps, &gmaps.ValidationError{Err: errors.New("zoom: must be no less than 0")})
	recordCall(t.Context(), tracker, usage.APIStaticMaps, &gmaps.ConfigurationError{EnvVar: gmaps.EnvAPIKey})

	must.Eq(t, 0, len(tracker.Session()))
}
