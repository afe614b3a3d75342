// Package usage is a ledger of billable API calls. Every call to a paid
// endpoint gets a record with its unit cost, so a session can answer the
// question this whole project exists for: how much money did that just cost,
// and what would it cost if it ran every day.
package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/parkerdavis/gmaps/internal/usage/store"
	"github.com/segmentio/ksuid"
)

// API families with known per-call pricing.
const (
	APIStaticMaps  = "static_maps"
	APIGeocoding   = "geocoding"
	APIPlaces      = "places"
	APIGatewayChat = "gateway_chat"
)

// FreeTierMonthlyCredit is the monthly Maps Platform free credit in dollars.
const FreeTierMonthlyCredit = 200.0

// DefaultPricing is the cost per successful call in dollars, as of 2024
// pricing. Families without an entry (like gateway chat, which is billed by
// token on the gateway side) are recorded at zero cost.
var DefaultPricing = map[string]float64{
	APIStaticMaps: 0.002, // $2 per 1000 requests after free tier
	APIGeocoding:  0.005, // $5 per 1000 requests
	APIPlaces:     0.017, // $17 per 1000 requests
}

// Call is one recorded API call.
type Call struct {
	// API is the API family, one of the API constants.
	API string `json:"api"`

	// Success reports whether the call returned a success status.
	Success bool `json:"success"`

	// StatusCode is the HTTP status code of the response, 0 if the request
	// never completed.
	StatusCode int `json:"status_code"`

	// Timestamp is when the call was recorded, in UTC.
	Timestamp time.Time `json:"timestamp"`

	// Cost is the dollar cost attributed to the call. Failed calls are not
	// billed and carry zero cost.
	Cost float64 `json:"cost"`
}

// Tracker records billable calls into a ledger store and keeps the current
// session's calls for summarizing. It is not safe for concurrent use; one
// request is in flight at a time by design.
type Tracker struct {
	store   store.Store[Call]
	pricing map[string]float64
	session []Call
}

// NewTracker creates a Tracker persisting into the given store. A nil store
// keeps records in memory for the session only. A nil pricing map uses
// DefaultPricing.
func NewTracker(s store.Store[Call], pricing map[string]float64) *Tracker {
	if pricing == nil {
		pricing = DefaultPricing
	}
	return &Tracker{store: s, pricing: pricing}
}

// Record adds a call to the ledger, attributing the family's unit cost when
// the call succeeded. The entry is keyed by a fresh ksuid, so ledger order
// is creation order.
func (t *Tracker) Record(ctx context.Context, api string, success bool, statusCode int) (Call, error) {
	call := Call{
		API:        api,
		Success:    success,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
	}

	if success {
		call.Cost = t.pricing[api]
	}

	if t.store != nil {
		if err := t.store.Set(ctx, ksuid.New().String(), call); err != nil {
			return call, fmt.Errorf("failed to record call: %w", err)
		}
	}

	t.session = append(t.session, call)

	return call, nil
}

// Session returns the calls recorded by this tracker, in order.
func (t *Tracker) Session() []Call {
	return t.session
}

// Summary returns the totals for this tracker's session.
func (t *Tracker) Summary() Summary {
	return Summarize(t.session)
}

// History reads back the full persisted ledger, oldest first.
func (t *Tracker) History(ctx context.Context) ([]store.Entry[Call], error) {
	if t.store == nil {
		return nil, nil
	}

	var (
		all       []store.Entry[Call]
		pageToken *string
	)

	for {
		entries, next, err := t.store.List(ctx, nil, pageToken)
		if err != nil {
			return nil, fmt.Errorf("failed to list ledger entries: %w", err)
		}

		for key, call := range entries {
			all = append(all, store.Entry[Call]{Key: key, Value: call})
		}

		if next == nil {
			break
		}
		pageToken = next
	}

	return all, nil
}

// Summary holds the totals for a set of calls.
type Summary struct {
	Calls     int
	Succeeded int
	Failed    int
	Cost      float64
}

// Summarize computes totals over the given calls.
func Summarize(calls []Call) Summary {
	s := Summary{Calls: len(calls)}

	for _, call := range calls {
		if call.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
		s.Cost += call.Cost
	}

	return s
}

// Projection extrapolates a summary's cost as if the same calls were made
// every day.
type Projection struct {
	Daily   float64
	Monthly float64 // 30 days
	Yearly  float64 // 365 days

	// FreeTierRemaining is the monthly free credit left after the projected
	// monthly spend. Negative means the free tier would be exceeded.
	FreeTierRemaining float64
}

// Project extrapolates the summary's cost to daily, monthly, and yearly
// spend against the free tier.
func (s Summary) Project() Projection {
	daily := s.Cost
	monthly := daily * 30

	return Projection{
		Daily:             daily,
		Monthly:           monthly,
		Yearly:            daily * 365,
		FreeTierRemaining: FreeTierMonthlyCredit - monthly,
	}
}

// WithinFreeTier reports whether the projected monthly spend fits in the
// monthly free credit.
func (p Projection) WithinFreeTier() bool {
	return p.FreeTierRemaining >= 0
}
