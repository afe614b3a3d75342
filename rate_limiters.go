package gmaps

import (
	"time"

	"golang.org/x/time/rate"
)

// RateLimiters holds advisory client-side rate limiters for the Maps
// Platform web services, sized to the documented per-minute quotas.
//
// The client never enforces these on its own; callers opt in by consulting
// the appropriate limiter before making a request.
//
// # Example
//
//	// If the rate limiter allows the request, make the request.
//	if gmaps.RateLimits.StaticMaps.Requests.Allow() {
//	    img, err := client.GetStaticMap(ctx, req)
//	    ...
//	}
type RateLimiters struct {
	StaticMaps struct {
		Requests *rate.Limiter
	}
	Geocoding struct {
		Requests *rate.Limiter
	}
	Places struct {
		Requests *rate.Limiter
	}
}

// RateLimits is the default set of rate limiters, shared across clients
// using the same API key.
//
// Projects with raised quotas should create their own set with
// NewRateLimiters and adjust the limits accordingly.
var RateLimits = NewRateLimiters()

// NewRateLimiters returns a new set of rate limiters sized to the default
// Maps Platform quotas of 30,000 requests per minute for Static Maps and
// 3,000 requests per minute for Geocoding and Places.
func NewRateLimiters() *RateLimiters {
	rl := &RateLimiters{}

	rl.StaticMaps.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 30000)

	rl.Geocoding.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 3000)

	rl.Places.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 3000)

	return rl
}
