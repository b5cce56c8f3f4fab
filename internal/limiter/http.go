// Package limiter keeps outbound API calls within a configured rate.
package limiter

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// limitedRoundTripper wraps http.RoundTripper and allows requests with maximum rate limit.
// Implemented as a transport so that every client sharing the http.Client is limited,
// including generated API clients that only accept *http.Client.
type limitedRoundTripper struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewRoundTripper creates limited transport instance.
// maxRate - maximum number of requests per second.
func NewRoundTripper(base http.RoundTripper, maxRate float64) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	return &limitedRoundTripper{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until call rate is within limit.
func (t *limitedRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, fmt.Errorf("waiting for transport limiter: %w", err)
	}

	return t.base.RoundTrip(r)
}
