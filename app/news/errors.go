package news

import (
	"errors"
	"fmt"
)

// ErrConfig is returned when the service is not configured properly.
var ErrConfig = errors.New("configuration error")

// ErrRateLimited is returned when the upstream limited our requests and
// there is no cached response to fall back to.
var ErrRateLimited = errors.New("rate limit exceeded, please try again in a few minutes")

// UpstreamError is returned when the upstream responded with a non-successful status.
type UpstreamError struct {
	Status     int
	StatusText string
}

// Error returns the error message.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("api error: %d - %s", e.Status, e.StatusText)
}
