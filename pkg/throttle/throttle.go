// Package throttle provides a limiter that keeps a minimal interval between
// outgoing requests, and a requester middleware applying it.
package throttle

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/time/rate"
)

// Limiter delays callers so that no two of them are released closer than
// the interval to each other. A single limiter is meant to be shared by all
// clients of the process.
type Limiter struct {
	lim      *rate.Limiter
	interval time.Duration

	mu   sync.Mutex
	next time.Time // earliest release of the next caller

	Options
}

// Options defines options for Limiter.
type Options struct {
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// Option defines a function that configures Limiter.
type Option func(*Options)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.Now = now }
}

// WithSleep sets the function used to wait for the reserved slot.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Options) { o.Sleep = sleep }
}

// New makes a new Limiter with the given minimal interval.
func New(interval time.Duration, opts ...Option) *Limiter {
	options := Options{Now: time.Now, Sleep: sleep}
	for _, opt := range opts {
		opt(&options)
	}

	return &Limiter{
		lim:      rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
		Options:  options,
	}
}

// Wait blocks until the caller is allowed to proceed.
// It fails only if the context is done before that.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	now := l.Now()
	r := l.lim.ReserveN(now, 1)

	// rate computes the delay in floats and may release a nanosecond early
	release := now.Add(r.DelayFrom(now))
	if release.Before(l.next) {
		release = l.next
	}
	prev := l.next
	l.next = release.Add(l.interval)
	l.mu.Unlock()

	delay := release.Sub(now)
	if delay <= 0 {
		return nil
	}

	if err := l.Sleep(ctx, delay); err != nil {
		l.mu.Lock()
		r.CancelAt(l.Now())
		if l.next.Equal(release.Add(l.interval)) {
			l.next = prev
		}
		l.mu.Unlock()
		return err
	}

	return nil
}

// RoundTripper gates every request of the client behind the limiter.
func RoundTripper(l *Limiter) middleware.RoundTripperHandler {
	return func(next http.RoundTripper) http.RoundTripper {
		return middleware.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := l.Wait(req.Context()); err != nil {
				return nil, err
			}
			return next.RoundTrip(req)
		})
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
