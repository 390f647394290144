package throttle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-pkgz/requester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestLimiter_Wait(t *testing.T) {
	clk := newFakeClock()
	l := New(time.Second, WithClock(clk.Now), WithSleep(clk.Sleep))
	ctx := context.Background()

	var dispatches []time.Time
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Wait(ctx))
		dispatches = append(dispatches, clk.Now())
	}

	assert.Equal(t, []time.Duration{time.Second, time.Second}, clk.sleeps)
	for i := 1; i < len(dispatches); i++ {
		assert.GreaterOrEqual(t, dispatches[i].Sub(dispatches[i-1]), time.Second)
	}
}

func TestLimiter_WaitsOnlyTheRemainder(t *testing.T) {
	clk := newFakeClock()
	l := New(time.Second, WithClock(clk.Now), WithSleep(clk.Sleep))
	ctx := context.Background()

	require.NoError(t, l.Wait(ctx))
	clk.Advance(300 * time.Millisecond)
	require.NoError(t, l.Wait(ctx))
	require.Len(t, clk.sleeps, 1)
	assert.GreaterOrEqual(t, clk.sleeps[0], 700*time.Millisecond)
	assert.Less(t, clk.sleeps[0], 701*time.Millisecond)

	clk.Advance(1500 * time.Millisecond)
	require.NoError(t, l.Wait(ctx))
	assert.Len(t, clk.sleeps, 1, "no wait expected after the interval passed")
}

func TestLimiter_SpacingAtUnevenOffsets(t *testing.T) {
	tbl := []time.Duration{
		0,
		1,
		time.Microsecond + 1,
		139902299,
		237569941,
		333333333,
		500000001,
		666666667,
		999999999,
	}
	for i := time.Duration(0); i < 200; i++ {
		tbl = append(tbl, i*4999999+i*i*37)
	}

	for _, offset := range tbl {
		clk := newFakeClock()
		l := New(time.Second, WithClock(clk.Now), WithSleep(clk.Sleep))
		ctx := context.Background()

		require.NoError(t, l.Wait(ctx))
		first := clk.Now()

		clk.Advance(offset)
		require.NoError(t, l.Wait(ctx))
		second := clk.Now()

		clk.Advance(offset / 3)
		require.NoError(t, l.Wait(ctx))
		third := clk.Now()

		assert.GreaterOrEqual(t, second.Sub(first), time.Second, "offset %s", offset)
		assert.GreaterOrEqual(t, third.Sub(second), time.Second, "offset %s", offset)
	}
}

func TestLimiter_CancelReturnsTheSlot(t *testing.T) {
	clk := newFakeClock()
	cancelled := false
	l := New(time.Second, WithClock(clk.Now), WithSleep(func(ctx context.Context, d time.Duration) error {
		if !cancelled {
			cancelled = true
			return context.Canceled
		}
		return clk.Sleep(ctx, d)
	}))
	ctx := context.Background()

	require.NoError(t, l.Wait(ctx))
	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)

	clk.Advance(time.Second)
	require.NoError(t, l.Wait(ctx))
	assert.Empty(t, clk.sleeps, "cancelled wait must not delay the next caller")
}

func TestLimiter_WaitCancelled(t *testing.T) {
	l := New(time.Hour)

	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)
}

func TestLimiter_RealClock(t *testing.T) {
	l := New(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, l.Wait(ctx))
	require.NoError(t, l.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	clk := newFakeClock()
	l := New(time.Second, WithClock(clk.Now), WithSleep(clk.Sleep))

	rq := requester.New(http.Client{Timeout: time.Second}, RoundTripper(l))

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodGet, ts.URL, http.NoBody)
		require.NoError(t, err)
		resp, err := rq.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, []time.Duration{time.Second}, clk.sleeps)
}
