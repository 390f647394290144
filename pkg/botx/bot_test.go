package botx

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type chanAPI struct {
	updates chan Request
	mu      sync.Mutex
	sent    []Response
}

func (a *chanAPI) Updates() <-chan Request { return a.updates }

func (a *chanAPI) SendMessage(_ context.Context, resp Response) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sent = append(a.sent, resp)
	return nil
}

func TestBot_Run(t *testing.T) {
	api := &chanAPI{updates: make(chan Request, 3)}
	api.updates <- Request{Text: "/a"}
	api.updates <- Request{Text: "/fail"}
	api.updates <- Request{Text: "/b"}
	close(api.updates)

	b := NewBot(func(_ context.Context, req Request) ([]Response, error) {
		if req.Text == "/fail" {
			return []Response{{Text: "failed"}}, errors.New("boom")
		}
		return []Response{{Text: "ok " + req.Text}}, nil
	}, api, WithWorkers(1))

	done := make(chan struct{})
	go func() {
		b.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("bot must stop when updates are closed")
	}

	assert.Equal(t, []Response{{Text: "ok /a"}, {Text: "failed"}, {Text: "ok /b"}}, api.sent)
}
