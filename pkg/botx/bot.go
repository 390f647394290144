// Package botx provides interfaces and types to handle line-based user
// commands, with a chi-like router.
package botx

import (
	"context"
	"sync"

	"github.com/Nachthirsch/News-App/pkg/logx"
	"golang.org/x/exp/slog"
)

// API defines methods for an API to receive commands and send responses.
type API interface {
	Updates() <-chan Request
	SendMessage(ctx context.Context, resp Response) error
}

// Bot defines parameters for running a bot over some API.
type Bot struct {
	h   Handler
	api API
	Options
}

// Options defines options for Bot.
type Options struct {
	Workers int
	Logger  *slog.Logger
}

// Option defines a function that configures Bot.
type Option func(*Options)

// WithWorkers sets the number of workers handling requests concurrently.
func WithWorkers(workers int) Option { return func(o *Options) { o.Workers = workers } }

// WithLogger sets the logger to use.
func WithLogger(logger *slog.Logger) Option { return func(o *Options) { o.Logger = logger } }

// NewBot creates a new Bot.
func NewBot(h Handler, api API, opts ...Option) *Bot {
	options := Options{
		Workers: 1,
		Logger:  slog.New(logx.NoOp()),
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Bot{h: h, api: api, Options: options}
}

// Run handles updates until the context is done or the updates
// channel is closed.
func (b *Bot) Run(ctx context.Context) {
	wg := &sync.WaitGroup{}
	wg.Add(b.Workers)

	for i := 0; i < b.Workers; i++ {
		go func(idx int) {
			defer wg.Done()

			b.Logger.DebugCtx(ctx, "starting worker", slog.Int("worker", idx))
			defer b.Logger.DebugCtx(ctx, "stopping worker", slog.Int("worker", idx))

			for {
				select {
				case <-ctx.Done():
					return
				case req, ok := <-b.api.Updates():
					if !ok {
						return
					}
					b.handleUpdate(ctx, req)
				}
			}
		}(i)
	}

	wg.Wait()
}

func (b *Bot) handleUpdate(ctx context.Context, req Request) {
	resps, err := b.h(ctx, req)
	if err != nil {
		b.Logger.ErrorCtx(ctx, "failed to handle request", slog.Any("err", err))
	}

	for _, resp := range resps {
		if err := b.api.SendMessage(ctx, resp); err != nil {
			b.Logger.WarnCtx(ctx, "failed to send message", slog.Any("err", err))
		}
	}
}
