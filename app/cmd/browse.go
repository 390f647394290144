// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nachthirsch/News-App/app/bot"
	"github.com/Nachthirsch/News-App/app/feed"
	"github.com/Nachthirsch/News-App/app/news"
	"github.com/Nachthirsch/News-App/pkg/botx"
	"github.com/Nachthirsch/News-App/pkg/botx/botapi"
	"github.com/Nachthirsch/News-App/pkg/logx"
	"github.com/Nachthirsch/News-App/pkg/throttle"
	"github.com/go-pkgz/requester"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Browse is a command to read news in the console.
type Browse struct {
	APIKey    string        `long:"api-key" env:"API_KEY" description:"news api key"`
	SearchURL string        `long:"search-url" env:"ARTICLE_SEARCH_URL" default:"https://api.nytimes.com/svc/search/v2" description:"article search api base url"`
	WireURL   string        `long:"wire-url" env:"TIMESWIRE_URL" default:"https://api.nytimes.com/svc/news/v3" description:"times wire api base url"`
	Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"timeout for upstream requests"`
	Interval  time.Duration `long:"interval" env:"INTERVAL" default:"1s" description:"min interval between upstream requests"`
	Provider  string        `long:"provider" env:"PROVIDER" default:"articlesearch" choice:"articlesearch" choice:"timeswire" description:"search provider"`

	Cache struct {
		TTL     time.Duration `long:"ttl" env:"TTL" default:"5m" description:"time a response stays fresh"`
		MaxKeys int           `long:"max-keys" env:"MAX_KEYS" default:"0" description:"max cached responses, 0 is unbounded"`
	} `group:"cache" namespace:"cache" env-namespace:"CACHE"`

	CommandTimeout time.Duration `long:"command-timeout" env:"COMMAND_TIMEOUT" default:"1m" description:"timeout for a console command"`

	StoreOpts
}

// Execute runs the command.
func (b Browse) Execute(_ []string) error {
	lg := slog.Default()

	provider, err := news.ParseProvider(b.Provider)
	if err != nil {
		return fmt.Errorf("%w: %v", news.ErrConfig, err)
	}

	cl := requester.New(
		http.Client{Timeout: b.Timeout},
		throttle.RoundTripper(throttle.New(b.Interval)),
		logx.LoggingRoundTripper(lg.With(slog.String("prefix", "upstream")), logx.RoundTripperOpts{
			Level:        slog.LevelDebug,
			SecretParams: []string{"api-key"},
		}),
	).Client()

	svc, err := news.NewService(lg.With(slog.String("prefix", "news")), cl, news.Params{
		APIKey:    b.APIKey,
		SearchURL: b.SearchURL,
		WireURL:   b.WireURL,
		Cache:     news.NewCache(news.CacheOpts{TTL: b.Cache.TTL, MaxKeys: b.Cache.MaxKeys}),
	})
	if err != nil {
		return fmt.Errorf("make news service: %w", err)
	}

	kv, closeKV, err := b.open(lg)
	if err != nil {
		return err
	}
	defer closeKV()

	bookmarks := feed.NewBookmarks(lg.With(slog.String("prefix", "bookmarks")), kv)
	if err = bookmarks.Load(context.Background()); err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}

	ctrl := &bot.Ctrl{
		Logger:         lg.With(slog.String("prefix", "bot")),
		Service:        svc,
		Feeds:          feed.NewFeeds(time.Now),
		Bookmarks:      bookmarks,
		Provider:       provider,
		HandlerTimeout: b.CommandTimeout,
	}

	api := botapi.NewConsole(os.Stdin, os.Stdout, "console", "> ")

	// commands are handled one by one, so the feeds keep the order
	// they were entered in
	bt := botx.NewBot(
		ctrl.Routes().Handle,
		api,
		botx.WithLogger(lg.With(slog.String("prefix", "botx"))),
		botx.WithWorkers(1),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case sig := <-sig:
			lg.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		defer stop()
		lg.Info("starting reader", slog.String("provider", string(provider)))
		bt.Run(ctx)
		lg.Debug("reader stopped")
		return nil
	})

	// console is run out of errgroup, as reading the input can't be
	// interrupted, the reader stops when the updates channel is closed
	go func() {
		if err := api.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lg.Error("failed to read console input", slog.Any("err", err))
		}
	}()

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
