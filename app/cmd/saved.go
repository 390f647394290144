package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Nachthirsch/News-App/app/feed"
	"github.com/Nachthirsch/News-App/app/store"
	"golang.org/x/exp/slog"
)

// StoreOpts defines where the bookmarks are kept.
type StoreOpts struct {
	StorePath string `long:"store-path" env:"STORE_PATH" description:"parent dir for bolt files, bookmarks are kept in memory if empty"`
}

func (o StoreOpts) open(lg *slog.Logger) (kv store.KV, closeFn func(), err error) {
	if o.StorePath == "" {
		lg.Warn("store path is not set, bookmarks will not survive restart")
		return store.NewMemory(), func() {}, nil
	}

	b, err := store.NewBolt(o.StorePath)
	if err != nil {
		return nil, nil, fmt.Errorf("make store: %w", err)
	}

	return b, func() {
		if err := b.Close(); err != nil {
			lg.Error("close bolt store", slog.Any("err", err))
		}
	}, nil
}

// Saved is a command to print saved articles.
type Saved struct {
	StoreOpts

	out io.Writer
}

// Execute runs the command.
func (s Saved) Execute(_ []string) error {
	lg := slog.Default()

	kv, closeKV, err := s.open(lg)
	if err != nil {
		return err
	}
	defer closeKV()

	bookmarks := feed.NewBookmarks(lg.With(slog.String("prefix", "bookmarks")), kv)
	if err = bookmarks.Load(context.Background()); err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}

	out := s.out
	if out == nil {
		out = os.Stdout
	}

	list := bookmarks.List()
	if len(list) == 0 {
		_, err = fmt.Fprintln(out, "no saved articles")
		return err
	}

	for i, a := range list {
		if _, err = fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, a.Headline.Main, a.WebURL); err != nil {
			return fmt.Errorf("print article: %w", err)
		}
	}

	return nil
}
