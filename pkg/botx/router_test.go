package botx

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(text string) Handler {
	return func(_ context.Context, req Request) ([]Response, error) {
		return []Response{{Session: req.Session, Text: text + ":" + req.Args()}}, nil
	}
}

func TestRouter_Handle(t *testing.T) {
	var trace []string
	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, req Request) ([]Response, error) {
				trace = append(trace, name)
				return next(ctx, req)
			}
		}
	}

	rtr := NewRouter()
	rtr.Use(mw("outer"))
	rtr.Add("/save", reply("save"))
	rtr.Add("/saved", reply("saved"))
	rtr.Group(func(r *Router) {
		r.Use(mw("inner"))
		r.Add("/cache", reply("cache"))
	})
	rtr.NotFound(reply("search"))

	tbl := []struct {
		text  string
		want  string
		trace []string
	}{
		{text: "/save 3", want: "save:3", trace: []string{"outer"}},
		{text: "/saved", want: "saved:", trace: []string{"outer"}},
		{text: "/cache", want: "cache:", trace: []string{"outer", "inner"}},
		{text: "kittens and cats", want: "search:and cats", trace: []string{"outer"}},
	}

	for _, tt := range tbl {
		t.Run(tt.text, func(t *testing.T) {
			trace = nil
			resps, err := rtr.Handle(context.Background(), Request{Session: "s", Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, []Response{{Session: "s", Text: tt.want}}, resps)
			assert.Equal(t, tt.trace, trace)
		})
	}

	resps, err := rtr.Handle(context.Background(), Request{Text: "   "})
	require.NoError(t, err)
	assert.Empty(t, resps)

	cmds := rtr.Commands()
	sort.Strings(cmds)
	assert.Equal(t, []string{"/cache", "/save", "/saved"}, cmds)
}

func TestRequest_CommandArgs(t *testing.T) {
	req := Request{Text: "  /search   I love Technology  "}
	assert.Equal(t, "/search", req.Command())
	assert.Equal(t, "I love Technology", req.Args())
}
