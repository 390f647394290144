// Package botmw provides middlewares for bot handler.
package botmw

import (
	"context"
	"fmt"
	"time"

	"github.com/Nachthirsch/News-App/pkg/botx"
	"golang.org/x/exp/slog"
)

// Logger is a middleware that logs all requests.
func Logger(lg *slog.Logger) botx.Middleware {
	return func(next botx.Handler) botx.Handler {
		return func(ctx context.Context, req botx.Request) ([]botx.Response, error) {
			start := time.Now()
			res, err := next(ctx, req)

			args := []any{
				slog.String("command", req.Command()),
				slog.Int("responses", len(res)),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				args = append(args, slog.Any("err", err))
			}

			if lg.Handler().Enabled(ctx, slog.LevelDebug) {
				lg.DebugCtx(ctx, "request processed", append(args, slog.String("text", req.Text))...)
				return res, err
			}

			lg.InfoCtx(ctx, "request processed", args...)
			return res, err
		}
	}
}

// Recover is a middleware that turns panics into errors.
func Recover(lg *slog.Logger) botx.Middleware {
	return func(next botx.Handler) botx.Handler {
		return func(ctx context.Context, req botx.Request) (resps []botx.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					lg.ErrorCtx(ctx, "panic recovered", slog.Any("panic", r))
					resps, err = nil, fmt.Errorf("panic: %v", r)
				}
			}()

			return next(ctx, req)
		}
	}
}
