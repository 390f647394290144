package botmw

import (
	"context"
	"fmt"

	"github.com/Nachthirsch/News-App/pkg/botx"
	"github.com/Nachthirsch/News-App/pkg/logx"
	"github.com/google/uuid"
)

// RequestID is a middleware that adds request id to context.
func RequestID() botx.Middleware {
	return func(next botx.Handler) botx.Handler {
		return func(ctx context.Context, req botx.Request) ([]botx.Response, error) {
			return next(logx.ContextWithRequestID(ctx, uuid.New().String()), req)
		}
	}
}

// AppendRequestIDOnError is a middleware that tells the user the request
// failed, with its request id to look the logs up.
func AppendRequestIDOnError() botx.Middleware {
	return func(next botx.Handler) botx.Handler {
		return func(ctx context.Context, req botx.Request) ([]botx.Response, error) {
			resps, err := next(ctx, req)
			if err == nil {
				return resps, nil
			}

			reqID, _ := logx.RequestIDFromContext(ctx)
			resps = append(resps, botx.Response{
				Session: req.Session,
				Text:    fmt.Sprintf("Something went wrong: %v\nRequest ID: %s", err, reqID),
			})

			return resps, err
		}
	}
}
