package botx

import (
	"context"
	"strings"
)

// Handler handles requests.
type Handler func(ctx context.Context, req Request) ([]Response, error)

// Middleware wraps a handler.
type Middleware func(Handler) Handler

// Request is a single command line entered by the user.
type Request struct {
	Session string
	Text    string
}

// Command returns the first word of the request.
func (r Request) Command() string {
	cmd, _, _ := strings.Cut(strings.TrimSpace(r.Text), " ")
	return cmd
}

// Args returns the request text after the command.
func (r Request) Args() string {
	_, args, _ := strings.Cut(strings.TrimSpace(r.Text), " ")
	return strings.TrimSpace(args)
}

// Response is a message to show to the user.
type Response struct {
	Session string
	Text    string
}

// NotFound is a default handler for unknown commands.
func NotFound(_ context.Context, req Request) ([]Response, error) {
	return []Response{{Session: req.Session, Text: "command not found, try /help"}}, nil
}
