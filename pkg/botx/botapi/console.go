// Package botapi contains implementations of bot API interfaces.
package botapi

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Nachthirsch/News-App/pkg/botx"
)

// Console reads commands line by line from the reader and writes responses
// to the writer.
type Console struct {
	in      io.Reader
	session string
	prompt  string

	mu  sync.Mutex
	out io.Writer

	updates chan botx.Request
}

// NewConsole makes a new console API.
func NewConsole(in io.Reader, out io.Writer, session, prompt string) *Console {
	return &Console{
		in:      in,
		out:     out,
		session: session,
		prompt:  prompt,
		updates: make(chan botx.Request),
	}
}

// Run reads the input until it ends or the context is done, then closes
// the updates channel.
func (c *Console) Run(ctx context.Context) error {
	defer close(c.updates)

	sc := bufio.NewScanner(c.in)
	c.writePrompt()

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case c.updates <- botx.Request{Session: c.session, Text: line}:
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}

// Updates returns updates channel.
func (c *Console) Updates() <-chan botx.Request { return c.updates }

// SendMessage writes the response to the output.
func (c *Console) SendMessage(ctx context.Context, resp botx.Response) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	text := strings.TrimRight(resp.Text, "\n")
	if _, err := fmt.Fprintf(c.out, "%s\n%s", text, c.prompt); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}

func (c *Console) writePrompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, c.prompt)
}
