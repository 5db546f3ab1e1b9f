package client

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// StatementEvent describes one statement passing through the client.
type StatementEvent struct {
	Op       string
	Table    string
	SQL      string
	Args     []any
	Duration time.Duration
	Err      error
	Start    time.Time
	End      time.Time
}

// Middleware intercepts statements. It must call next to run the statement.
type Middleware func(ctx context.Context, event *StatementEvent, next func() error) error

// Use appends middleware to the chain. Middleware runs in the order added.
func (c *Client) Use(mw ...Middleware) *Client {
	c.middlewares = append(c.middlewares, mw...)
	return c
}

// executeWithMiddleware executes a statement with the middleware chain
func (c *Client) executeWithMiddleware(ctx context.Context, event *StatementEvent, exec func() error) error {
	event.Start = time.Now()

	var next func() error
	index := 0

	next = func() error {
		if index >= len(c.middlewares) {
			err := exec()
			event.End = time.Now()
			event.Duration = event.End.Sub(event.Start)
			event.Err = err
			return err
		}

		mw := c.middlewares[index]
		index++
		return mw(ctx, event, next)
	}

	return next()
}

// LoggingMiddleware logs every statement to logger at info level.
func LoggingMiddleware(logger zerolog.Logger) Middleware {
	return func(ctx context.Context, event *StatementEvent, next func() error) error {
		err := next()
		e := logger.Info()
		if err != nil {
			e = logger.Error().Err(err)
		}
		e.Str("op", event.Op).
			Str("table", event.Table).
			Str("sql", event.SQL).
			Dur("took", event.Duration).
			Msg("statement")
		return err
	}
}

// TimingMiddleware reports the duration of every statement.
func TimingMiddleware(onTiming func(event *StatementEvent)) Middleware {
	return func(ctx context.Context, event *StatementEvent, next func() error) error {
		err := next()
		if onTiming != nil {
			onTiming(event)
		}
		return err
	}
}
