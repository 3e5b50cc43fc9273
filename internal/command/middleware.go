package command

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"
)

// Middleware wraps a command (e.g. logging, panic recovery).
type Middleware func(Command) Command

// Apply applies middlewares in order; the last in the list is the outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}

// Unwrappable is implemented by wrapped commands so the dispatcher can reach
// the underlying command (e.g. to type-assert to SlashProvider or Deferrer).
type Unwrappable interface {
	Command
	Unwrap() Command
}

type wrapped struct {
	Command
	run func(ctx context.Context, inv *Invocation) (*Reply, error)
}

func (w *wrapped) Run(ctx context.Context, inv *Invocation) (*Reply, error) {
	return w.run(ctx, inv)
}

func (w *wrapped) Unwrap() Command { return w.Command }

// Wrap returns a command that runs run instead of c.Run.
func Wrap(c Command, run func(ctx context.Context, inv *Invocation) (*Reply, error)) Command {
	return &wrapped{Command: c, run: run}
}

// Root unwraps a command until the underlying command is not Unwrappable.
func Root(c Command) Command {
	for {
		u, ok := c.(Unwrappable)
		if !ok {
			return c
		}
		c = u.Unwrap()
	}
}

// WithRecover turns a panic inside a command into an error.
func WithRecover() Middleware {
	return func(cmd Command) Command {
		return Wrap(cmd, func(ctx context.Context, inv *Invocation) (reply *Reply, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[ERR] Panic in /%s: %v\n%s", cmd.Name(), r, debug.Stack())
					reply, err = nil, fmt.Errorf("internal error: %v", r)
				}
			}()
			return cmd.Run(ctx, inv)
		})
	}
}

// WithCommandLogger logs every execution with its outcome and duration.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return Wrap(cmd, func(ctx context.Context, inv *Invocation) (*Reply, error) {
			start := time.Now()
			reply, err := cmd.Run(ctx, inv)
			elapsed := time.Since(start).Round(time.Millisecond)

			if err != nil {
				log.Printf("[ERR] /%s by %s (%s) in guild %q channel %q failed after %v: %v",
					cmd.Name(), inv.Username, inv.UserID, inv.GuildID, inv.ChannelID, elapsed, err)
				return reply, err
			}
			log.Printf("[INFO] /%s by %s (%s) in guild %q channel %q done in %v",
				cmd.Name(), inv.Username, inv.UserID, inv.GuildID, inv.ChannelID, elapsed)
			return reply, nil
		})
	}
}
