package command

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrUnknownCommand is returned for names that are not registered.
var ErrUnknownCommand = errors.New("unknown command")

// Responder delivers the reply of one interaction.
type Responder interface {
	// Defer acknowledges the interaction without content.
	Defer(ctx context.Context) error
	// Send delivers the reply, as an edit if Defer was called.
	Send(ctx context.Context, reply *Reply) error
}

// Dispatcher runs the command named by an invocation and sends exactly one
// reply for it.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch looks up inv.Name and runs it. Unknown commands get no reply.
// A failing command gets one error text reply in place of its result.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *Invocation, r Responder) error {
	cmd, ok := d.registry.Get(inv.Name)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", inv.Name)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Name)
	}
	root := Root(cmd)

	if def, ok := root.(Deferrer); ok && def.Deferred() {
		if err := r.Defer(ctx); err != nil {
			return fmt.Errorf("failed to defer /%s: %w", inv.Name, err)
		}
	}

	reply := d.run(ctx, cmd, root, inv)
	if err := r.Send(ctx, reply); err != nil {
		return fmt.Errorf("failed to reply to /%s: %w", inv.Name, err)
	}
	return nil
}

func (d *Dispatcher) run(ctx context.Context, cmd, root Command, inv *Invocation) *Reply {
	if dec, ok := root.(ArgsDecoder); ok {
		args, err := dec.DecodeArgs(inv.Options)
		if err != nil {
			log.Printf("[WARN] Bad arguments for /%s: %v", inv.Name, err)
			return ErrorReply(inv.Name, err)
		}
		inv.Args = args
	}

	reply, err := cmd.Run(ctx, inv)
	if err != nil {
		return ErrorReply(inv.Name, err)
	}
	if reply == nil || (reply.Content == "" && reply.Embed == nil) {
		log.Printf("[ERR] /%s produced an empty reply", inv.Name)
		return ErrorReply(inv.Name, errors.New("command produced no reply"))
	}
	return reply
}
