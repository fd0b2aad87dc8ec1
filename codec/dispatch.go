package codec

import (
	"sort"

	"go.uber.org/zap"

	"github.com/relayspeak/tscommands/errors"
	"github.com/relayspeak/tscommands/wire"
)

// Dispatcher routes decoded commands to message parsers by notify name and
// wraps each parsed record in the caller's notification union type N.
// Registration happens at generation time; after that the dispatcher is
// immutable and safe for concurrent use.
type Dispatcher[N any] struct {
	entries map[string]dispatchEntry[N]
}

type dispatchEntry[N any] struct {
	msg  *CompiledMessage
	wrap func(rec any) N
}

func NewDispatcher[N any]() *Dispatcher[N] {
	return &Dispatcher[N]{
		entries: make(map[string]dispatchEntry[N]),
	}
}

// Register adds a notification-capable message. wrap receives the record
// pointer produced by the message's Parse and returns the tagged union
// value. Registering two messages under one notify name is a generation
// defect, not a runtime one.
func (d *Dispatcher[N]) Register(msg *CompiledMessage, wrap func(rec any) N) error {
	if msg.notify == "" {
		return errors.New(errors.PhaseGenerate, errors.KindInvalidData).
			Message(msg.name).
			Detail("message declares no notify name").
			Build()
	}
	if _, dup := d.entries[msg.notify]; dup {
		return errors.DuplicateNotify(msg.notify)
	}
	d.entries[msg.notify] = dispatchEntry[N]{msg: msg, wrap: wrap}

	Logger().Debug("registered notification",
		zap.String("notify", msg.notify),
		zap.String("message", msg.name))
	return nil
}

// Dispatch routes a command by name: a pure lookup, no positional
// assumptions. An unregistered name fails with command_not_found; a
// registered one delegates to the message's Parse and wraps the result.
func (d *Dispatcher[N]) Dispatch(cmd *wire.CanonicalCommand) (N, error) {
	var zero N
	e, ok := d.entries[cmd.Name]
	if !ok {
		return zero, errors.CommandNotFound(cmd.Name)
	}

	rec, err := e.msg.Parse(cmd)
	if err != nil {
		return zero, err
	}
	return e.wrap(rec), nil
}

// Lookup returns the compiled message registered under a notify name.
func (d *Dispatcher[N]) Lookup(notify string) (*CompiledMessage, bool) {
	e, ok := d.entries[notify]
	return e.msg, ok
}

// Names returns every registered notify name, sorted.
func (d *Dispatcher[N]) Names() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
