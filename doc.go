// Package tscommands provides a schema-driven codec for the TeamSpeak
// server query command protocol.
//
// The protocol is a line-oriented text format of space-separated escaped
// key/value pairs. This library turns declaration tables describing that
// protocol into compiled per-message codecs that parse incoming commands
// into typed Go records and serialize records back to the wire shape.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	tscommands/          Root package, documentation only
//	├── codec/           Compiles declarations into per-message codecs and dispatches commands
//	├── schema/          Declaration tables: fields, messages, notify bindings
//	├── messages/        Generated-style record types and the default dispatcher
//	├── ts/              Protocol value types: ids, enums, durations
//	├── wire/            Command shapes exchanged with the transport layer
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Dispatch a command with the built-in declarations:
//
//	d, err := messages.Dispatcher()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n, err := d.Dispatch(&wire.CanonicalCommand{
//	    Name: "notifyclientmoved",
//	    Args: map[string]string{"clid": "5", "ctid": "7", "reasonid": "1"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	switch ev := n.(type) {
//	case *messages.ClientMoved:
//	    fmt.Println(ev.TargetChannelId)
//	}
//
// Records serialize back through the compiled message:
//
//	cm, _ := d.Lookup("notifyclientmoved")
//	cmd, err := cm.Encode(ev)
//
// # Declaration Tables
//
// Message shapes are not written by hand per message. A declaration file
// names every protocol parameter once, with its wire key and semantic
// type, and composes messages from those parameters. The codec package
// compiles each (message, Go struct) pair into a CompiledMessage, checking
// at compile time that every declared parameter has a Go member of the
// right type. Shape drift between declarations and records is a
// construction error, never a per-command surprise.
//
// # Thread Safety
//
// Compiler, CompiledMessage and Dispatcher are safe for concurrent use
// once built. Registration is not synchronized and should finish before
// dispatching starts.
package tscommands
