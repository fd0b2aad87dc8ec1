// Package codec compiles message declarations into typed record codecs.
//
// The package is the semantic core of the library: it owns the closed table
// of per-type parse/serialize rules, composes them into per-message parsers
// and serializers, and routes incoming commands to the right parser by
// notify name.
//
//	schema tables ──► Compiler ──► CompiledMessage ──► Dispatcher
//
// # Type codec table
//
// Kind enumerates every semantic type a field can declare. Each kind has one
// parse rule (wire text to typed value) and one serialize rule (typed value
// to wire text); the switches over Kind are exhaustive, so the table is
// closed. Noteworthy rules:
//
//	icon_hash   64-bit wire value bit-truncated to int32, lossy by contract
//	duration    unit (seconds or milliseconds) chosen per field annotation
//	date_time   epoch seconds, UTC, second precision
//	sequences   split on ' ' inbound, joined with ',' outbound
//
// # Compilation
//
// Compiler.Compile binds one message declaration to a Go record struct: it
// resolves the declared params, picks each field's kind, and locates the
// struct member that holds it (by ts tag, member name, or snake-to-camel
// wire name). Every defect is reported at compile time; a CompiledMessage
// that exists cannot fail except on bad input text.
//
// # Runtime
//
// CompiledMessage.Parse builds a record from a decoded command,
// all-or-nothing. Encode and EncodeOwned serialize a record back to a
// command; they share the rule table and differ only in whether the caller
// keeps the record. Dispatcher.Dispatch routes by command name and wraps
// records in the caller's notification union.
//
// All compiled state is immutable, so every operation here is safe for
// unsynchronized concurrent use.
package codec
