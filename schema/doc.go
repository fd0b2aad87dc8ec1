// Package schema holds the declaration tables the codec is generated from.
//
// A declaration file is TOML with three tables:
//
//	[[fields]]   wire, name, type, orig, list
//	[[messages]] name, notify, response, params
//	[[notifies]] variant, message
//
// The Registry is plain immutable data. It performs only the structural
// validation that does not require the codec's type knowledge; binding
// semantic types to Go record fields is the codec package's job.
package schema
