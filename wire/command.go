// Package wire defines the generic command representations exchanged with the
// protocol transport.
//
// CanonicalCommand is the already-decoded form of one incoming message, as
// produced by the upstream wire decoder: a command name plus a flat key/value
// argument map. Command is the outgoing form handed to the downstream wire
// encoder: a command name plus an ordered list of static arguments. Neither
// type knows anything about message schemas; the codec package gives them
// meaning.
package wire

// CanonicalCommand is one decoded incoming protocol message.
// The codec treats it as read-only.
type CanonicalCommand struct {
	Name string
	Args map[string]string
}

// KV is one key/value argument pair.
type KV struct {
	Key   string
	Value string
}

// Command is one outgoing protocol message. StaticArgs preserves declaration
// order. ListArgs carries pipe-separated argument groups; commands produced
// by the codec always leave it empty.
type Command struct {
	Name       string
	StaticArgs []KV
	ListArgs   [][]KV
}

// NewCanonical builds a CanonicalCommand from alternating key/value strings.
// It panics on an odd argument count; it exists for tests and tooling, not
// for the transport path.
func NewCanonical(name string, kv ...string) *CanonicalCommand {
	if len(kv)%2 != 0 {
		panic("wire: NewCanonical requires key/value pairs")
	}
	args := make(map[string]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		args[kv[i]] = kv[i+1]
	}
	return &CanonicalCommand{Name: name, Args: args}
}
