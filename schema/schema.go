package schema

import (
	"github.com/relayspeak/tscommands/errors"
)

// Field is one entry in the field table: the wire key, the record member
// name, the semantic type, and the original declaration annotation. Orig
// disambiguates semantic types with more than one wire encoding, such as a
// duration declared as DurationSeconds versus DurationMilliseconds.
type Field struct {
	Wire string `toml:"wire"`
	Name string `toml:"name"`
	Type string `toml:"type"`
	Orig string `toml:"orig"`
	List bool   `toml:"list"`
}

// Message is one entry in the message table. Params lists field wire names
// in declared order; every name must resolve in the field table. Response
// messages additionally carry a return code member ahead of their declared
// fields.
type Message struct {
	Name     string   `toml:"name"`
	Notify   string   `toml:"notify"`
	Response bool     `toml:"response"`
	Params   []string `toml:"params"`
}

// Notify names one variant of the notification union and the message whose
// record it carries.
type Notify struct {
	Variant string `toml:"variant"`
	Message string `toml:"message"`
}

// Registry holds the loaded declaration tables. It is immutable once built;
// lookups are safe for concurrent use.
type Registry struct {
	fields   map[string]*Field
	messages map[string]*Message
	order    []*Message
	notifies []*Notify
}

// NewRegistry builds a Registry from already-parsed tables, rejecting
// structural defects: duplicate wire names, duplicate message names, and
// notify entries referencing unknown messages.
func NewRegistry(fields []*Field, messages []*Message, notifies []*Notify) (*Registry, error) {
	r := &Registry{
		fields:   make(map[string]*Field, len(fields)),
		messages: make(map[string]*Message, len(messages)),
		order:    messages,
		notifies: notifies,
	}

	for _, f := range fields {
		if f.Wire == "" || f.Name == "" || f.Type == "" {
			return nil, errors.InvalidData("field %q: wire, name and type are required", f.Wire)
		}
		if _, dup := r.fields[f.Wire]; dup {
			return nil, errors.InvalidData("duplicate field wire name %q", f.Wire)
		}
		r.fields[f.Wire] = f
	}

	for _, m := range messages {
		if m.Name == "" {
			return nil, errors.InvalidData("message with empty name")
		}
		if _, dup := r.messages[m.Name]; dup {
			return nil, errors.InvalidData("duplicate message name %q", m.Name)
		}
		r.messages[m.Name] = m
	}

	for _, n := range notifies {
		if _, ok := r.messages[n.Message]; !ok {
			return nil, errors.InvalidData("notify %q references unknown message %q", n.Variant, n.Message)
		}
	}

	return r, nil
}

// Field returns the field declared under a wire name.
func (r *Registry) Field(wire string) (*Field, bool) {
	f, ok := r.fields[wire]
	return f, ok
}

// Message returns the message declared under a record name.
func (r *Registry) Message(name string) (*Message, bool) {
	m, ok := r.messages[name]
	return m, ok
}

// Messages returns every message in declaration order.
func (r *Registry) Messages() []*Message {
	return r.order
}

// Notifies returns every notification entry in declaration order.
func (r *Registry) Notifies() []*Notify {
	return r.notifies
}

// Resolve maps a message's params to field entries in declared order.
// A wire name absent from the field table is a fatal generation defect.
func (r *Registry) Resolve(m *Message) ([]*Field, error) {
	fields := make([]*Field, 0, len(m.Params))
	for _, wire := range m.Params {
		f, ok := r.fields[wire]
		if !ok {
			return nil, errors.UnresolvedField(m.Name, wire)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
