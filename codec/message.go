package codec

import (
	"reflect"

	"github.com/relayspeak/tscommands/errors"
	"github.com/relayspeak/tscommands/schema"
	"github.com/relayspeak/tscommands/wire"
)

type compiledField struct {
	schema *schema.Field
	kind   Kind
	unit   durationUnit
	index  []int
}

// CompiledMessage is one message declaration bound to its Go record type.
// It is immutable after compilation; all operations are safe for concurrent
// use.
type CompiledMessage struct {
	name        string
	notify      string
	response    bool
	goType      reflect.Type
	fields      []compiledField
	returnIndex []int
}

// Name returns the record name of the message declaration.
func (m *CompiledMessage) Name() string { return m.name }

// NotifyName returns the wire command name, empty for non-notifications.
func (m *CompiledMessage) NotifyName() string { return m.notify }

// IsResponse reports whether records carry a return code member.
func (m *CompiledMessage) IsResponse() bool { return m.response }

// GoType returns the bound record struct type.
func (m *CompiledMessage) GoType() reflect.Type { return m.goType }

// Fields returns the declared field entries in record order.
func (m *CompiledMessage) Fields() []*schema.Field {
	out := make([]*schema.Field, len(m.fields))
	for i := range m.fields {
		out[i] = m.fields[i].schema
	}
	return out
}

// Parse constructs a record from a decoded command. Construction is
// all-or-nothing: a declared wire name missing from the args fails with
// parameter_not_found, a value failing its type rule fails with
// parameter_convert, and in either case no partial record escapes.
func (m *CompiledMessage) Parse(cmd *wire.CanonicalCommand) (any, error) {
	recPtr := reflect.New(m.goType)
	rec := recPtr.Elem()

	if m.response {
		// The return code rides along only when the peer echoes one; its
		// absence is not an error.
		if rc, ok := cmd.Args["return_code"]; ok {
			rec.FieldByIndex(m.returnIndex).SetString(rc)
		}
	}

	for i := range m.fields {
		f := &m.fields[i]
		raw, ok := cmd.Args[f.schema.Wire]
		if !ok {
			return nil, errors.ParameterNotFound(m.name, f.schema.Wire)
		}

		dst := rec.FieldByIndex(f.index)
		var err error
		if f.schema.List {
			err = parseList(dst, f.kind, f.unit, raw)
		} else {
			err = parseScalarInto(dst, f.kind, f.unit, raw)
		}
		if err != nil {
			return nil, errors.ParameterConvert(m.name, f.schema.Wire, raw, err)
		}
	}

	return recPtr.Interface(), nil
}

// Encode serializes a record the caller keeps. rec must be a pointer to the
// bound record type.
func (m *CompiledMessage) Encode(rec any) (*wire.Command, error) {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Type() != m.goType {
		return nil, m.encodeTypeError(rec)
	}
	return m.encodeFields(v.Elem()), nil
}

// EncodeOwned serializes a record the caller hands off. rec may be the
// record value or a pointer to it; the produced command may alias the
// record's string contents rather than copy them. Apart from that, Encode
// and EncodeOwned share the same per-type rules and produce identical
// commands.
func (m *CompiledMessage) EncodeOwned(rec any) (*wire.Command, error) {
	v := reflect.ValueOf(rec)
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() || v.Type() != m.goType {
		return nil, m.encodeTypeError(rec)
	}
	return m.encodeFields(v), nil
}

func (m *CompiledMessage) encodeTypeError(rec any) error {
	return errors.New(errors.PhaseSerialize, errors.KindTypeMismatch).
		Message(m.name).
		Value(rec).
		Detail("record must be %s or *%s", m.goType, m.goType).
		Build()
}

// encodeFields produces the command: the notify name, then one static arg
// per declared field in record order. The return code member is not a
// declared field and never serializes.
func (m *CompiledMessage) encodeFields(rec reflect.Value) *wire.Command {
	cmd := &wire.Command{
		Name:       m.notify,
		StaticArgs: make([]wire.KV, 0, len(m.fields)),
	}

	for i := range m.fields {
		f := &m.fields[i]
		src := rec.FieldByIndex(f.index)

		var value string
		if f.schema.List {
			value = encodeList(src, f.kind, f.unit)
		} else {
			value = encodeScalar(src, f.kind, f.unit)
		}

		cmd.StaticArgs = append(cmd.StaticArgs, wire.KV{Key: f.schema.Wire, Value: value})
	}

	return cmd
}
