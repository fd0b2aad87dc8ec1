package messages

import (
	_ "embed"
	"reflect"
	"sync"

	"github.com/relayspeak/tscommands/codec"
	"github.com/relayspeak/tscommands/errors"
	"github.com/relayspeak/tscommands/schema"
)

//go:embed declarations.toml
var declarationsTOML []byte

// bindings ties each declared message to its record type. Compilation
// checks the pairing; a record drifting from its declaration fails
// Dispatcher construction, not message handling.
var bindings = map[string]reflect.Type{
	"ClientEnterView":        reflect.TypeOf(ClientEnterView{}),
	"ClientLeftView":         reflect.TypeOf(ClientLeftView{}),
	"ClientMoved":            reflect.TypeOf(ClientMoved{}),
	"ClientPoked":            reflect.TypeOf(ClientPoked{}),
	"TextMessage":            reflect.TypeOf(TextMessage{}),
	"ChannelCreated":         reflect.TypeOf(ChannelCreated{}),
	"ChannelEdited":          reflect.TypeOf(ChannelEdited{}),
	"ChannelDeleted":         reflect.TypeOf(ChannelDeleted{}),
	"ServerEdited":           reflect.TypeOf(ServerEdited{}),
	"ClientUpdated":          reflect.TypeOf(ClientUpdated{}),
	"ClientConnectionInfo":   reflect.TypeOf(ClientConnectionInfo{}),
	"ServerGroupClientAdded": reflect.TypeOf(ServerGroupClientAdded{}),
	"PermissionDenied":       reflect.TypeOf(PermissionDenied{}),
	"CommandError":           reflect.TypeOf(CommandError{}),
}

var (
	defaultOnce       sync.Once
	defaultRegistry   *schema.Registry
	defaultDispatcher *codec.Dispatcher[Notification]
	defaultErr        error
)

// Registry returns the embedded declaration tables.
func Registry() (*schema.Registry, error) {
	defaultOnce.Do(buildDefault)
	return defaultRegistry, defaultErr
}

// Dispatcher returns the dispatcher over the embedded declarations, built
// once. Any defect in the embedded tables or the record bindings surfaces
// here as a generation error.
func Dispatcher() (*codec.Dispatcher[Notification], error) {
	defaultOnce.Do(buildDefault)
	return defaultDispatcher, defaultErr
}

func buildDefault() {
	reg, err := schema.Parse(declarationsTOML)
	if err != nil {
		defaultErr = err
		return
	}
	defaultRegistry = reg
	defaultDispatcher, defaultErr = NewDispatcher(reg)
}

// NewDispatcher builds a Notification dispatcher from declaration tables,
// binding every notify entry to this package's record types. Externally
// loaded declarations work as long as their message names and shapes match
// the records here.
func NewDispatcher(reg *schema.Registry) (*codec.Dispatcher[Notification], error) {
	c := codec.NewCompiler(reg)
	d := codec.NewDispatcher[Notification]()

	for _, n := range reg.Notifies() {
		goType, ok := bindings[n.Message]
		if !ok {
			// A declaration this package has no record for is a defect in
			// the pairing, same as a shape mismatch.
			return nil, schemaBindingError(n.Message)
		}
		cm, err := c.Compile(n.Message, goType)
		if err != nil {
			return nil, err
		}
		if err := d.Register(cm, wrapNotification); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func wrapNotification(rec any) Notification {
	return rec.(Notification)
}

func schemaBindingError(message string) error {
	return errors.New(errors.PhaseGenerate, errors.KindInvalidData).
		Message(message).
		Detail("no record type bound for message %q", message).
		Build()
}
