package codec

import (
	"errors"
	"reflect"
	"testing"
	"time"

	tserr "github.com/relayspeak/tscommands/errors"
	"github.com/relayspeak/tscommands/schema"
	"github.com/relayspeak/tscommands/ts"
)

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	fields := []*schema.Field{
		{Wire: "clid", Name: "ClientID", Type: "ClientId", Orig: "ClientId"},
		{Wire: "ctid", Name: "TargetChannelID", Type: "ChannelId", Orig: "ChannelId"},
		{Wire: "reasonid", Name: "Reason", Type: "Reason", Orig: "Reason"},
		{Wire: "msg", Name: "Message", Type: "str", Orig: "String"},
		{Wire: "targetmode", Name: "TargetMode", Type: "TextMessageTargetMode", Orig: "TextMessageTargetMode"},
		{Wire: "invokeruid", Name: "InvokerUID", Type: "Uid", Orig: "Uid"},
		{Wire: "client_icon_id", Name: "IconID", Type: "IconHash", Orig: "IconHash"},
		{Wire: "channel_delete_delay", Name: "DeleteDelay", Type: "Duration", Orig: "DurationSeconds"},
		{Wire: "connection_connected_time", Name: "ConnectedTime", Type: "Duration", Orig: "DurationMilliseconds"},
		{Wire: "bad_delay", Name: "BadDelay", Type: "Duration", Orig: "Duration"},
		{Wire: "client_created", Name: "Created", Type: "DateTime", Orig: "DateTime"},
		{Wire: "client_servergroups", Name: "ServerGroups", Type: "ServerGroupId", Orig: "Vec<ServerGroupId>", List: true},
		{Wire: "mystery", Name: "Mystery", Type: "Quaternion", Orig: "Quaternion"},
		{Wire: "id", Name: "ID", Type: "Error", Orig: "Error"},
	}
	messages := []*schema.Message{
		{Name: "ClientMoved", Notify: "notifyclientmoved", Params: []string{"clid", "ctid", "reasonid", "invokeruid"}},
		{Name: "TextMessage", Notify: "notifytextmessage", Params: []string{"targetmode", "msg", "invokeruid"}},
		{Name: "ClientProfile", Notify: "notifyclientprofile", Params: []string{"client_icon_id", "client_created", "client_servergroups", "connection_connected_time"}},
		{Name: "ChannelCreated", Notify: "notifychannelcreated", Params: []string{"ctid", "channel_delete_delay"}},
		{Name: "CommandError", Notify: "error", Response: true, Params: []string{"id", "msg"}},
		{Name: "Unresolvable", Notify: "notifyunresolvable", Params: []string{"nosuchwire"}},
		{Name: "Mysterious", Notify: "notifymysterious", Params: []string{"mystery"}},
		{Name: "BadDuration", Notify: "notifybadduration", Params: []string{"bad_delay"}},
	}
	notifies := []*schema.Notify{
		{Variant: "ClientMoved", Message: "ClientMoved"},
		{Variant: "TextMessage", Message: "TextMessage"},
	}

	reg, err := schema.NewRegistry(fields, messages, notifies)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

type clientMovedRecord struct {
	ClientID        ts.ClientID
	TargetChannelID ts.ChannelID
	Reason          ts.Reason
	InvokerUID      ts.UID
}

type clientProfileRecord struct {
	IconID        ts.IconHash `ts:"client_icon_id"`
	Created       time.Time   `ts:"client_created"`
	ServerGroups  []ts.ServerGroupID
	ConnectedTime ts.Duration `ts:"connection_connected_time"`
}

type commandErrorRecord struct {
	ReturnCode string
	ID         ts.Error
	Message    string
}

func TestCompile(t *testing.T) {
	c := NewCompiler(testRegistry(t))

	cm, err := c.Compile("ClientMoved", reflect.TypeOf(clientMovedRecord{}))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if cm.Name() != "ClientMoved" || cm.NotifyName() != "notifyclientmoved" {
		t.Errorf("identity wrong: %q / %q", cm.Name(), cm.NotifyName())
	}
	if cm.IsResponse() {
		t.Error("ClientMoved is not a response")
	}
	if got := len(cm.Fields()); got != 4 {
		t.Errorf("fields = %d, want 4", got)
	}
}

func TestCompile_CachesByMessageAndType(t *testing.T) {
	c := NewCompiler(testRegistry(t))

	a, err := c.Compile("ClientMoved", reflect.TypeOf(clientMovedRecord{}))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	b, err := c.Compile("ClientMoved", reflect.TypeOf(&clientMovedRecord{}))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if a != b {
		t.Error("pointer and value types should share one compiled message")
	}
}

func TestCompile_TagAndListBinding(t *testing.T) {
	c := NewCompiler(testRegistry(t))

	cm, err := c.Compile("ClientProfile", reflect.TypeOf(clientProfileRecord{}))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	fields := cm.Fields()
	if fields[2].Wire != "client_servergroups" || !fields[2].List {
		t.Errorf("list field binding wrong: %+v", fields[2])
	}
}

func TestCompile_Response(t *testing.T) {
	c := NewCompiler(testRegistry(t))

	cm, err := c.Compile("CommandError", reflect.TypeOf(commandErrorRecord{}))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !cm.IsResponse() {
		t.Error("CommandError should be a response")
	}

	// A response record without the return code member is a binding defect.
	type missingReturn struct {
		ID      ts.Error
		Message string
	}
	_, err = c.Compile("CommandError", reflect.TypeOf(missingReturn{}))
	if err == nil {
		t.Fatal("expected error for missing ReturnCode member")
	}
}

func TestCompile_GenerationDefects(t *testing.T) {
	c := NewCompiler(testRegistry(t))

	tests := []struct {
		name    string
		message string
		goType  reflect.Type
		kind    tserr.Kind
	}{
		{
			name:    "unresolved_param",
			message: "Unresolvable",
			goType:  reflect.TypeOf(struct{}{}),
			kind:    tserr.KindUnresolvedField,
		},
		{
			name:    "unknown_type",
			message: "Mysterious",
			goType:  reflect.TypeOf(struct{ Mystery string }{}),
			kind:    tserr.KindUnknownType,
		},
		{
			name:    "duration_without_unit",
			message: "BadDuration",
			goType:  reflect.TypeOf(struct{ BadDelay ts.Duration }{}),
			kind:    tserr.KindMissingUnit,
		},
		{
			name:    "member_type_mismatch",
			message: "TextMessage",
			goType: reflect.TypeOf(struct {
				TargetMode string // should be an enum, not a string
				Message    string
				InvokerUID ts.UID
			}{}),
			kind: tserr.KindTypeMismatch,
		},
		{
			name:    "missing_member",
			message: "TextMessage",
			goType:  reflect.TypeOf(struct{ Message string }{}),
			kind:    tserr.KindTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compile(tt.message, tt.goType)
			if err == nil {
				t.Fatal("expected generation error")
			}
			if !errors.Is(err, &tserr.Error{Phase: tserr.PhaseGenerate, Kind: tt.kind}) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestSnakeToCamel(t *testing.T) {
	tests := map[string]string{
		"clid":                 "Clid",
		"channel_delete_delay": "ChannelDeleteDelay",
		"client_icon_id":       "ClientIconId",
	}
	for in, want := range tests {
		if got := snakeToCamel(in); got != want {
			t.Errorf("snakeToCamel(%q) = %q, want %q", in, got, want)
		}
	}
}
