package codec

// Kind discriminates the semantic types the codec table covers. The set is
// closed: every switch over Kind in this package is exhaustive, so adding or
// removing a type is a compile-time-checked change.
type Kind uint8

const (
	KindBool Kind = iota
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindF32
	KindF64
	KindStr
	KindUID
	KindClientID
	KindClientDBID
	KindChannelID
	KindServerGroupID
	KindChannelGroupID
	KindIconHash
	KindTextTarget
	KindHostMessageMode
	KindReason
	KindCodec
	KindPermission
	KindError
	KindDuration
	KindDateTime
)

var kindNames = [...]string{
	KindBool:            "bool",
	KindI8:              "i8",
	KindU8:              "u8",
	KindI16:             "i16",
	KindU16:             "u16",
	KindI32:             "i32",
	KindU32:             "u32",
	KindI64:             "i64",
	KindU64:             "u64",
	KindF32:             "f32",
	KindF64:             "f64",
	KindStr:             "str",
	KindUID:             "uid",
	KindClientID:        "client_id",
	KindClientDBID:      "client_db_id",
	KindChannelID:       "channel_id",
	KindServerGroupID:   "server_group_id",
	KindChannelGroupID:  "channel_group_id",
	KindIconHash:        "icon_hash",
	KindTextTarget:      "text_message_target_mode",
	KindHostMessageMode: "host_message_mode",
	KindReason:          "reason",
	KindCodec:           "codec",
	KindPermission:      "permission",
	KindError:           "error",
	KindDuration:        "duration",
	KindDateTime:        "date_time",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsString reports whether values of this kind are raw wire text. Sequence
// joining skips empty elements only for these kinds.
func (k Kind) IsString() bool {
	return k == KindStr || k == KindUID
}

// IsEnum reports whether this kind is a closed enumerated code set.
func (k Kind) IsEnum() bool {
	return k >= KindTextTarget && k <= KindError
}

// kindByType maps declaration type names to kinds. A type name outside this
// table has no codec and fails generation.
var kindByType = map[string]Kind{
	"bool":                  KindBool,
	"i8":                    KindI8,
	"u8":                    KindU8,
	"i16":                   KindI16,
	"u16":                   KindU16,
	"i32":                   KindI32,
	"u32":                   KindU32,
	"i64":                   KindI64,
	"u64":                   KindU64,
	"f32":                   KindF32,
	"f64":                   KindF64,
	"str":                   KindStr,
	"Uid":                   KindUID,
	"ClientId":              KindClientID,
	"ClientDbId":            KindClientDBID,
	"ChannelId":             KindChannelID,
	"ServerGroupId":         KindServerGroupID,
	"ChannelGroupId":        KindChannelGroupID,
	"IconHash":              KindIconHash,
	"TextMessageTargetMode": KindTextTarget,
	"HostMessageMode":       KindHostMessageMode,
	"Reason":                KindReason,
	"Codec":                 KindCodec,
	"Permission":            KindPermission,
	"Error":                 KindError,
	"Duration":              KindDuration,
	"DateTime":              KindDateTime,
}

func kindOf(typeName string) (Kind, bool) {
	k, ok := kindByType[typeName]
	return k, ok
}

// durationUnit selects the wire encoding of a duration field. The unit comes
// from the field's original declaration annotation, never from the value.
type durationUnit uint8

const (
	unitNone durationUnit = iota
	unitSeconds
	unitMilliseconds
)

// Original declaration annotations recognized on duration fields.
const (
	annotationDurationSeconds      = "DurationSeconds"
	annotationDurationMilliseconds = "DurationMilliseconds"
)
