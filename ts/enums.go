package ts

// TextMessageTargetMode says where a text message is delivered.
type TextMessageTargetMode uint32

const (
	TextMessageTargetClient  TextMessageTargetMode = 1
	TextMessageTargetChannel TextMessageTargetMode = 2
	TextMessageTargetServer  TextMessageTargetMode = 3
)

var textTargetNames = map[TextMessageTargetMode]string{
	TextMessageTargetClient:  "client",
	TextMessageTargetChannel: "channel",
	TextMessageTargetServer:  "server",
}

// TextMessageTargetModeFromCode looks up the mode for a wire code.
func TextMessageTargetModeFromCode(code uint32) (TextMessageTargetMode, bool) {
	m := TextMessageTargetMode(code)
	_, ok := textTargetNames[m]
	return m, ok
}

func (m TextMessageTargetMode) Code() uint32 { return uint32(m) }

func (m TextMessageTargetMode) String() string {
	if s, ok := textTargetNames[m]; ok {
		return s
	}
	return "unknown"
}

// HostMessageMode says how a host message is presented to a connecting client.
type HostMessageMode uint32

const (
	HostMessageModeNone      HostMessageMode = 0
	HostMessageModeLog       HostMessageMode = 1
	HostMessageModeModal     HostMessageMode = 2
	HostMessageModeModalQuit HostMessageMode = 3
)

var hostMessageNames = map[HostMessageMode]string{
	HostMessageModeNone:      "none",
	HostMessageModeLog:       "log",
	HostMessageModeModal:     "modal",
	HostMessageModeModalQuit: "modalquit",
}

// HostMessageModeFromCode looks up the mode for a wire code.
func HostMessageModeFromCode(code uint32) (HostMessageMode, bool) {
	m := HostMessageMode(code)
	_, ok := hostMessageNames[m]
	return m, ok
}

func (m HostMessageMode) Code() uint32 { return uint32(m) }

func (m HostMessageMode) String() string {
	if s, ok := hostMessageNames[m]; ok {
		return s
	}
	return "unknown"
}

// Reason says why a client or channel changed state. The code set is sparse;
// the gaps are values the protocol reserves but never sends.
type Reason uint32

const (
	ReasonNone           Reason = 0
	ReasonMoved          Reason = 1
	ReasonSubscription   Reason = 2
	ReasonTimeout        Reason = 3
	ReasonChannelKick    Reason = 4
	ReasonServerKick     Reason = 5
	ReasonBan            Reason = 6
	ReasonLeft           Reason = 8
	ReasonEdited         Reason = 10
	ReasonServerShutdown Reason = 11
)

var reasonNames = map[Reason]string{
	ReasonNone:           "none",
	ReasonMoved:          "moved",
	ReasonSubscription:   "subscription",
	ReasonTimeout:        "timeout",
	ReasonChannelKick:    "channelkick",
	ReasonServerKick:     "serverkick",
	ReasonBan:            "ban",
	ReasonLeft:           "left",
	ReasonEdited:         "edited",
	ReasonServerShutdown: "servershutdown",
}

// ReasonFromCode looks up the reason for a wire code.
func ReasonFromCode(code uint32) (Reason, bool) {
	r := Reason(code)
	_, ok := reasonNames[r]
	return r, ok
}

func (r Reason) Code() uint32 { return uint32(r) }

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// Codec identifies a voice codec.
type Codec uint32

const (
	CodecSpeexNarrowband    Codec = 0
	CodecSpeexWideband      Codec = 1
	CodecSpeexUltrawideband Codec = 2
	CodecCeltMono           Codec = 3
	CodecOpusVoice          Codec = 4
	CodecOpusMusic          Codec = 5
)

var codecNames = [...]string{
	CodecSpeexNarrowband:    "speex_narrowband",
	CodecSpeexWideband:      "speex_wideband",
	CodecSpeexUltrawideband: "speex_ultrawideband",
	CodecCeltMono:           "celt_mono",
	CodecOpusVoice:          "opus_voice",
	CodecOpusMusic:          "opus_music",
}

// CodecFromCode looks up the codec for a wire code.
func CodecFromCode(code uint32) (Codec, bool) {
	if code >= uint32(len(codecNames)) {
		return 0, false
	}
	return Codec(code), true
}

func (c Codec) Code() uint32 { return uint32(c) }

func (c Codec) String() string {
	if int(c) < len(codecNames) {
		return codecNames[c]
	}
	return "unknown"
}

// Permission identifies a server permission. The full protocol set is large;
// this covers the permissions the supported notifications reference.
type Permission uint32

const (
	PermissionServerinstanceHelpView    Permission = 1
	PermissionServerinstanceVersionView Permission = 2
	PermissionServerinstanceInfoView    Permission = 3
	PermissionVirtualserverSelect       Permission = 4
	PermissionVirtualserverInfoView     Permission = 5
	PermissionChannelJoinPermanent      Permission = 6
	PermissionClientKickFromServer      Permission = 7
	PermissionClientKickFromChannel     Permission = 8
)

var permissionNames = map[Permission]string{
	PermissionServerinstanceHelpView:    "b_serverinstance_help_view",
	PermissionServerinstanceVersionView: "b_serverinstance_version_view",
	PermissionServerinstanceInfoView:    "b_serverinstance_info_view",
	PermissionVirtualserverSelect:       "b_virtualserver_select",
	PermissionVirtualserverInfoView:     "b_virtualserver_info_view",
	PermissionChannelJoinPermanent:      "b_channel_join_permanent",
	PermissionClientKickFromServer:      "i_client_kick_from_server",
	PermissionClientKickFromChannel:     "i_client_kick_from_channel",
}

// PermissionFromCode looks up the permission for a wire code.
func PermissionFromCode(code uint32) (Permission, bool) {
	p := Permission(code)
	_, ok := permissionNames[p]
	return p, ok
}

func (p Permission) Code() uint32 { return uint32(p) }

func (p Permission) String() string {
	if s, ok := permissionNames[p]; ok {
		return s
	}
	return "unknown"
}

// Error is a protocol result code, carried by command responses.
type Error uint32

const (
	ErrorOk                      Error = 0x0000
	ErrorUndefined               Error = 0x0001
	ErrorCommandNotFound         Error = 0x0100
	ErrorParameterNotFound       Error = 0x0202
	ErrorParameterInvalid        Error = 0x0206
	ErrorClientInvalidID         Error = 0x0200
	ErrorChannelInvalidID        Error = 0x0300
	ErrorPermissionsInsufficient Error = 0x0a08
)

var errorNames = map[Error]string{
	ErrorOk:                      "ok",
	ErrorUndefined:               "undefined",
	ErrorCommandNotFound:         "command_not_found",
	ErrorParameterNotFound:       "parameter_not_found",
	ErrorParameterInvalid:        "parameter_invalid",
	ErrorClientInvalidID:         "client_invalid_id",
	ErrorChannelInvalidID:        "channel_invalid_id",
	ErrorPermissionsInsufficient: "permissions_insufficient",
}

// ErrorFromCode looks up the result code for a wire value.
func ErrorFromCode(code uint32) (Error, bool) {
	e := Error(code)
	_, ok := errorNames[e]
	return e, ok
}

func (e Error) Code() uint32 { return uint32(e) }

func (e Error) String() string {
	if s, ok := errorNames[e]; ok {
		return s
	}
	return "unknown"
}
