package messages

import (
	"time"

	"github.com/relayspeak/tscommands/ts"
)

// Record types for the declared messages. Member order mirrors the declared
// param order; member names match the declaration's generated names, which
// is how the codec compiler binds them.

type ClientEnterView struct {
	ClientID        ts.ClientID
	SourceChannelID ts.ChannelID
	TargetChannelID ts.ChannelID
	Reason          ts.Reason
	UID             ts.UID
	Nickname        string
	InputMuted      bool
	OutputMuted     bool
	TalkPower       int32
	IconID          ts.IconHash
	ServerGroups    []ts.ServerGroupID
	ChannelGroup    ts.ChannelGroupID
}

type ClientLeftView struct {
	ClientID        ts.ClientID
	SourceChannelID ts.ChannelID
	TargetChannelID ts.ChannelID
	Reason          ts.Reason
	ReasonMessage   string
	InvokerID       ts.ClientID
	InvokerName     string
	InvokerUID      ts.UID
}

type ClientMoved struct {
	ClientID        ts.ClientID
	TargetChannelID ts.ChannelID
	Reason          ts.Reason
	InvokerID       ts.ClientID
	InvokerName     string
	InvokerUID      ts.UID
}

type ClientPoked struct {
	InvokerID   ts.ClientID
	InvokerName string
	InvokerUID  ts.UID
	Message     string
}

type TextMessage struct {
	TargetMode     ts.TextMessageTargetMode
	Message        string
	TargetClientID ts.ClientID
	InvokerID      ts.ClientID
	InvokerName    string
	InvokerUID     ts.UID
}

type ChannelCreated struct {
	ChannelID     ts.ChannelID
	ChannelName   string
	Topic         string
	ChannelCodec  ts.Codec
	CodecQuality  uint8
	Order         uint64
	DeleteDelay   ts.Duration
	FlagPermanent bool
	InvokerID     ts.ClientID
	InvokerName   string
	InvokerUID    ts.UID
}

type ChannelEdited struct {
	ChannelID   ts.ChannelID
	ChannelName string
	Topic       string
	Reason      ts.Reason
	InvokerID   ts.ClientID
	InvokerName string
	InvokerUID  ts.UID
}

type ChannelDeleted struct {
	ChannelID   ts.ChannelID
	InvokerID   ts.ClientID
	InvokerName string
	InvokerUID  ts.UID
}

type ServerEdited struct {
	Reason          ts.Reason
	InvokerID       ts.ClientID
	InvokerName     string
	InvokerUID      ts.UID
	ServerName      string
	HostMessageMode ts.HostMessageMode
	MaxClients      uint16
}

type ClientUpdated struct {
	ClientID         ts.ClientID
	Created          time.Time
	TotalConnections uint32
	IdleTime         ts.Duration
}

type ClientConnectionInfo struct {
	ClientID        ts.ClientID
	ConnectedTime   ts.Duration
	ClientIP        string
	Ping            float64
	PacketlossTotal float32
}

type ServerGroupClientAdded struct {
	ServerGroupID    ts.ServerGroupID
	ClientID         ts.ClientID
	ClientDatabaseID ts.ClientDBID
	UID              ts.UID
	InvokerID        ts.ClientID
	InvokerName      string
	InvokerUID       ts.UID
}

type PermissionDenied struct {
	FailedPermission ts.Permission
	Message          string
}

// CommandError is the response message: its record carries the echoed
// return code ahead of the declared fields, and the return code never
// serializes back to the wire.
type CommandError struct {
	ReturnCode string
	ID         ts.Error
	Message    string
}
