// Package ts defines the typed protocol values carried by message records.
//
// These are the semantic types the codec parses wire text into: entity
// identifier newtypes, the opaque client UID, the lossy icon hash, the
// millisecond-exact Duration, and the closed enumerated code sets. None of
// them know the wire encoding; the codec package owns that.
//
// # Key Types
//
//   - ClientID, ClientDBID, ChannelID, ServerGroupID, ChannelGroupID: entity ids
//   - UID: opaque client identifier
//   - IconHash: 32-bit icon hash with lossy 64-bit wire narrowing
//   - Duration: exact duration stored as whole milliseconds
//   - TextMessageTargetMode, HostMessageMode, Reason, Codec, Permission, Error:
//     enumerated protocol codes
package ts
