package ts

// Entity identifier newtypes. Widths follow the protocol: client ids are
// 16-bit connection-scoped handles, everything else is 64-bit database keys.
type (
	ClientID       uint16
	ClientDBID     uint64
	ChannelID      uint64
	ServerGroupID  uint64
	ChannelGroupID uint64
)

// UID is a client's opaque unique identifier, carried verbatim from the wire.
type UID string

// IconHash is a CRC32 icon checksum. The wire transmits it as an unsigned
// 64-bit decimal; storage is a signed 32-bit value obtained by raw bit
// truncation. The narrowing is lossy above 32 bits and that loss is part of
// the wire contract.
type IconHash int32

// IconHashFromWire truncates a 64-bit wire value to the stored 32-bit form.
func IconHashFromWire(v uint64) IconHash {
	return IconHash(int32(uint32(v)))
}

// Wire returns the hash's unsigned bit pattern for wire serialization.
// Every value that fits 32 bits round-trips through IconHashFromWire.
func (h IconHash) Wire() uint64 {
	return uint64(uint32(h))
}
