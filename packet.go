// packet.go defines the transport packet exchanged with a container layer.

package govorbis

// Packet is one logical packet handed to or received from a transport such
// as an Ogg stream. Only Data is interpreted here; the remaining fields pass
// through unchanged.
type Packet struct {
	// Data is the packet payload.
	Data []byte

	// BOS marks the first packet of a logical stream.
	BOS bool

	// EOS marks the last packet of a logical stream.
	EOS bool

	// GranulePos is the container's position marker; -1 when unset.
	GranulePos int64

	// PacketNo is the sequence number of the packet within its stream.
	PacketNo int64
}

// newPacket wraps data in a Packet with no position information.
func newPacket(data []byte) *Packet {
	return &Packet{Data: data, GranulePos: -1}
}
