package govorbis

import (
	"bytes"
	"fmt"

	"github.com/thesyncim/govorbis/bitpack"
	"github.com/thesyncim/govorbis/codebook"
	"github.com/thesyncim/govorbis/comment"
)

// Header packet types.
const (
	PacketTypeIdentification = 0x01
	PacketTypeComment        = 0x03
	PacketTypeSetup          = 0x05
)

// headerMagic follows the packet type byte in every header packet.
const headerMagic = "vorbis"

// maxCodebooks is the number of codebooks an 8-bit count-1 field describes.
const maxCodebooks = 256

// writeHeaderPreamble writes the packet type and signature.
func writeHeaderPreamble(b *bitpack.Buffer, packetType uint32) {
	b.Write(packetType, 8)
	b.WriteString([]byte(headerMagic))
}

// readHeaderPreamble checks the packet type and signature.
func readHeaderPreamble(b *bitpack.Buffer, packetType uint32) error {
	t, err := b.Read(8)
	if err != nil {
		return fmt.Errorf("header type: %w", err)
	}
	var magic [len(headerMagic)]byte
	for i := range magic {
		c, err := b.Read(8)
		if err != nil {
			return fmt.Errorf("header signature: %w", err)
		}
		magic[i] = byte(c)
	}
	if string(magic[:]) != headerMagic {
		return ErrNotVorbis
	}
	if t != packetType {
		return fmt.Errorf("%w: got %#02x, want %#02x", ErrHeaderType, t, packetType)
	}
	return nil
}

// HeaderType returns the packet type of a Vorbis header packet.
func HeaderType(p *Packet) (int, error) {
	if p == nil || len(p.Data) < 1+len(headerMagic) {
		return 0, ErrNotVorbis
	}
	if string(p.Data[1:1+len(headerMagic)]) != headerMagic {
		return 0, ErrNotVorbis
	}
	return int(p.Data[0]), nil
}

// CommentHeader builds the comment header packet for c.
func CommentHeader(c *comment.Comment) (*Packet, error) {
	if c == nil {
		return nil, ErrInvalidArgument
	}
	b := bitpack.NewWriter()
	writeHeaderPreamble(b, PacketTypeComment)
	if err := c.Pack(b); err != nil {
		return nil, err
	}
	return newPacket(bytes.Clone(b.Bytes())), nil
}

// ParseCommentHeader decodes a comment header packet.
func ParseCommentHeader(p *Packet) (*comment.Comment, error) {
	if p == nil {
		return nil, ErrInvalidArgument
	}
	b := bitpack.NewReader(p.Data, 0, len(p.Data))
	if err := readHeaderPreamble(b, PacketTypeComment); err != nil {
		return nil, err
	}
	return comment.Unpack(b)
}

// CodebookPacket packs books as the codebook section of a setup header:
// an 8-bit count-1 followed by each book. It holds 1 to 256 books.
func CodebookPacket(books ...*codebook.Static) (*Packet, error) {
	if len(books) == 0 || len(books) > maxCodebooks {
		return nil, fmt.Errorf("%w: %d codebooks", ErrInvalidArgument, len(books))
	}
	b := bitpack.NewWriter()
	b.Write(uint32(len(books)-1), 8)
	for i, s := range books {
		if s == nil {
			return nil, fmt.Errorf("%w: codebook %d is nil", ErrInvalidArgument, i)
		}
		if err := s.Pack(b); err != nil {
			return nil, fmt.Errorf("codebook %d: %w", i, err)
		}
	}
	return newPacket(bytes.Clone(b.Bytes())), nil
}

// ParseCodebookPacket decodes a packet built by CodebookPacket.
func ParseCodebookPacket(p *Packet) ([]*codebook.Static, error) {
	if p == nil {
		return nil, ErrInvalidArgument
	}
	b := bitpack.NewReader(p.Data, 0, len(p.Data))
	n, err := b.Read(8)
	if err != nil {
		return nil, fmt.Errorf("codebook count: %w", err)
	}
	books := make([]*codebook.Static, 0, n+1)
	for i := 0; i <= int(n); i++ {
		s, err := codebook.Unpack(b)
		if err != nil {
			return nil, fmt.Errorf("codebook %d: %w", i, err)
		}
		books = append(books, s)
	}
	return books, nil
}
