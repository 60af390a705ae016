package comment

import (
	"fmt"
	"math"

	"github.com/thesyncim/govorbis/bitpack"
)

// Pack appends the block to b. Nothing is written on error.
func (c *Comment) Pack(b *bitpack.Buffer) error {
	if uint64(len(c.Vendor)) > math.MaxUint32 || uint64(len(c.Comments)) > math.MaxUint32 {
		return ErrTooLong
	}
	for _, s := range c.Comments {
		if uint64(len(s)) > math.MaxUint32 {
			return ErrTooLong
		}
	}

	b.Write(uint32(len(c.Vendor)), 32)
	b.WriteBytes([]byte(c.Vendor))

	b.Write(uint32(len(c.Comments)), 32)
	for _, s := range c.Comments {
		b.Write(uint32(len(s)), 32)
		b.WriteBytes([]byte(s))
	}

	b.Write(1, 1)
	return nil
}

// Unpack reads a block from b.
//
// Any truncated field or a framing marker other than 1 yields an error
// wrapping bitpack.ErrUnexpectedEOF; no partial block is returned.
func Unpack(b *bitpack.Buffer) (*Comment, error) {
	vendor, err := readString(b)
	if err != nil {
		return nil, fmt.Errorf("comment vendor: %w", err)
	}

	count, err := b.Read(32)
	if err != nil {
		return nil, fmt.Errorf("comment count: %w", err)
	}
	// Each comment carries at least its 32-bit length.
	if uint64(count)*32 > uint64(b.Remaining()) {
		return nil, fmt.Errorf("comment count %d: %w", count, bitpack.ErrUnexpectedEOF)
	}

	c := &Comment{
		Vendor:   vendor,
		Comments: make([]string, 0, count),
	}
	for i := uint32(0); i < count; i++ {
		s, err := readString(b)
		if err != nil {
			return nil, fmt.Errorf("comment %d: %w", i, err)
		}
		c.Comments = append(c.Comments, s)
	}

	marker, err := b.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("comment framing bit: %w", err)
	}
	if marker != 1 {
		return nil, fmt.Errorf("comment framing bit unset: %w", bitpack.ErrUnexpectedEOF)
	}
	return c, nil
}

// readString reads a 32-bit length followed by that many bytes.
func readString(b *bitpack.Buffer) (string, error) {
	n, err := b.Read(32)
	if err != nil {
		return "", err
	}
	if uint64(n)*8 > uint64(b.Remaining()) {
		return "", fmt.Errorf("length %d: %w", n, bitpack.ErrUnexpectedEOF)
	}
	buf := make([]byte, n)
	for i := range buf {
		v, err := b.Read(8)
		if err != nil {
			return "", err
		}
		buf[i] = byte(v)
	}
	return string(buf), nil
}
