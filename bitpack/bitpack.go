// Package bitpack implements the bit-granular packet buffer used by Vorbis
// headers.
//
// Fields of 1 to 32 bits are packed contiguously, least significant bit
// first within each byte, with no padding at byte boundaries. A field that
// starts at bit offset 7 and is 32 bits wide touches five bytes:
//
//	byte    n          n+1      n+2      n+3      n+4
//	bits    7.......   76543210 76543210 76543210 .6543210
//	field   0          1..8     9..16    17..24   25..31
//
// A Buffer is either a writer, which owns a growable byte slice, or a reader,
// which borrows a read-only view of the caller's bytes. A Buffer is not safe
// for concurrent use.
package bitpack

const (
	// initialCapacity is the byte capacity of a fresh writer.
	initialCapacity = 256

	// growIncrement is the number of bytes added when a writer runs low.
	growIncrement = 256

	// headroom is the number of bytes past the current byte that must exist
	// before a write; a 32-bit field at offset 7 spans five bytes.
	headroom = 4
)

// mask[n] holds the low n bits set.
var mask = [33]uint32{
	0x00000000,
	0x00000001, 0x00000003, 0x00000007, 0x0000000f,
	0x0000001f, 0x0000003f, 0x0000007f, 0x000000ff,
	0x000001ff, 0x000003ff, 0x000007ff, 0x00000fff,
	0x00001fff, 0x00003fff, 0x00007fff, 0x0000ffff,
	0x0001ffff, 0x0003ffff, 0x0007ffff, 0x000fffff,
	0x001fffff, 0x003fffff, 0x007fffff, 0x00ffffff,
	0x01ffffff, 0x03ffffff, 0x07ffffff, 0x0fffffff,
	0x1fffffff, 0x3fffffff, 0x7fffffff, 0xffffffff,
}

// Buffer is a position-tracked bit buffer.
type Buffer struct {
	buf       []byte // owned (writer) or borrowed (reader) bytes
	storage   int    // capacity (writer) or declared length (reader)
	bytePos   int    // current byte
	bitOffset int    // 0..7 within the current byte
}

// NewWriter returns an empty Buffer ready for writing.
func NewWriter() *Buffer {
	b := &Buffer{}
	b.WriteInit()
	return b
}

// NewReader returns a Buffer reading length bytes of buf starting at start.
// The bytes are borrowed, not copied; the caller must not modify them while
// the Buffer is in use. Out-of-range arguments are clamped to buf.
func NewReader(buf []byte, start, length int) *Buffer {
	b := &Buffer{}
	b.ReadInit(buf, start, length)
	return b
}

// WriteInit resets b to an empty writer with the initial capacity.
func (b *Buffer) WriteInit() {
	b.buf = make([]byte, initialCapacity)
	b.storage = initialCapacity
	b.bytePos = 0
	b.bitOffset = 0
}

// ReadInit attaches b to length bytes of buf starting at start.
func (b *Buffer) ReadInit(buf []byte, start, length int) {
	if start < 0 {
		start = 0
	}
	if start > len(buf) {
		start = len(buf)
	}
	if length < 0 {
		length = 0
	}
	if start+length > len(buf) {
		length = len(buf) - start
	}
	b.buf = buf[start : start+length : start+length]
	b.storage = length
	b.bytePos = 0
	b.bitOffset = 0
}

// Reset rewinds a writer to position zero and clears the written bytes,
// keeping the allocated capacity.
func (b *Buffer) Reset() {
	clear(b.buf[:min(b.bytePos+1, len(b.buf))])
	b.bytePos = 0
	b.bitOffset = 0
}

// grow makes sure at least headroom bytes exist past the current byte.
func (b *Buffer) grow() {
	if b.bytePos+headroom < b.storage {
		return
	}
	// Advance may have moved bytePos far past the end, so one increment is
	// not always enough.
	size := b.storage + growIncrement
	if need := b.bytePos + headroom + 1; need > size {
		size = (need + growIncrement - 1) / growIncrement * growIncrement
	}
	next := make([]byte, size)
	copy(next, b.buf)
	b.buf = next
	b.storage = len(next)
}

// Write appends the low bits bits of value. Widths outside 1..32 are
// ignored.
func (b *Buffer) Write(value uint32, bits int) {
	if bits <= 0 || bits > 32 {
		return
	}
	b.grow()

	v := uint64(value&mask[bits]) << uint(b.bitOffset)
	total := b.bitOffset + bits

	// The current byte may already hold bits below bitOffset; bytes past it
	// are still zero.
	b.buf[b.bytePos] |= byte(v)
	for i := 1; i*8 < total; i++ {
		b.buf[b.bytePos+i] = byte(v >> (8 * uint(i)))
	}

	b.bytePos += total >> 3
	b.bitOffset = total & 7
}

// WriteString writes each byte of s as an 8-bit field, stopping before the
// first NUL byte.
func (b *Buffer) WriteString(s []byte) {
	for _, c := range s {
		if c == 0 {
			break
		}
		b.Write(uint32(c), 8)
	}
}

// WriteBytes writes every byte of p as an 8-bit field.
func (b *Buffer) WriteBytes(p []byte) {
	for _, c := range p {
		b.Write(uint32(c), 8)
	}
}

// WriteAlign pads with zero bits up to the next byte boundary.
func (b *Buffer) WriteAlign() {
	if b.bitOffset != 0 {
		b.Write(0, 8-b.bitOffset)
	}
}

// eof reports whether a field of bits bits at the current position would
// reach past the declared length.
func (b *Buffer) eof(bits int) bool {
	last := b.bytePos + (b.bitOffset+bits-1)>>3
	return last >= b.storage
}

// peek assembles bits bits at the current position. The caller has already
// checked the range.
func (b *Buffer) peek(bits int) uint32 {
	total := b.bitOffset + bits
	var v uint64
	for i := 0; i*8 < total; i++ {
		v |= uint64(b.buf[b.bytePos+i]) << (8 * uint(i))
	}
	return uint32(v>>uint(b.bitOffset)) & mask[bits]
}

// Look returns the next bits bits without advancing.
func (b *Buffer) Look(bits int) (uint32, error) {
	if bits <= 0 || bits > 32 {
		return 0, nil
	}
	if b.eof(bits) {
		return 0, ErrUnexpectedEOF
	}
	return b.peek(bits), nil
}

// LookBit returns the next bit without advancing.
func (b *Buffer) LookBit() (uint32, error) {
	return b.Look(1)
}

// Read returns the next bits bits, zero-extended, and advances past them.
// On ErrUnexpectedEOF the position still advances, so every later read
// also fails.
func (b *Buffer) Read(bits int) (uint32, error) {
	if bits <= 0 || bits > 32 {
		return 0, nil
	}
	if b.eof(bits) {
		b.Advance(bits)
		return 0, ErrUnexpectedEOF
	}
	v := b.peek(bits)
	b.Advance(bits)
	return v, nil
}

// ReadBit reads a single bit.
func (b *Buffer) ReadBit() (uint32, error) {
	return b.Read(1)
}

// ReadAlign skips to the next byte boundary.
func (b *Buffer) ReadAlign() {
	if b.bitOffset != 0 {
		b.Advance(8 - b.bitOffset)
	}
}

// Advance moves the position forward by bits without reading.
func (b *Buffer) Advance(bits int) {
	if bits <= 0 {
		return
	}
	total := b.bitOffset + bits
	b.bytePos += total >> 3
	b.bitOffset = total & 7
}

// AdvanceBit moves the position forward by one bit.
func (b *Buffer) AdvanceBit() {
	b.Advance(1)
}

// BytesUsed returns the number of whole bytes touched so far.
func (b *Buffer) BytesUsed() int {
	if b.bitOffset != 0 {
		return b.bytePos + 1
	}
	return b.bytePos
}

// BitsUsed returns the number of bits consumed or produced so far.
func (b *Buffer) BitsUsed() int {
	return b.bytePos*8 + b.bitOffset
}

// Bytes returns the written bytes. The slice aliases the Buffer and is only
// valid until the next write.
func (b *Buffer) Bytes() []byte {
	n := min(b.BytesUsed(), len(b.buf))
	return b.buf[:n]
}

// Capacity returns the allocated size of a writer or the declared length of
// a reader.
func (b *Buffer) Capacity() int {
	return b.storage
}

// Remaining returns the number of unread bits left in a reader, or 0 once
// the position has passed the end.
func (b *Buffer) Remaining() int {
	return max(b.storage*8-b.BitsUsed(), 0)
}
