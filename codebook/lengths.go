package codebook

import (
	"fmt"
	"slices"

	"github.com/thesyncim/govorbis/bitpack"
)

// LengthEncoding is the wire scheme used for a codeword length list.
type LengthEncoding uint8

const (
	// LengthOrdered stores only how many entries share each length. It
	// requires every length to be nonzero and the list to be non-decreasing.
	LengthOrdered LengthEncoding = iota

	// LengthDense stores every length in 5 bits; no entry is unused.
	LengthDense

	// LengthSparse stores a presence bit per entry, followed by the length
	// of present entries.
	LengthSparse
)

// String returns the scheme name.
func (e LengthEncoding) String() string {
	switch e {
	case LengthOrdered:
		return "ordered"
	case LengthDense:
		return "dense"
	case LengthSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// ChooseLengthEncoding picks the scheme Pack uses for lengths.
func ChooseLengthEncoding(lengths []int) LengthEncoding {
	ordered := len(lengths) > 0
	sparse := false
	for i, l := range lengths {
		if l == 0 {
			sparse = true
			ordered = false
			break
		}
		if i > 0 && l < lengths[i-1] {
			ordered = false
		}
	}
	switch {
	case ordered:
		return LengthOrdered
	case sparse:
		return LengthSparse
	default:
		return LengthDense
	}
}

// validLengths reports whether every length fits the 5-bit length-1 field.
func validLengths(lengths []int) bool {
	for _, l := range lengths {
		if l < 0 || l > maxLength {
			return false
		}
	}
	return true
}

// packLengths writes lengths using scheme enc. Entries is len(lengths).
func packLengths(b *bitpack.Buffer, lengths []int, enc LengthEncoding) {
	entries := len(lengths)
	switch enc {
	case LengthOrdered:
		b.Write(1, 1)
		b.Write(uint32(lengths[0]-1), lengthBits)

		// One run per length step, including empty runs for skipped
		// lengths.
		count := 0
		i := 1
		for ; i < entries; i++ {
			this, last := lengths[i], lengths[i-1]
			for j := last; j < this; j++ {
				b.Write(uint32(i-count), bitpack.Ilog(uint32(entries-count)))
				count = i
			}
		}
		b.Write(uint32(i-count), bitpack.Ilog(uint32(entries-count)))

	case LengthDense:
		b.Write(0, 1)
		b.Write(0, 1)
		for _, l := range lengths {
			b.Write(uint32(l-1), lengthBits)
		}

	case LengthSparse:
		b.Write(0, 1)
		b.Write(1, 1)
		for _, l := range lengths {
			if l == 0 {
				b.Write(0, 1)
				continue
			}
			b.Write(1, 1)
			b.Write(uint32(l-1), lengthBits)
		}
	}
}

// unpackLengths reads a length list for entries entries.
func unpackLengths(b *bitpack.Buffer, entries int) ([]int, error) {
	ordered, err := b.Read(1)
	if err != nil {
		return nil, fmt.Errorf("length encoding flag: %w", err)
	}
	if ordered == 0 {
		sparse, err := b.Read(1)
		if err != nil {
			return nil, fmt.Errorf("sparse flag: %w", err)
		}
		// Every entry costs at least one bit.
		if entries > b.Remaining() {
			return nil, fmt.Errorf("%d unordered lengths: %w", entries, bitpack.ErrUnexpectedEOF)
		}
		lengths := make([]int, entries)
		for i := range lengths {
			if sparse == 1 {
				present, err := b.Read(1)
				if err != nil {
					return nil, fmt.Errorf("entry %d presence: %w", i, err)
				}
				if present == 0 {
					continue
				}
			}
			l, err := b.Read(lengthBits)
			if err != nil {
				return nil, fmt.Errorf("entry %d length: %w", i, err)
			}
			lengths[i] = int(l) + 1
		}
		return lengths, nil
	}

	first, err := b.Read(lengthBits)
	if err != nil {
		return nil, fmt.Errorf("first length: %w", err)
	}
	length := int(first) + 1
	// A few bits describe a run of any size, so the list grows one decoded
	// run at a time instead of trusting entries up front.
	var lengths []int
	for len(lengths) < entries {
		i := len(lengths)
		num, err := b.Read(bitpack.Ilog(uint32(entries - i)))
		if err != nil {
			return nil, fmt.Errorf("run at entry %d: %w", i, err)
		}
		if length > maxLength || int(num) > entries-i {
			return nil, fmt.Errorf("%w: run of %d at entry %d, length %d", ErrInvalidLengthList, num, i, length)
		}
		lengths = slices.Grow(lengths, int(num))
		for j := 0; j < int(num); j++ {
			lengths = append(lengths, length)
		}
		length++
	}
	return lengths, nil
}
