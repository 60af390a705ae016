package codebook

import (
	"fmt"

	"github.com/thesyncim/govorbis/bitpack"
	"github.com/thesyncim/govorbis/util"
)

// Pack appends the packet form of s to b.
//
// Returns ErrMissingQuantList when a lattice or explicit book lacks its
// quantized values, ErrUnsupportedMapType for unknown map types,
// ErrInvalidLengthList when LengthList does not match Entries or holds
// lengths above 32, ErrFieldRange when Dim or Entries overflow their
// fields and ErrInvalidQuant when QQuant or a quantized value does not fit.
// Nothing is written on error.
func (s *Static) Pack(b *bitpack.Buffer) error {
	if s.Dim < 0 || s.Dim >= 1<<dimBits {
		return fmt.Errorf("%w: dim %d", ErrFieldRange, s.Dim)
	}
	if s.Entries < 0 || s.Entries >= 1<<entriesBits {
		return fmt.Errorf("%w: %d entries", ErrFieldRange, s.Entries)
	}
	if len(s.LengthList) != s.Entries || !validLengths(s.LengthList) {
		return fmt.Errorf("%w: %d lengths for %d entries", ErrInvalidLengthList, len(s.LengthList), s.Entries)
	}
	quantvals := 0
	switch s.MapType {
	case MapNone:
	case MapLattice, MapExplicit:
		quantvals = s.quantCount()
		if s.QuantList == nil || len(s.QuantList) < quantvals {
			return fmt.Errorf("%w: %s map needs %d values, have %d",
				ErrMissingQuantList, s.MapType, quantvals, len(s.QuantList))
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedMapType, s.MapType)
	}
	if s.MapType != MapNone {
		if s.QQuant < 1 || s.QQuant > maxQuant {
			return fmt.Errorf("%w: %d-bit values", ErrInvalidQuant, s.QQuant)
		}
		for i, q := range s.QuantList[:quantvals] {
			if util.AbsUint32(q)>>uint(s.QQuant) != 0 {
				return fmt.Errorf("%w: value %d (%d) exceeds %d bits", ErrInvalidQuant, i, q, s.QQuant)
			}
		}
	}

	b.Write(Sync, syncBits)
	b.Write(uint32(s.Dim), dimBits)
	b.Write(uint32(s.Entries), entriesBits)

	packLengths(b, s.LengthList, ChooseLengthEncoding(s.LengthList))

	b.Write(uint32(s.MapType), mapTypeBits)
	if s.MapType == MapNone {
		return nil
	}

	b.Write(s.QMin, floatBits)
	b.Write(s.QDelta, floatBits)
	b.Write(uint32(s.QQuant-1), quantBits)
	if s.QSequenceP {
		b.Write(1, 1)
	} else {
		b.Write(0, 1)
	}
	for _, q := range s.QuantList[:quantvals] {
		b.Write(util.AbsUint32(q), s.QQuant)
	}
	return nil
}
