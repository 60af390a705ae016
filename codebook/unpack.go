package codebook

import (
	"fmt"

	"github.com/thesyncim/govorbis/bitpack"
)

// Unpack reads one packed codebook from b.
//
// Returns ErrBadMagic when the sync pattern is wrong, an error wrapping
// bitpack.ErrUnexpectedEOF when the packet is truncated,
// ErrUnsupportedMapType for unknown map types (also when the quantized value
// list runs past the end of the packet, in which case the error matches
// both), and ErrInvalidLengthList for impossible ordered length runs.
// No partial book is returned on error.
func Unpack(b *bitpack.Buffer) (*Static, error) {
	sync, err := b.Read(syncBits)
	if err != nil {
		return nil, fmt.Errorf("codebook sync: %w", err)
	}
	if sync != Sync {
		return nil, fmt.Errorf("%w: %#06x", ErrBadMagic, sync)
	}

	dim, err := b.Read(dimBits)
	if err != nil {
		return nil, fmt.Errorf("codebook dimensions: %w", err)
	}
	entries, err := b.Read(entriesBits)
	if err != nil {
		return nil, fmt.Errorf("codebook entries: %w", err)
	}

	s := &Static{
		Dim:     int(dim),
		Entries: int(entries),
	}

	s.LengthList, err = unpackLengths(b, s.Entries)
	if err != nil {
		return nil, fmt.Errorf("codebook lengths: %w", err)
	}

	mapType, err := b.Read(mapTypeBits)
	if err != nil {
		return nil, fmt.Errorf("codebook map type: %w", err)
	}
	s.MapType = MapType(mapType)

	switch s.MapType {
	case MapNone:
		return s, nil
	case MapLattice, MapExplicit:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapType, mapType)
	}

	if s.QMin, err = b.Read(floatBits); err != nil {
		return nil, fmt.Errorf("codebook minimum: %w", err)
	}
	if s.QDelta, err = b.Read(floatBits); err != nil {
		return nil, fmt.Errorf("codebook delta: %w", err)
	}
	quant, err := b.Read(quantBits)
	if err != nil {
		return nil, fmt.Errorf("codebook value bits: %w", err)
	}
	s.QQuant = int(quant) + 1
	seq, err := b.Read(1)
	if err != nil {
		return nil, fmt.Errorf("codebook sequence flag: %w", err)
	}
	s.QSequenceP = seq == 1

	quantvals := s.quantCount()
	if quantvals*s.QQuant > b.Remaining() {
		return nil, fmt.Errorf("%w: %d quantized values: %w", ErrUnsupportedMapType, quantvals, bitpack.ErrUnexpectedEOF)
	}
	s.QuantList = make([]int32, quantvals)
	var last error
	for i := range s.QuantList {
		v, err := b.Read(s.QQuant)
		if err != nil {
			last = err
		}
		s.QuantList[i] = int32(v)
	}
	if last != nil {
		// A truncated value list is reported as a map type failure, but
		// still matches bitpack.ErrUnexpectedEOF.
		return nil, fmt.Errorf("%w: quantized values: %w", ErrUnsupportedMapType, last)
	}
	return s, nil
}
