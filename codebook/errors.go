package codebook

import "errors"

// Package-level errors for codebook encoding and decoding.
var (
	// ErrBadMagic indicates the packet does not start with the 0x564342
	// codebook sync pattern.
	ErrBadMagic = errors.New("codebook: bad sync pattern")

	// ErrUnsupportedMapType indicates a value mapping type other than
	// none, lattice or explicit. Decoding also reports it when the
	// quantized value list is truncated.
	ErrUnsupportedMapType = errors.New("codebook: unsupported map type")

	// ErrMissingQuantList indicates a lattice or explicit book without the
	// quantized values its map type requires.
	ErrMissingQuantList = errors.New("codebook: missing quantized value list")

	// ErrInvalidLengthList indicates a codeword length list that cannot be
	// described on the wire: a run overflowing the entry count, a length
	// above 32, or a length list that does not match the entry count.
	ErrInvalidLengthList = errors.New("codebook: invalid codeword length list")

	// ErrFieldRange indicates a dimension or entry count that does not fit
	// its header field.
	ErrFieldRange = errors.New("codebook: field out of range")

	// ErrInvalidQuant indicates a quantized value width outside 1..16 or a
	// quantized value wider than that width.
	ErrInvalidQuant = errors.New("codebook: invalid quantized values")

	// ErrOverspecified indicates codeword lengths that do not fit in a
	// prefix-free code.
	ErrOverspecified = errors.New("codebook: overspecified codeword lengths")

	// ErrInvalidEntry indicates an entry number outside the book or an entry
	// without a codeword.
	ErrInvalidEntry = errors.New("codebook: invalid entry")

	// ErrInvalidCodeword indicates bits that do not lead to any entry.
	ErrInvalidCodeword = errors.New("codebook: invalid codeword")
)
