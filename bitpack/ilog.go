package bitpack

import "math/bits"

// Ilog returns the number of bits needed to represent v in unsigned binary:
// 0 for 0, 1 for 1, 2 for 2..3, 3 for 4..7 and so on.
//
// Vorbis uses it to size variable-width run counts in codebook length lists.
func Ilog(v uint32) int {
	return bits.Len32(v)
}
