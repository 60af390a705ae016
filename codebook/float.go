package codebook

import "math"

// Vorbis packs the lattice minimum and delta in a 32-bit float of its own:
//
//	bit  31     sign
//	bits 30..21 exponent, biased by 768
//	bits 20..0  mantissa
//
// value = mantissa * 2^(exponent - 768 - 20), negated when the sign is set.
const (
	floatMantBits = 21
	floatExpBias  = 768
	floatMantMask = 1<<floatMantBits - 1
	floatExpMask  = 0x7fe00000
	floatSignBit  = 0x80000000
)

// Float32Pack encodes v in the Vorbis codebook float format.
// Zero encodes as 0. Magnitudes below 2^-768 flush to a signed zero and
// magnitudes of 2^256 or more saturate to the largest encodable value.
func Float32Pack(v float64) uint32 {
	if v == 0 || math.IsNaN(v) {
		return 0
	}
	var sign uint32
	if v < 0 {
		sign = floatSignBit
		v = -v
	}
	if math.IsInf(v, 1) {
		return sign | floatExpMask | floatMantMask
	}

	// Frexp gives v = frac * 2^e with frac in [0.5, 1), so floor(log2 v)
	// is exactly e-1.
	_, e := math.Frexp(v)
	exp := e - 1
	mant := uint32(math.RoundToEven(math.Ldexp(v, floatMantBits-1-exp)))
	if mant > floatMantMask {
		// Rounded up to the next power of two.
		mant >>= 1
		exp++
	}

	biased := exp + floatExpBias
	switch {
	case biased < 0:
		return sign
	case biased > floatExpMask>>floatMantBits:
		return sign | floatExpMask | floatMantMask
	}
	return sign | uint32(biased)<<floatMantBits | mant
}

// Float32Unpack decodes a Vorbis codebook float.
func Float32Unpack(u uint32) float64 {
	mant := float64(u & floatMantMask)
	exp := int((u & floatExpMask) >> floatMantBits)
	if u&floatSignBit != 0 {
		mant = -mant
	}
	return math.Ldexp(mant, exp-(floatMantBits-1)-floatExpBias)
}
