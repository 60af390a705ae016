// Package util provides small numeric helpers shared by the govorbis packages.
package util

// Signed is a constraint for the signed integer and float types the codebook
// arithmetic works with.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsUint32 returns |x| as an unsigned value. It is safe for math.MinInt32,
// whose magnitude does not fit in an int32.
func AbsUint32(x int32) uint32 {
	if x < 0 {
		return uint32(-int64(x))
	}
	return uint32(x)
}
