package util

// PowCapped returns base^exp computed with exact integer arithmetic.
// Once the running product exceeds limit the loop stops and limit+1 is
// returned, so callers comparing against limit never observe overflow.
// base and exp must be non-negative.
func PowCapped(base, exp int, limit int64) int64 {
	acc := int64(1)
	for i := 0; i < exp; i++ {
		acc *= int64(base)
		if acc > limit {
			return limit + 1
		}
	}
	return acc
}
