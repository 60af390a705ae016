package codebook

import "fmt"

// MakeWords assigns canonical prefix codewords to the given lengths, in entry
// order, and returns them bit-reversed so that writing a codeword LSB-first
// emits its most significant bit first. Unused entries (length 0) get 0.
//
// Returns ErrOverspecified when the lengths cannot form a prefix-free code.
// Underspecified codes (unused leaves) are accepted.
func MakeWords(lengths []int) ([]uint32, error) {
	// marker[l] is the next free codeword of length l.
	var marker [maxLength + 1]uint32
	words := make([]uint32, len(lengths))

	for i, length := range lengths {
		if length <= 0 {
			continue
		}
		if length > maxLength {
			return nil, fmt.Errorf("%w: entry %d has length %d", ErrInvalidLengthList, i, length)
		}

		entry := marker[length]
		if length < maxLength && entry>>uint(length) != 0 {
			return nil, fmt.Errorf("%w: no codeword left for entry %d (length %d)", ErrOverspecified, i, length)
		}
		words[i] = entry

		// Claim the node: walk up until a left branch is found and move
		// the marker of every shorter length past it.
		for j := length; j > 0; j-- {
			if marker[j]&1 != 0 {
				if j == 1 {
					marker[1]++
				} else {
					marker[j] = marker[j-1] << 1
				}
				break
			}
			marker[j]++
		}

		// Longer markers that hung below the claimed node move with it.
		for j := length + 1; j <= maxLength; j++ {
			if marker[j]>>1 != entry {
				break
			}
			entry = marker[j]
			marker[j] = marker[j-1] << 1
		}
	}

	for i, length := range lengths {
		var rev uint32
		for j := 0; j < length; j++ {
			rev = rev<<1 | (words[i]>>uint(j))&1
		}
		words[i] = rev
	}
	return words, nil
}
