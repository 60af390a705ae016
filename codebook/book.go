package codebook

import (
	"fmt"

	"github.com/thesyncim/govorbis/bitpack"
)

// Book is a static codebook prepared for coding entries: codewords, a decode
// tree and, for books with a value map, the unquantized vectors.
type Book struct {
	Static *Static

	words  []uint32
	values []float32

	// tree holds binary decode nodes. A child value >= 0 is another node,
	// a value < 0 is leaf -(entry+1), and 0 on a non-root position means
	// the branch is empty (the root is never a child).
	tree [][2]int32
}

// NewBook builds the codewords and decode tree of s.
func NewBook(s *Static) (*Book, error) {
	if len(s.LengthList) != s.Entries {
		return nil, fmt.Errorf("%w: %d lengths for %d entries", ErrInvalidLengthList, len(s.LengthList), s.Entries)
	}
	words, err := MakeWords(s.LengthList)
	if err != nil {
		return nil, err
	}

	bk := &Book{
		Static: s,
		words:  words,
		values: s.Unquantize(),
		tree:   make([][2]int32, 1, 2*s.UsedEntries()+1),
	}

	for entry, length := range s.LengthList {
		if length == 0 {
			continue
		}
		node := int32(0)
		for j := 0; j < length; j++ {
			bit := (words[entry] >> uint(j)) & 1
			if j == length-1 {
				bk.tree[node][bit] = -int32(entry) - 1
				break
			}
			next := bk.tree[node][bit]
			if next <= 0 {
				next = int32(len(bk.tree))
				bk.tree = append(bk.tree, [2]int32{})
				bk.tree[node][bit] = next
			}
			node = next
		}
	}
	return bk, nil
}

// Codeword returns the bit-reversed codeword and length of entry.
func (bk *Book) Codeword(entry int) (word uint32, length int, err error) {
	if entry < 0 || entry >= bk.Static.Entries || bk.Static.LengthList[entry] == 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidEntry, entry)
	}
	return bk.words[entry], bk.Static.LengthList[entry], nil
}

// Encode writes the codeword of entry to b.
func (bk *Book) Encode(b *bitpack.Buffer, entry int) error {
	word, length, err := bk.Codeword(entry)
	if err != nil {
		return err
	}
	b.Write(word, length)
	return nil
}

// Decode reads one codeword from b and returns its entry number.
func (bk *Book) Decode(b *bitpack.Buffer) (int, error) {
	node := int32(0)
	for depth := 0; depth < maxLength; depth++ {
		bit, err := b.ReadBit()
		if err != nil {
			return -1, err
		}
		next := bk.tree[node][bit]
		switch {
		case next < 0:
			return int(-next - 1), nil
		case next == 0:
			return -1, ErrInvalidCodeword
		}
		node = next
	}
	return -1, ErrInvalidCodeword
}

// DecodeVector reads one codeword and returns the Dim values of its entry.
// The slice aliases the book's value table.
func (bk *Book) DecodeVector(b *bitpack.Buffer) ([]float32, error) {
	if bk.values == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMapType, bk.Static.MapType)
	}
	entry, err := bk.Decode(b)
	if err != nil {
		return nil, err
	}
	dim := bk.Static.Dim
	return bk.values[entry*dim : (entry+1)*dim], nil
}

// Values returns the unquantized value table, or nil for MapNone books.
func (bk *Book) Values() []float32 {
	return bk.values
}
