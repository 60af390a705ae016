package codebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/govorbis/bitpack"
)

// TestMakeWords checks canonical assignment and bit reversal.
func TestMakeWords(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		want    []uint32
	}{
		// Canonical 00 01 10 11, reversed.
		{"flat", []int{2, 2, 2, 2}, []uint32{0b00, 0b10, 0b01, 0b11}},
		// Canonical 0 10 110 111.
		{"skewed", []int{1, 2, 3, 3}, []uint32{0b0, 0b01, 0b011, 0b111}},
		// Assigned in entry order: 000 1 001 01.
		{"unordered", []int{3, 1, 3, 2}, []uint32{0b000, 0b1, 0b100, 0b10}},
		// Unused entries keep 0 and do not consume codes.
		{"sparse", []int{1, 0, 1}, []uint32{0, 0, 1}},
		{"underspecified", []int{2, 2}, []uint32{0b00, 0b10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MakeWords(tt.lengths)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestMakeWordsOverspecified checks lengths that cannot form a prefix code.
func TestMakeWordsOverspecified(t *testing.T) {
	for _, lengths := range [][]int{
		{1, 1, 1},
		{1, 2, 2, 2},
		{2, 2, 2, 2, 3},
	} {
		_, err := MakeWords(lengths)
		assert.ErrorIs(t, err, ErrOverspecified, "lengths %v", lengths)
	}
}

// TestBookEncodeDecode writes every entry and decodes it back.
func TestBookEncodeDecode(t *testing.T) {
	s := &Static{
		Dim:        1,
		Entries:    7,
		LengthList: []int{2, 3, 0, 3, 2, 3, 3},
	}
	bk, err := NewBook(s)
	require.NoError(t, err)

	seq := []int{0, 1, 3, 4, 5, 6, 6, 0, 4, 1}
	w := bitpack.NewWriter()
	for _, e := range seq {
		require.NoError(t, bk.Encode(w, e))
	}

	r := bitpack.NewReader(w.Bytes(), 0, w.BytesUsed())
	for i, want := range seq {
		got, err := bk.Decode(r)
		require.NoError(t, err, "symbol %d", i)
		assert.Equal(t, want, got, "symbol %d", i)
	}

	assert.ErrorIs(t, bk.Encode(w, 2), ErrInvalidEntry)
	assert.ErrorIs(t, bk.Encode(w, 7), ErrInvalidEntry)
	assert.ErrorIs(t, bk.Encode(w, -1), ErrInvalidEntry)
}

// TestBookDecodeInvalid checks bits that lead to an empty branch.
func TestBookDecodeInvalid(t *testing.T) {
	// Only "0" and "10" are assigned; "11" is unused.
	bk, err := NewBook(&Static{Dim: 1, Entries: 2, LengthList: []int{1, 2}})
	require.NoError(t, err)

	r := bitpack.NewReader([]byte{0xff}, 0, 1)
	_, err = bk.Decode(r)
	assert.ErrorIs(t, err, ErrInvalidCodeword)

	_, err = bk.Decode(bitpack.NewReader(nil, 0, 0))
	assert.ErrorIs(t, err, bitpack.ErrUnexpectedEOF)
}

// TestBookDecodeVector checks vector lookups through a lattice map.
func TestBookDecodeVector(t *testing.T) {
	s := &Static{
		Dim:        2,
		Entries:    4,
		LengthList: []int{2, 2, 2, 2},
		MapType:    MapLattice,
		QMin:       Float32Pack(-0.5),
		QDelta:     Float32Pack(1),
		QQuant:     1,
		QuantList:  []int32{0, 1},
	}
	bk, err := NewBook(s)
	require.NoError(t, err)
	require.Len(t, bk.Values(), 8)

	w := bitpack.NewWriter()
	require.NoError(t, bk.Encode(w, 2))
	r := bitpack.NewReader(w.Bytes(), 0, w.BytesUsed())
	v, err := bk.DecodeVector(r)
	require.NoError(t, err)
	assert.Equal(t, []float32{-0.5, 0.5}, v)

	scalar, err := NewBook(&Static{Dim: 1, Entries: 2, LengthList: []int{1, 1}})
	require.NoError(t, err)
	_, err = scalar.DecodeVector(bitpack.NewReader([]byte{0}, 0, 1))
	assert.ErrorIs(t, err, ErrUnsupportedMapType)
}

// TestNewBookRejectsBadLengths checks book construction errors.
func TestNewBookRejectsBadLengths(t *testing.T) {
	_, err := NewBook(&Static{Dim: 1, Entries: 3, LengthList: []int{1, 1, 1}})
	assert.ErrorIs(t, err, ErrOverspecified)

	_, err = NewBook(&Static{Dim: 1, Entries: 3, LengthList: []int{1, 1}})
	assert.ErrorIs(t, err, ErrInvalidLengthList)
}
