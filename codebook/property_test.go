package codebook

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/thesyncim/govorbis/bitpack"
)

func staticGen() *rapid.Generator[*Static] {
	return rapid.Custom(func(t *rapid.T) *Static {
		dim := rapid.IntRange(1, 4).Draw(t, "dim")
		entries := rapid.IntRange(1, 80).Draw(t, "entries")

		var lengths []int
		switch rapid.IntRange(0, 2).Draw(t, "scheme") {
		case 0:
			// Non-decreasing, nonzero.
			l := rapid.IntRange(1, 20).Draw(t, "first")
			for i := 0; i < entries; i++ {
				l += rapid.IntRange(0, 2).Draw(t, "step")
				lengths = append(lengths, min(l, maxLength))
			}
		case 1:
			lengths = rapid.SliceOfN(rapid.IntRange(1, maxLength), entries, entries).Draw(t, "dense")
		default:
			lengths = rapid.SliceOfN(rapid.IntRange(0, maxLength), entries, entries).Draw(t, "sparse")
		}

		s := &Static{
			Dim:        dim,
			Entries:    entries,
			LengthList: lengths,
			MapType:    MapType(rapid.IntRange(0, 2).Draw(t, "maptype")),
		}
		if s.MapType == MapNone {
			return s
		}
		s.QQuant = rapid.IntRange(1, 16).Draw(t, "quant")
		s.QSequenceP = rapid.Bool().Draw(t, "sequencep")
		s.QMin = Float32Pack(rapid.Float64Range(-100, 100).Draw(t, "min"))
		s.QDelta = Float32Pack(rapid.Float64Range(0.001, 10).Draw(t, "delta"))
		n := s.quantCount()
		s.QuantList = rapid.SliceOfN(rapid.Int32Range(0, 1<<s.QQuant-1), n, n).Draw(t, "quantlist")
		return s
	})
}

// TestPackUnpackProperty checks unpack(pack(x)) == x for generated books.
func TestPackUnpackProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := staticGen().Draw(t, "book")

		w := bitpack.NewWriter()
		require.NoError(t, s.Pack(w))

		got, err := Unpack(bitpack.NewReader(w.Bytes(), 0, w.BytesUsed()))
		require.NoError(t, err)
		require.Equal(t, s, got)
		require.Equal(t, s.Unquantize(), got.Unquantize())
	})
}

// TestUnpackTruncatedProperty checks that every proper prefix of a packed
// book fails cleanly.
func TestUnpackTruncatedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := staticGen().Draw(t, "book")

		w := bitpack.NewWriter()
		require.NoError(t, s.Pack(w))
		data := w.Bytes()

		// Dropping the final byte always removes at least one bit of the
		// last field.
		cut := rapid.IntRange(0, len(data)-1).Draw(t, "cut")
		got, err := Unpack(bitpack.NewReader(data, 0, cut))
		require.Error(t, err)
		require.Nil(t, got)
	})
}
