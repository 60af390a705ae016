// Package codebook implements Vorbis static codebooks: the codeword length
// table, the optional vector quantization map, and their bit-exact packet
// form.
//
// # Packet Layout
//
//	24 bits  sync pattern 0x564342
//	16 bits  dimensions
//	24 bits  entries
//	         codeword lengths (ordered, dense or sparse encoding)
//	 4 bits  map type
//	         lattice/explicit only:
//	32 bits    minimum value (codebook float)
//	32 bits    delta value (codebook float)
//	 4 bits    value bits - 1
//	 1 bit     sequence flag
//	         quantized values, value bits each
//
// All fields are packed LSB-first by package bitpack.
package codebook

import (
	"math"

	"github.com/thesyncim/govorbis/util"
)

// Sync is the codebook sync pattern that starts every packed book.
const Sync = 0x564342

// Field widths in bits.
const (
	syncBits    = 24
	dimBits     = 16
	entriesBits = 24
	lengthBits  = 5
	mapTypeBits = 4
	floatBits   = 32
	quantBits   = 4
	maxLength   = 32
	maxQuant    = 1 << quantBits
)

// MapType selects how a book's quantized values expand into vectors.
type MapType uint8

const (
	// MapNone means the book carries no values; entries are scalars.
	MapNone MapType = 0

	// MapLattice reuses a short value column along every dimension; the
	// entry number is read as a mixed-radix index.
	MapLattice MapType = 1

	// MapExplicit stores every component of every entry.
	MapExplicit MapType = 2
)

// String returns the map type name.
func (m MapType) String() string {
	switch m {
	case MapNone:
		return "none"
	case MapLattice:
		return "lattice"
	case MapExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// Static is a codebook as it appears in the setup header.
type Static struct {
	// Dim is the number of scalar components per entry.
	Dim int

	// Entries is the number of codewords.
	Entries int

	// LengthList holds the codeword length in bits of each entry;
	// 0 marks an unused entry.
	LengthList []int

	// MapType selects the value mapping.
	MapType MapType

	// QMin and QDelta are the packed (see Float32Pack) minimum value and
	// step of the quantization grid.
	QMin   uint32
	QDelta uint32

	// QQuant is the bit width of each quantized value (1..16).
	QQuant int

	// QSequenceP makes each component accumulate onto the previous one.
	QSequenceP bool

	// QuantList holds the raw quantized values. Lattice books carry
	// Quantvals() of them, explicit books Entries*Dim.
	QuantList []int32
}

// Quantvals returns the greatest integer vals with vals^dim <= entries,
// or 0 when entries or dim is below 1.
//
// The floating point root is only an estimate; the exact answer is found
// with integer powers because the value decides how many fields follow in
// the packet.
func Quantvals(entries, dim int) int {
	if entries < 1 || dim < 1 {
		return 0
	}
	limit := int64(entries)
	vals := int(math.Floor(math.Pow(float64(entries), 1/float64(dim))))
	if vals < 1 {
		vals = 1
	}
	for {
		acc := util.PowCapped(vals, dim, limit)
		acc1 := util.PowCapped(vals+1, dim, limit)
		switch {
		case acc <= limit && acc1 > limit:
			return vals
		case acc > limit:
			vals--
		default:
			vals++
		}
	}
}

// Quantvals returns the lattice column length of s.
func (s *Static) Quantvals() int {
	return Quantvals(s.Entries, s.Dim)
}

// quantCount returns the number of quantized values the map type carries.
func (s *Static) quantCount() int {
	switch s.MapType {
	case MapLattice:
		return s.Quantvals()
	case MapExplicit:
		return s.Entries * s.Dim
	default:
		return 0
	}
}

// Unquantize expands the quantized values into Entries*Dim floats, entry
// after entry. It returns nil for MapNone or unknown map types.
func (s *Static) Unquantize() []float32 {
	if s.MapType != MapLattice && s.MapType != MapExplicit {
		return nil
	}
	if len(s.QuantList) < s.quantCount() {
		return nil
	}

	mindel := Float32Unpack(s.QMin)
	delta := Float32Unpack(s.QDelta)
	out := make([]float32, s.Entries*s.Dim)

	switch s.MapType {
	case MapLattice:
		quantvals := s.Quantvals()
		for j := 0; j < s.Entries; j++ {
			var last float64
			indexdiv := 1
			for k := 0; k < s.Dim; k++ {
				index := (j / indexdiv) % quantvals
				val := float64(util.Abs(s.QuantList[index]))*delta + mindel + last
				if s.QSequenceP {
					last = val
				}
				out[j*s.Dim+k] = float32(val)
				indexdiv *= quantvals
			}
		}
	case MapExplicit:
		for j := 0; j < s.Entries; j++ {
			var last float64
			for k := 0; k < s.Dim; k++ {
				val := float64(util.Abs(s.QuantList[j*s.Dim+k]))*delta + mindel + last
				if s.QSequenceP {
					last = val
				}
				out[j*s.Dim+k] = float32(val)
			}
		}
	}
	return out
}

// UsedEntries returns the number of entries with a codeword.
func (s *Static) UsedEntries() int {
	n := 0
	for _, l := range s.LengthList {
		if l > 0 {
			n++
		}
	}
	return n
}
