package codebook

import (
	"testing"
)

// TestQuantvals checks the exact integer root against known values.
func TestQuantvals(t *testing.T) {
	tests := []struct {
		entries, dim int
		want         int
	}{
		{27, 3, 3},
		{26, 3, 2},
		{64, 3, 4},
		{63, 3, 3},
		{81, 4, 3},
		{80, 4, 2},
		{625, 4, 5},
		{1, 1, 1},
		{1, 8, 1},
		{255, 1, 255},
		{1 << 24, 2, 4096},
		{1<<24 - 1, 2, 4095},
		{100, 64, 1},
		{0, 2, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := Quantvals(tt.entries, tt.dim); got != tt.want {
			t.Errorf("Quantvals(%d, %d) = %d, want %d", tt.entries, tt.dim, got, tt.want)
		}
	}
}

// TestChooseLengthEncoding checks the scheme decision.
func TestChooseLengthEncoding(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		want    LengthEncoding
	}{
		{"ordered", []int{1, 2, 2, 3}, LengthOrdered},
		{"ordered with gaps", []int{2, 5, 5, 9}, LengthOrdered},
		{"single", []int{4}, LengthOrdered},
		{"unordered", []int{3, 1, 2, 1}, LengthDense},
		{"unused entry", []int{1, 0, 2, 3}, LengthSparse},
		{"unused first", []int{0, 1, 2}, LengthSparse},
		{"empty", nil, LengthDense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseLengthEncoding(tt.lengths); got != tt.want {
				t.Errorf("ChooseLengthEncoding(%v) = %s, want %s", tt.lengths, got, tt.want)
			}
		})
	}
}

// TestUnquantizeLattice checks mixed-radix indexing.
func TestUnquantizeLattice(t *testing.T) {
	s := &Static{
		Dim:        2,
		Entries:    9,
		LengthList: []int{4, 4, 4, 4, 3, 3, 3, 3, 3},
		MapType:    MapLattice,
		QMin:       Float32Pack(-1),
		QDelta:     Float32Pack(1),
		QQuant:     2,
		QuantList:  []int32{0, 1, 2},
	}
	got := s.Unquantize()
	want := []float32{
		-1, -1, 0, -1, 1, -1,
		-1, 0, 0, 0, 1, 0,
		-1, 1, 0, 1, 1, 1,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestUnquantizeSequence checks accumulation across dimensions.
func TestUnquantizeSequence(t *testing.T) {
	s := &Static{
		Dim:        3,
		Entries:    2,
		LengthList: []int{1, 1},
		MapType:    MapExplicit,
		QMin:       Float32Pack(0.5),
		QDelta:     Float32Pack(2),
		QQuant:     3,
		QSequenceP: true,
		QuantList:  []int32{1, 0, 2, 3, -1, 0},
	}
	got := s.Unquantize()
	// entry 0: 2.5, 2.5+0.5, 3+4.5
	// entry 1: 6.5, 6.5+2.5, 9+0.5
	want := []float32{2.5, 3, 7.5, 6.5, 9, 9.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestUnquantizeNone checks that value-less books yield nil.
func TestUnquantizeNone(t *testing.T) {
	s := &Static{Dim: 1, Entries: 2, LengthList: []int{1, 1}}
	if got := s.Unquantize(); got != nil {
		t.Errorf("Unquantize() = %v, want nil", got)
	}
	s.MapType = MapType(7)
	if got := s.Unquantize(); got != nil {
		t.Errorf("Unquantize() with unknown map = %v, want nil", got)
	}
}
