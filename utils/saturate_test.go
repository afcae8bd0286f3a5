// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestSatAdd16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int16
		want int16
	}{
		{"small", 100, 23, 123},
		{"negative", -100, -23, -123},
		{"positive overflow", math.MaxInt16, 1, math.MaxInt16},
		{"negative overflow", math.MinInt16, -1, math.MinInt16},
		{"opposite signs never clamp", math.MaxInt16, math.MinInt16, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SatAdd16(tt.a, tt.b); got != tt.want {
				t.Errorf("SatAdd16(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSatSub16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int16
		want int16
	}{
		{"small", 100, 23, 77},
		{"min minus one", math.MinInt16, 1, math.MinInt16},
		{"zero minus min", 0, math.MinInt16, math.MaxInt16},
		{"max minus negative", math.MaxInt16, -5, math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SatSub16(tt.a, tt.b); got != tt.want {
				t.Errorf("SatSub16(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSatMul16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int16
		want int16
	}{
		{"127 by 256 fits", 127, 256, 32512},
		{"-128 by 256 fits", -128, 256, math.MinInt16},
		{"128 by 256 clamps", 128, 256, math.MaxInt16},
		{"-129 by 256 clamps", -129, 256, math.MinInt16},
		{"min by -1 clamps", math.MinInt16, -1, math.MaxInt16},
		{"zero", 0, 12345, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SatMul16(tt.a, tt.b); got != tt.want {
				t.Errorf("SatMul16(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestClamp16_Range(t *testing.T) {
	t.Parallel()

	for x := int32(-70000); x <= 70000; x += 997 {
		got := int32(Clamp16(x))
		want := max(min(x, math.MaxInt16), math.MinInt16)
		if got != want {
			t.Fatalf("Clamp16(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestClamp16From64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x    int64
		want int16
	}{
		{0, 0},
		{-1, -1},
		{math.MaxInt16, math.MaxInt16},
		{math.MaxInt16 + 1, math.MaxInt16},
		{math.MinInt16 - 1, math.MinInt16},
		{2 * 255 * 255, math.MaxInt16},
		{math.MaxInt64, math.MaxInt16},
		{math.MinInt64, math.MinInt16},
	}

	for _, tt := range tests {
		if got := Clamp16From64(tt.x); got != tt.want {
			t.Errorf("Clamp16From64(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestSatAdd16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = SatAdd16(SatMul16(3, 1000), -7)
	})

	if allocs > 0 {
		t.Errorf("saturating arithmetic allocated %v times, want 0", allocs)
	}
}

func BenchmarkSatMul16(b *testing.B) {
	var result int16

	b.ReportAllocs()

	for i := range b.N {
		result = SatMul16(int16(i), 256)
	}

	_ = result
}
