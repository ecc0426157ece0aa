package sqz

import (
	"fmt"
	"testing"
)

func collectPositions(s scanner, count int) map[[2]int]bool {
	seen := make(map[[2]int]bool, count)
	for {
		x, y := s.pos()
		seen[[2]int{x, y}] = true
		if !s.next() {
			break
		}
	}
	return seen
}

func TestScannersVisitEveryPositionExactlyOnce(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {8, 8}, {13, 7}, {16, 32}, {31, 31},
	}
	orders := []ScanOrder{ScanRaster, ScanSnake, ScanMorton, ScanHilbert}

	for _, order := range orders {
		for _, sz := range sizes {
			t.Run(scanOrderName(order)+"_"+dims(sz.w, sz.h), func(t *testing.T) {
				s := newScanner(order, sz.w, sz.h)
				seen := collectPositions(s, sz.w*sz.h)
				want := sz.w * sz.h
				if len(seen) != want {
					t.Fatalf("visited %d distinct positions, want %d", len(seen), want)
				}
				for y := 0; y < sz.h; y++ {
					for x := 0; x < sz.w; x++ {
						if !seen[[2]int{x, y}] {
							t.Errorf("position (%d,%d) never visited", x, y)
						}
					}
				}
			})
		}
	}
}

func scanOrderName(o ScanOrder) string {
	switch o {
	case ScanRaster:
		return "raster"
	case ScanSnake:
		return "snake"
	case ScanMorton:
		return "morton"
	case ScanHilbert:
		return "hilbert"
	default:
		return "unknown"
	}
}

func dims(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

func TestRasterScannerOrder(t *testing.T) {
	s := newRasterScanner(3, 2)
	var got [][2]int
	for {
		x, y := s.pos()
		got = append(got, [2]int{x, y})
		if !s.next() {
			break
		}
	}
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHilbertScannerAdjacency(t *testing.T) {
	// A Hilbert curve's defining property: consecutive visits are always
	// exactly Manhattan distance 1 apart.
	s := newHilbertScanner(8, 8)
	px, py := s.pos()
	for s.next() {
		x, y := s.pos()
		dist := absInt(x-px) + absInt(y-py)
		if dist != 1 {
			t.Fatalf("non-adjacent step from (%d,%d) to (%d,%d)", px, py, x, y)
		}
		px, py = x, y
	}
}

func TestSnakeScannerAdjacency(t *testing.T) {
	s := newSnakeScanner(9, 7, snakeDefaultTileWidth, snakeDefaultTileHeight)
	px, py := s.pos()
	for s.next() {
		x, y := s.pos()
		dist := absInt(x-px) + absInt(y-py)
		if dist != 1 {
			t.Fatalf("non-adjacent step from (%d,%d) to (%d,%d)", px, py, x, y)
		}
		px, py = x, y
	}
}

func TestIlog2(t *testing.T) {
	tests := []struct {
		x    uint32
		want uint32
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {255, 8}, {256, 9}, {1 << 20, 21},
	}
	for _, tt := range tests {
		if got := ilog2(tt.x); got != tt.want {
			t.Errorf("ilog2(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestMirror(t *testing.T) {
	// mirror must reflect any input back into [0, maximum].
	tests := []struct {
		value, maximum int32
		want           uint32
	}{
		{0, 7, 0},
		{7, 7, 7},
		{-1, 7, 1},
		{-2, 7, 2},
		{8, 7, 6},
		{9, 7, 5},
		{0, 0, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := mirror(tt.value, tt.maximum); got != tt.want {
			t.Errorf("mirror(%d, %d) = %d, want %d", tt.value, tt.maximum, got, tt.want)
		}
	}
}

func TestMirrorStaysInRange(t *testing.T) {
	for maximum := int32(0); maximum <= 16; maximum++ {
		for value := int32(-40); value <= 40; value++ {
			got := mirror(value, maximum)
			if int32(got) < 0 || int32(got) > maximum {
				t.Fatalf("mirror(%d, %d) = %d, out of [0,%d]", value, maximum, got, maximum)
			}
		}
	}
}

func TestInterleaveDeinterleaveRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 0xFFFF, 0x1234, 0xABCD, 1 << 15}
	for _, v := range values {
		got := deinterleave(interleave(v))
		if got != v {
			t.Errorf("deinterleave(interleave(%d)) = %d, want %d", v, got, v)
		}
	}
}
