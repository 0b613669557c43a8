package world

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidSize(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero_width", 0, 10},
		{"zero_height", 10, 0},
		{"negative", -3, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := New(c.width, c.height)
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("expected ErrInvalidSize, got %v", err)
			}
			if g != nil {
				t.Fatalf("expected nil grid on error")
			}
		})
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g, err := New(4, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			g.Set(x, y, Stone)
		}
	}
	before := g.Clone()

	points := []struct{ x, y float64 }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-0.5, 1}, {3.999, 2.999 + 1}, {100, 100},
	}
	for _, p := range points {
		if got := g.Tile(p.x, p.y); got != Air {
			t.Fatalf("Tile(%v,%v) = %v, want air", p.x, p.y, got)
		}
		if g.SetTile(p.x, p.y, Wood) {
			t.Fatalf("SetTile(%v,%v) reported a write outside the grid", p.x, p.y)
		}
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			if g.At(x, y) != before.At(x, y) {
				t.Fatalf("out of range write changed cell (%d,%d)", x, y)
			}
		}
	}
}

func TestGridRoundTrip(t *testing.T) {
	g, err := New(8, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, tt := range TileTypes() {
		t.Run(tt.String(), func(t *testing.T) {
			if !g.SetTile(2.7, 5.1, tt) {
				t.Fatalf("in-bounds SetTile failed")
			}
			if got := g.Tile(2.2, 5.9); got != tt {
				t.Fatalf("Tile = %v, want %v", got, tt)
			}
			if got := g.At(2, 5); got != tt {
				t.Fatalf("At = %v, want %v", got, tt)
			}
		})
	}
}

func TestSurfaceRowAndCount(t *testing.T) {
	g, err := New(3, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Set(1, 2, Grass)
	g.Set(1, 3, Dirt)
	g.Set(2, 0, Leaf)

	if got := g.SurfaceRow(0); got != -1 {
		t.Fatalf("empty column surface = %d, want -1", got)
	}
	if got := g.SurfaceRow(1); got != 2 {
		t.Fatalf("surface = %d, want 2", got)
	}
	if got := g.SurfaceRow(2); got != 0 {
		t.Fatalf("leaf counts as surface, got %d", got)
	}
	if got := g.SurfaceRow(7); got != -1 {
		t.Fatalf("out of range column surface = %d, want -1", got)
	}
	if got := g.Count(Air); got != 12 {
		t.Fatalf("Count(air) = %d, want 12", got)
	}
}
