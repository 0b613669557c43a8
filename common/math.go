package common

import "math"

// TileSize is the edge length of one tile in screen pixels. The simulation
// itself works in tile units; only renderers multiply by this.
const TileSize = 16

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. When the range is empty it returns lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FloorInt floors v to the containing integer cell.
func FloorInt(v float64) int {
	return int(math.Floor(v))
}
