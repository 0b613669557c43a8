package worldgen

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Profile computes the ground row of every column.
type Profile interface {
	Rows(width int) ([]int, error)
}

// SineProfile produces gentle rolling hills.
type SineProfile struct {
	Shape Shape
}

func (p SineProfile) Rows(width int) ([]int, error) {
	rows := make([]int, width)
	for x := range rows {
		rows[x] = p.Shape.Base + int(math.Round(p.offset(x)))
	}
	return rows, nil
}

func (p SineProfile) offset(x int) float64 {
	if p.Shape.Amplitude == 0 {
		return 0
	}
	return p.Shape.Amplitude * math.Sin(2*math.Pi*float64(x)/p.Shape.Wavelength+p.Shape.Phase)
}

// NoiseProfile layers simplex noise of amplitude Shape.Roughness over the
// sine hills.
type NoiseProfile struct {
	Shape Shape
	Noise opensimplex.Noise
}

func NewNoiseProfile(shape Shape, seed int64) NoiseProfile {
	return NoiseProfile{Shape: shape, Noise: opensimplex.New(seed)}
}

func (p NoiseProfile) Rows(width int) ([]int, error) {
	sine := SineProfile{Shape: p.Shape}
	rows := make([]int, width)
	for x := range rows {
		n := p.Noise.Eval2(float64(x)*4/p.Shape.Wavelength, 0.5)
		rows[x] = p.Shape.Base + int(math.Round(sine.offset(x)+p.Shape.Roughness*n))
	}
	return rows, nil
}
