package spiral

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Coordinate is a Cartesian point on the spiral score.
type Coordinate struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Polar is a point in polar form. Theta is in radians, counter-clockwise
// from the positive x axis.
type Polar struct {
	R     float64 `json:"r" yaml:"r"`
	Theta float64 `json:"theta" yaml:"theta"`
}

// Cartesian converts p to x/y form.
func (p Polar) Cartesian() Coordinate {
	sin, cos := math.Sincos(p.Theta)
	return Coordinate{X: p.R * cos, Y: p.R * sin}
}

// Radius returns the distance of c from the origin.
func (c Coordinate) Radius() float64 {
	return math.Hypot(c.X, c.Y)
}

// Polar converts c to polar form with R >= 0 and Theta in (-π, π].
//
// A point produced from a negative distance converts to a positive radius
// on the opposite ray.
func (c Coordinate) Polar() Polar {
	return Polar{R: c.Radius(), Theta: math.Atan2(c.Y, c.X)}
}

// Split returns the x and y components of coords as separate slices.
func Split(coords []Coordinate) (xs, ys []float64) {
	xs = make([]float64, len(coords))
	ys = make([]float64, len(coords))
	for i, c := range coords {
		xs[i] = c.X
		ys[i] = c.Y
	}
	return xs, ys
}

// Radii returns the distance from the origin of each coordinate.
func Radii(coords []Coordinate) []float64 {
	out := make([]float64, len(coords))
	if len(coords) == 0 {
		return out
	}

	xs, ys := Split(coords)
	vecmath.Magnitude(out, xs, ys)

	return out
}
