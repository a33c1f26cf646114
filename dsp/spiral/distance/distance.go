package distance

import "github.com/cwbudde/algo-spiral/dsp/core"

// Func maps a frequency to a radial distance from the spiral origin.
//
// Implementations must be pure. For use with the spiral calculator a Func is
// expected to return 1 at the calculator's reference frequency.
type Func interface {
	Distance(f float64) float64
}

// FuncOf adapts an ordinary function to [Func].
type FuncOf func(f float64) float64

// Distance calls fn(f).
func (fn FuncOf) Distance(f float64) float64 { return fn(f) }

// Rational places a note at f0/f. Two notes an octave apart differ in
// distance by a factor of two.
type Rational struct {
	F0 float64
}

// NewRational returns the rational distance function for reference f0.
func NewRational(f0 float64) Rational {
	return Rational{F0: f0}
}

// Distance returns F0/f. The result is ±Inf for f == 0.
func (r Rational) Distance(f float64) float64 {
	return r.F0 / f
}

// Linear decreases the distance by a constant amount per Hz, so notes an
// octave apart keep the same radial gap regardless of register.
//
// At f == FEnd the value is F0/FEnd, the same as [Rational] at that
// frequency. Frequencies above F0+FEnd yield negative distances.
type Linear struct {
	F0   float64
	FEnd float64
}

// NewLinear returns the linear distance function for reference f0 and end
// frequency fEnd.
func NewLinear(f0, fEnd float64) Linear {
	return Linear{F0: f0, FEnd: fEnd}
}

// Distance returns 1 - (f-F0)/FEnd.
func (l Linear) Distance(f float64) float64 {
	return 1 - (f-l.F0)/l.FEnd
}

// Blend mixes a linear and a rational distance:
//
//	d(f) = Lin*linear(f) + (1-Lin)*rational(f)
//
// Lin is not clamped. Values in [0, 1] give a convex combination; both
// components are 1 at F0, so the blend is too for any Lin.
type Blend struct {
	Linear   Linear
	Rational Rational
	Lin      float64
}

// NewRationalLinearComb returns a blend of NewLinear(f0, fEnd) and
// NewRational(f0) weighted by lin.
func NewRationalLinearComb(f0, fEnd, lin float64) Blend {
	return Blend{
		Linear:   NewLinear(f0, fEnd),
		Rational: NewRational(f0),
		Lin:      lin,
	}
}

// Distance returns the weighted sum of both components.
func (b Blend) Distance(f float64) float64 {
	return b.Lin*b.Linear.Distance(f) + (1-b.Lin)*b.Rational.Distance(f)
}

// Sample evaluates fn at each frequency and returns the distances in order.
func Sample(fn Func, freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = fn.Distance(f)
	}
	return out
}

// CheckReference reports whether fn(f0) equals 1 within eps.
func CheckReference(fn Func, f0, eps float64) bool {
	return core.NearlyEqual(fn.Distance(f0), 1, eps)
}
