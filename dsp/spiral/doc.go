// Package spiral places frequencies on a spiral score.
//
// A spiral score draws every sinusoidal component of a sound as a point in
// the plane. In polar form a note with frequency f sits at
//
//	r = d(f)
//	θ = π/2 - 2π·log2(f/f0)
//
// where d is a distance function from package distance and f0 is the
// reference frequency. One revolution spans one octave, so f0·2^k for every
// integer k lies on the ray pointing to 12 o'clock. If f0 is C1, every C is
// drawn on that ray. The distance function must return 1 at f0; the
// calculator trusts this unless [WithReferenceCheck] is set.
//
// [Position] handles one frequency and [Positions] a batch that keeps the
// input order. Both validate their inputs and return an error wrapping
// [ErrInvalidFrequency] or [ErrInvalidReference] instead of producing NaN
// coordinates.
package spiral
