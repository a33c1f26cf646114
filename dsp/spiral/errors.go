package spiral

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spiral/dsp/core"
)

var (
	// ErrInvalidFrequency is returned for a frequency that is not positive and finite.
	ErrInvalidFrequency = errors.New("spiral: frequency must be positive and finite")
	// ErrInvalidReference is returned for a reference frequency that is not positive and finite.
	ErrInvalidReference = errors.New("spiral: reference frequency must be positive and finite")
	// ErrNilDistance is returned when no distance function is supplied.
	ErrNilDistance = errors.New("spiral: distance function is nil")
	// ErrNonFiniteRadius is returned when the distance function yields NaN or Inf.
	ErrNonFiniteRadius = errors.New("spiral: distance function returned a non-finite radius")
	// ErrReferenceMismatch is returned by [New] with [WithReferenceCheck] when
	// the distance function is not 1 at the reference frequency.
	ErrReferenceMismatch = errors.New("spiral: distance function is not 1 at the reference frequency")
	// ErrRadiusOutOfRange is returned with [WithStrictRadius] for radii outside (0, 1].
	ErrRadiusOutOfRange = errors.New("spiral: radius outside (0, 1]")
	// ErrLengthMismatch is returned when destination and input lengths differ.
	ErrLengthMismatch = errors.New("spiral: destination and frequency lengths differ")
)

// radiusSlack absorbs rounding when a blended distance lands a hair above 1.
const radiusSlack = 1e-12

func validateReference(f0 float64) error {
	if !core.IsPositiveFinite(f0) {
		return fmt.Errorf("%w: %v", ErrInvalidReference, f0)
	}
	return nil
}

func validateFrequency(f float64) error {
	if !core.IsPositiveFinite(f) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, f)
	}
	return nil
}

func validateRadius(r float64, strict bool) error {
	if !core.IsFinite(r) {
		return fmt.Errorf("%w: %v", ErrNonFiniteRadius, r)
	}
	if strict && !core.InUnitInterval(r, radiusSlack) {
		return fmt.Errorf("%w: %v", ErrRadiusOutOfRange, r)
	}
	return nil
}
