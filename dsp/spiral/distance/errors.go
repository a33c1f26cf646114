package distance

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spiral/dsp/core"
)

var (
	// ErrInvalidReference is returned when f0 is not a positive finite number.
	ErrInvalidReference = errors.New("distance: reference frequency must be positive and finite")
	// ErrInvalidEnd is returned when fEnd is not a positive finite number.
	ErrInvalidEnd = errors.New("distance: end frequency must be positive and finite")
	// ErrInvalidLinearity is returned when the blend weight is not finite.
	ErrInvalidLinearity = errors.New("distance: linearity must be finite")
	// ErrUnknownType is returned for an unrecognized distance type name.
	ErrUnknownType = errors.New("distance: unknown type")
)

func validateReference(f0 float64) error {
	if !core.IsPositiveFinite(f0) {
		return fmt.Errorf("%w: %v", ErrInvalidReference, f0)
	}
	return nil
}

func validateEnd(fEnd float64) error {
	if !core.IsPositiveFinite(fEnd) {
		return fmt.Errorf("%w: %v", ErrInvalidEnd, fEnd)
	}
	return nil
}

func validateLinearity(lin float64) error {
	if !core.IsFinite(lin) {
		return fmt.Errorf("%w: %v", ErrInvalidLinearity, lin)
	}
	return nil
}
