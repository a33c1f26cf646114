// Package distance provides radial distance functions for spiral score
// placement.
//
// A distance function maps a frequency to the distance of its note from the
// spiral origin. Every function built here evaluates to exactly 1 at its
// reference frequency f0, which is the contract the spiral calculator relies
// on for the 12 o'clock anchor point.
//
// Three families are available:
//
//   - [Rational]: f0/f, halving the distance every octave.
//   - [Linear]: 1 - (f-f0)/fEnd, a constant radial step per Hz.
//   - [Blend]: a linear combination of the two.
//
// [Linear] is constructed so that it meets [Rational] at fEnd, which lets
// [Blend] move continuously between both shapes. Raw constructors do not
// validate their arguments; [New] does.
package distance
