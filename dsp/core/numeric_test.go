package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon to apply for eps <= 0")
	}
}

func TestIsPositiveFinite(t *testing.T) {
	tests := []struct {
		in   float64
		want bool
	}{
		{100, true},
		{1e-300, true},
		{0, false},
		{-1, false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if got := IsPositiveFinite(tt.in); got != tt.want {
			t.Errorf("IsPositiveFinite(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(-3) || !IsFinite(0) {
		t.Fatal("expected finite values to be reported finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("expected NaN and Inf to be reported non-finite")
	}
}

func TestInUnitInterval(t *testing.T) {
	if !InUnitInterval(1, 0) || !InUnitInterval(0.25, 0) {
		t.Fatal("expected (0,1] members to be accepted")
	}
	if InUnitInterval(0, 0) || InUnitInterval(1.0001, 0) || InUnitInterval(-0.5, 0) {
		t.Fatal("expected values outside (0,1] to be rejected")
	}
	if !InUnitInterval(1+1e-13, 1e-12) {
		t.Fatal("expected slack to widen the upper bound")
	}
	if InUnitInterval(1+1e-11, 1e-12) || InUnitInterval(0, 1e-12) {
		t.Fatal("expected slack to leave values beyond it and the lower bound rejected")
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "quarter", in: math.Pi / 2, want: math.Pi / 2},
		{name: "one turn back", in: math.Pi/2 - 2*math.Pi, want: math.Pi / 2},
		{name: "two turns forward", in: math.Pi/2 + 4*math.Pi, want: math.Pi / 2},
		{name: "negative quarter", in: -math.Pi / 2, want: 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < 0 || got >= 2*math.Pi {
				t.Fatalf("WrapAngle(%v) = %v, outside [0, 2π)", tt.in, got)
			}
		})
	}
}
