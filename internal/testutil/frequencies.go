package testutil

import (
	"math"
	"math/rand"
)

// OctaveSeries returns f0·2^k for k in [kMin, kMax].
func OctaveSeries(f0 float64, kMin, kMax int) []float64 {
	if kMax < kMin {
		return []float64{}
	}
	out := make([]float64, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		out = append(out, f0*math.Pow(2, float64(k)))
	}
	return out
}

// LogSweep returns n frequencies spaced evenly on a log scale from start to
// end inclusive.
func LogSweep(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	ratio := math.Log(end / start)
	for i := range out {
		out[i] = start * math.Exp(ratio*float64(i)/float64(n-1))
	}
	return out
}

// DeterministicFrequencies returns n log-uniform frequencies in [lo, hi)
// drawn from a fixed seed for reproducibility.
func DeterministicFrequencies(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	span := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(rng.Float64()*span)
	}
	return out
}
