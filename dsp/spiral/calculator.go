package spiral

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-spiral/dsp/spiral/distance"
	"github.com/cwbudde/algo-vecmath"
)

const defaultParallelThreshold = 4096

// Option configures a [Calculator].
type Option func(*config)

type config struct {
	referenceCheck    bool
	referenceEps      float64
	strictRadius      bool
	parallelThreshold int
}

func defaultConfig() config {
	return config{
		referenceEps:      1e-9,
		parallelThreshold: defaultParallelThreshold,
	}
}

// WithReferenceCheck makes [New] verify that the distance function equals 1
// at f0 within eps. Non-positive eps keeps the default of 1e-9.
func WithReferenceCheck(eps float64) Option {
	return func(c *config) {
		c.referenceCheck = true
		if eps > 0 {
			c.referenceEps = eps
		}
	}
}

// WithStrictRadius rejects radii outside (0, 1]. By default any finite
// radius is accepted, including negative values from a linear distance
// evaluated past its zero crossing.
func WithStrictRadius() Option {
	return func(c *config) {
		c.strictRadius = true
	}
}

// WithParallelThreshold sets the batch size from which
// [Calculator.PositionsContext] spreads work across goroutines.
func WithParallelThreshold(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallelThreshold = n
		}
	}
}

// Calculator maps frequencies to spiral coordinates for a fixed reference
// frequency and distance function. It is immutable and safe for concurrent
// use if its distance function is.
type Calculator struct {
	f0   float64
	dist distance.Func
	cfg  config
}

// New returns a Calculator anchored at f0.
func New(f0 float64, dist distance.Func, opts ...Option) (*Calculator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateReference(f0); err != nil {
		return nil, err
	}
	if isNilDistance(dist) {
		return nil, ErrNilDistance
	}
	if cfg.referenceCheck && !distance.CheckReference(dist, f0, cfg.referenceEps) {
		return nil, fmt.Errorf("%w: d(%v) = %v", ErrReferenceMismatch, f0, dist.Distance(f0))
	}

	return &Calculator{f0: f0, dist: dist, cfg: cfg}, nil
}

// isNilDistance reports whether dist is nil or a FuncOf wrapping a nil
// function.
func isNilDistance(dist distance.Func) bool {
	if dist == nil {
		return true
	}
	fn, ok := dist.(distance.FuncOf)
	return ok && fn == nil
}

// Reference returns the reference frequency f0.
func (c *Calculator) Reference() float64 { return c.f0 }

// Distance returns the distance function.
func (c *Calculator) Distance() distance.Func { return c.dist }

// Octaves returns log2(f/f0), the signed number of octaves from f0 to f.
func Octaves(f, f0 float64) float64 {
	return math.Log2(f / f0)
}

// Angle returns θ = π/2 - 2π·log2(f/f0). The angle decreases, turning
// clockwise, as the frequency rises.
func Angle(f, f0 float64) float64 {
	return math.Pi/2 - 2*math.Pi*Octaves(f, f0)
}

// PolarPosition returns the polar form of f's position.
func (c *Calculator) PolarPosition(f float64) (Polar, error) {
	if err := validateFrequency(f); err != nil {
		return Polar{}, err
	}

	r := c.dist.Distance(f)
	if err := validateRadius(r, c.cfg.strictRadius); err != nil {
		return Polar{}, fmt.Errorf("f=%v: %w", f, err)
	}

	return Polar{R: r, Theta: Angle(f, c.f0)}, nil
}

// Position returns the coordinate of a single frequency.
func (c *Calculator) Position(f float64) (Coordinate, error) {
	p, err := c.PolarPosition(f)
	if err != nil {
		return Coordinate{}, err
	}
	return p.Cartesian(), nil
}

// Positions returns one coordinate per frequency in input order. An empty
// input yields an empty, non-nil slice.
func (c *Calculator) Positions(freqs []float64) ([]Coordinate, error) {
	out := make([]Coordinate, len(freqs))
	if err := c.fill(out, freqs, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// PositionsInto writes the x and y components for freqs into xs and ys.
// Both destinations must have len(freqs) elements. On error the contents of
// xs and ys are unspecified.
func (c *Calculator) PositionsInto(xs, ys, freqs []float64) error {
	if len(xs) != len(freqs) || len(ys) != len(freqs) {
		return fmt.Errorf("%w: xs=%d ys=%d freqs=%d", ErrLengthMismatch, len(xs), len(ys), len(freqs))
	}
	if len(freqs) == 0 {
		return nil
	}

	rs, buf := getScratch(len(freqs))
	defer putScratch(buf)

	for i, f := range freqs {
		p, err := c.PolarPosition(f)
		if err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		rs[i] = p.R
		ys[i], xs[i] = math.Sincos(p.Theta)
	}

	vecmath.MulBlockInPlace(xs, rs)
	vecmath.MulBlockInPlace(ys, rs)

	return nil
}

// fill computes coordinates for freqs into dst. offset is added to indices
// reported in errors.
func (c *Calculator) fill(dst []Coordinate, freqs []float64, offset int) error {
	for i, f := range freqs {
		pos, err := c.Position(f)
		if err != nil {
			return fmt.Errorf("index %d: %w", offset+i, err)
		}
		dst[i] = pos
	}
	return nil
}

// Position computes the coordinate of f for reference f0 and distance
// function dist. It is shorthand for New followed by Calculator.Position.
func Position(f, f0 float64, dist distance.Func) (Coordinate, error) {
	c, err := New(f0, dist)
	if err != nil {
		return Coordinate{}, err
	}
	return c.Position(f)
}

// Positions computes coordinates for every frequency in freqs, preserving
// order and length.
func Positions(freqs []float64, f0 float64, dist distance.Func) ([]Coordinate, error) {
	c, err := New(f0, dist)
	if err != nil {
		return nil, err
	}
	return c.Positions(freqs)
}

// scratchBuf holds pooled radius scratch memory for PositionsInto.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) ([]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf.data, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
