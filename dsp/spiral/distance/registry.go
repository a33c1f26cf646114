package distance

import (
	"fmt"
	"strings"
)

// Type identifies a distance function family.
type Type int

const (
	TypeRational Type = iota
	TypeLinear
	TypeBlend
)

var typeNames = map[Type]string{
	TypeRational: "rational",
	TypeLinear:   "linear",
	TypeBlend:    "blend",
}

// String returns the lowercase family name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a family name. Matching is case-insensitive and accepts
// "comb" and "rational-linear" as aliases for blend.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rational":
		return TypeRational, nil
	case "linear":
		return TypeLinear, nil
	case "blend", "comb", "rational-linear":
		return TypeBlend, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Option configures [New].
type Option func(*config)

type config struct {
	fEnd float64
	lin  float64
}

func defaultConfig() config {
	return config{lin: 0.5}
}

// WithEnd sets the end frequency used by the linear and blend families.
func WithEnd(fEnd float64) Option {
	return func(c *config) {
		c.fEnd = fEnd
	}
}

// WithLinearity sets the blend weight of the linear component.
func WithLinearity(lin float64) Option {
	return func(c *config) {
		c.lin = lin
	}
}

// New builds a validated distance function of the given family.
//
// The linear and blend families require [WithEnd]. The blend weight defaults
// to 0.5 when [WithLinearity] is not given. Options a family does not use
// are ignored.
func New(t Type, f0 float64, opts ...Option) (Func, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateReference(f0); err != nil {
		return nil, err
	}

	switch t {
	case TypeRational:
		return NewRational(f0), nil
	case TypeLinear:
		if err := validateEnd(cfg.fEnd); err != nil {
			return nil, err
		}
		return NewLinear(f0, cfg.fEnd), nil
	case TypeBlend:
		if err := validateEnd(cfg.fEnd); err != nil {
			return nil, err
		}
		if err := validateLinearity(cfg.lin); err != nil {
			return nil, err
		}
		return NewRationalLinearComb(f0, cfg.fEnd, cfg.lin), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
}
