package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cast"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spiral/dsp/core"
	"github.com/cwbudde/algo-spiral/dsp/spiral"
	"github.com/cwbudde/algo-spiral/dsp/spiral/distance"
	"github.com/cwbudde/algo-spiral/internal/logging"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"

	demoFrequency = 200.0
)

const (
	f0Flag       = "f0"
	distanceFlag = "distance"
	endFlag      = "end"
	linFlag      = "lin"
	checkFlag    = "check"
	strictFlag   = "strict"
	formatFlag   = "format"
	debugFlag    = "debug"
)

// newFlags returns the command's flag definitions. Flags hold parse state
// and must not be shared between commands.
func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:    f0Flag,
			Usage:   "reference frequency in Hz, drawn at 12 o'clock with radius 1",
			Value:   100,
			Sources: cli.EnvVars("SPIRAL_F0"),
		},
		&cli.StringFlag{
			Name:    distanceFlag,
			Usage:   "distance function [rational, linear, blend]",
			Value:   distance.TypeRational.String(),
			Sources: cli.EnvVars("SPIRAL_DISTANCE"),
		},
		&cli.FloatFlag{
			Name:    endFlag,
			Usage:   "end frequency in Hz for the linear and blend distance functions",
			Sources: cli.EnvVars("SPIRAL_END"),
		},
		&cli.FloatFlag{
			Name:    linFlag,
			Usage:   "weight of the linear component for the blend distance function",
			Value:   0.5,
			Sources: cli.EnvVars("SPIRAL_LIN"),
		},
		&cli.BoolFlag{
			Name:  checkFlag,
			Usage: "verify that the distance function is 1 at f0",
		},
		&cli.BoolFlag{
			Name:  strictFlag,
			Usage: "reject radii outside (0, 1]",
		},
		&cli.StringFlag{
			Name:    formatFlag,
			Usage:   "output format [table, json, yaml]",
			Value:   formatTable,
			Sources: cli.EnvVars("SPIRAL_FORMAT"),
		},
		&cli.BoolFlag{
			Name:  debugFlag,
			Usage: "print verbose logs",
		},
	}
}

// point is one output row.
type point struct {
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Octaves   float64 `json:"octaves" yaml:"octaves"`
	Radius    float64 `json:"radius" yaml:"radius"`
	Theta     float64 `json:"theta" yaml:"theta"`
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "spiralpos",
		Usage:     "place frequencies on a spiral score",
		ArgsUsage: "[frequency ...]",
		Flags:     newFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool(debugFlag) {
				slog.SetDefault(logging.NewCLILogger(cmd.Root().ErrWriter, "debug", false))
			}
			return ctx, nil
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	freqs, err := parseFrequencies(cmd.Args().Slice())
	if err != nil {
		return err
	}
	if len(freqs) == 0 {
		slog.Debug("no frequencies given, running demo", "frequency", demoFrequency)
		freqs = []float64{demoFrequency}
	}

	format := strings.ToLower(cmd.String(formatFlag))
	if format == "yml" {
		format = formatYAML
	}
	if format != formatTable && format != formatJSON && format != formatYAML {
		return fmt.Errorf("unsupported format %q", format)
	}

	calc, err := newCalculator(cmd)
	if err != nil {
		return err
	}

	coords, err := calc.PositionsContext(ctx, freqs)
	if err != nil {
		return fmt.Errorf("computing positions: %w", err)
	}

	points := make([]point, len(freqs))
	for i, f := range freqs {
		points[i] = point{
			Frequency: f,
			Octaves:   spiral.Octaves(f, calc.Reference()),
			Radius:    calc.Distance().Distance(f),
			Theta:     core.WrapAngle(spiral.Angle(f, calc.Reference())),
			X:         coords[i].X,
			Y:         coords[i].Y,
		}
	}

	return writePoints(cmd.Root().Writer, format, points)
}

func newCalculator(cmd *cli.Command) (*spiral.Calculator, error) {
	f0 := cmd.Float(f0Flag)

	typ, err := distance.ParseType(cmd.String(distanceFlag))
	if err != nil {
		return nil, err
	}

	var distOpts []distance.Option
	if cmd.IsSet(endFlag) {
		distOpts = append(distOpts, distance.WithEnd(cmd.Float(endFlag)))
	}
	distOpts = append(distOpts, distance.WithLinearity(cmd.Float(linFlag)))

	dist, err := distance.New(typ, f0, distOpts...)
	if err != nil {
		return nil, err
	}

	var opts []spiral.Option
	if cmd.Bool(checkFlag) {
		opts = append(opts, spiral.WithReferenceCheck(0))
	}
	if cmd.Bool(strictFlag) {
		opts = append(opts, spiral.WithStrictRadius())
	}

	slog.Debug("calculator configured", "f0", f0, "distance", typ)

	return spiral.New(f0, dist, opts...)
}

// parseFrequencies accepts one frequency per argument or comma-separated
// lists.
func parseFrequencies(args []string) ([]float64, error) {
	var freqs []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			f, err := cast.ToFloat64E(field)
			if err != nil {
				return nil, fmt.Errorf("invalid frequency %q: %w", field, err)
			}
			freqs = append(freqs, f)
		}
	}
	return freqs, nil
}

func writePoints(w io.Writer, format string, points []point) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(points); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(w, points)
	}
}

func writeTable(w io.Writer, points []point) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tOctaves\tRadius\tTheta [rad]\tX\tY\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------------\t-------\t------\t-----------\t-\t-\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, p := range points {
		if _, err := fmt.Fprintf(tw, "%.4f\t%.4f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			p.Frequency,
			p.Octaves,
			p.Radius,
			p.Theta,
			zero(p.X),
			zero(p.Y),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	return tw.Flush()
}

// zero rounds values that would print as -0.000000 to 0.
func zero(v float64) float64 {
	if v > -5e-7 && v < 5e-7 {
		return 0
	}
	return v
}
