package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/distance"
	"github.com/hupe1980/dynvec/matrix"
	"github.com/urfave/cli/v2"
)

type runner struct {
	logger  *dynvec.Logger
	metrics dynvec.MetricsCollector
	// stats is set only when --stats is given; it backs metrics then.
	stats  *dynvec.BasicMetricsCollector
	errOut io.Writer
}

func newApp(out, errOut io.Writer) *cli.App {
	r := &runner{
		logger:  dynvec.NoopLogger(),
		metrics: dynvec.NoopMetricsCollector{},
		errOut:  errOut,
	}

	return &cli.App{
		Name:      "dynvec",
		Usage:     "bounds-checked vector and matrix arithmetic",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "minimum log level (debug, info, warn, error)",
				EnvVars: []string{"DYNVEC_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "log output format (text, json)",
				EnvVars: []string{"DYNVEC_LOG_FORMAT"},
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print operation counters on exit",
			},
		},
		Before: r.before,
		After:  r.after,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "elementwise sum of two vectors",
				ArgsUsage: "A B",
				Action: func(c *cli.Context) error {
					return r.binary(c, "add", (*dynvec.Vector[float64]).Add)
				},
			},
			{
				Name:      "sub",
				Usage:     "elementwise difference of two vectors",
				ArgsUsage: "A B",
				Action: func(c *cli.Context) error {
					return r.binary(c, "sub", (*dynvec.Vector[float64]).Sub)
				},
			},
			{
				Name:      "dot",
				Usage:     "dot product of two vectors",
				ArgsUsage: "A B",
				Action: func(c *cli.Context) error {
					return r.reduce(c, "dot", distance.Dot[float64])
				},
			},
			{
				Name:      "dist",
				Usage:     "distance between two vectors",
				ArgsUsage: "A B",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "metric",
						Value: "l2",
						Usage: "distance metric (l2, dot)",
					},
				},
				Action: func(c *cli.Context) error {
					m, err := distance.ParseMetric(c.String("metric"))
					if err != nil {
						return err
					}
					fn, err := distance.Provider[float64](m)
					if err != nil {
						return err
					}
					return r.reduce(c, "dist", fn)
				},
			},
			{
				Name:      "scalar",
				Usage:     "apply a scalar operation to every element",
				ArgsUsage: "A",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "op",
						Value: "mul",
						Usage: "scalar operation (add, sub, mul)",
					},
					&cli.Float64Flag{
						Name:     "by",
						Usage:    "scalar operand",
						Required: true,
					},
				},
				Action: r.scalar,
			},
			{
				Name:      "equal",
				Usage:     "report whether two vectors are equal",
				ArgsUsage: "A B",
				Action:    r.equal,
			},
			{
				Name:      "matvec",
				Usage:     "multiply a matrix by a vector",
				ArgsUsage: "M V",
				Action:    r.matvec,
			},
			{
				Name:      "matmul",
				Usage:     "multiply two matrices",
				ArgsUsage: "M N",
				Action:    r.matmul,
			},
		},
	}
}

func (r *runner) before(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}

	switch c.String("log-format") {
	case "text":
		r.logger = dynvec.NewTextLogger(r.errOut, level)
	case "json":
		r.logger = dynvec.NewJSONLogger(r.errOut, level)
	default:
		return fmt.Errorf("invalid log format %q", c.String("log-format"))
	}

	if c.Bool("stats") {
		r.stats = &dynvec.BasicMetricsCollector{}
		r.metrics = r.stats
	}
	return nil
}

func (r *runner) after(c *cli.Context) error {
	if r.stats == nil {
		return nil
	}
	s := r.stats.GetStats()
	fmt.Fprintf(c.App.Writer, "ops=%d errors=%d avg=%s\n",
		s.OpCount, s.OpErrors, time.Duration(s.AvgNanos))
	return nil
}

// record logs and counts the outcome of op.
func (r *runner) record(c *cli.Context, op string, size int, start time.Time, err error) error {
	r.metrics.RecordOp(op, time.Since(start), err)
	r.logger.LogOp(c.Context, op, size, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *runner) twoArgs(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", fmt.Errorf("%s: expected 2 arguments, got %d", c.Command.Name, c.NArg())
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func (r *runner) twoVectors(c *cli.Context) (*dynvec.Vector[float64], *dynvec.Vector[float64], error) {
	sa, sb, err := r.twoArgs(c)
	if err != nil {
		return nil, nil, err
	}
	a, err := parseVector(sa)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: first operand: %w", c.Command.Name, err)
	}
	b, err := parseVector(sb)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: second operand: %w", c.Command.Name, err)
	}
	return a, b, nil
}

func (r *runner) binary(c *cli.Context, op string, fn func(a, b *dynvec.Vector[float64]) (*dynvec.Vector[float64], error)) error {
	a, b, err := r.twoVectors(c)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := fn(a, b)
	if err := r.record(c, op, a.Len(), start, err); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, res)
	return nil
}

func (r *runner) reduce(c *cli.Context, op string, fn func(a, b *dynvec.Vector[float64]) (float64, error)) error {
	a, b, err := r.twoVectors(c)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := fn(a, b)
	if err := r.record(c, op, a.Len(), start, err); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, formatScalar(res))
	return nil
}

func (r *runner) scalar(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("scalar: expected 1 argument, got %d", c.NArg())
	}
	v, err := parseVector(c.Args().First())
	if err != nil {
		return fmt.Errorf("scalar: %w", err)
	}

	by := c.Float64("by")
	start := time.Now()
	var res *dynvec.Vector[float64]
	switch op := c.String("op"); op {
	case "add":
		res = v.AddScalar(by)
	case "sub":
		res = v.SubScalar(by)
	case "mul":
		res = v.MulScalar(by)
	default:
		return fmt.Errorf("scalar: unknown op %q", op)
	}
	if err := r.record(c, "scalar", v.Len(), start, nil); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, res)
	return nil
}

func (r *runner) equal(c *cli.Context) error {
	a, b, err := r.twoVectors(c)
	if err != nil {
		return err
	}
	start := time.Now()
	eq := a.Equal(b)
	if err := r.record(c, "equal", a.Len(), start, nil); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, eq)
	return nil
}

func (r *runner) matvec(c *cli.Context) error {
	sm, sv, err := r.twoArgs(c)
	if err != nil {
		return err
	}
	m, err := parseMatrix(sm)
	if err != nil {
		return fmt.Errorf("matvec: matrix: %w", err)
	}
	v, err := parseVector(sv)
	if err != nil {
		return fmt.Errorf("matvec: vector: %w", err)
	}

	start := time.Now()
	res, err := m.MulVec(v)
	if err := r.record(c, "matvec", m.Size(), start, err); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, res)
	return nil
}

func (r *runner) matmul(c *cli.Context) error {
	sa, sb, err := r.twoArgs(c)
	if err != nil {
		return err
	}
	var ms [2]*matrix.Matrix[float64]
	for i, s := range []string{sa, sb} {
		m, err := parseMatrix(s)
		if err != nil {
			return fmt.Errorf("matmul: operand %d: %w", i+1, err)
		}
		ms[i] = m
	}

	start := time.Now()
	res, err := ms[0].Mul(ms[1])
	if err := r.record(c, "matmul", ms[0].Size(), start, err); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, res)
	return nil
}
