// Command numsafe sanitizes numeric values given on the command line.
//
//	numsafe -policy safe vec3 NaN 1 Inf
//	numsafe -check color 2 -0.5 0.5 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zeusync/numsafe/internal/core/adapter"
	"github.com/zeusync/numsafe/internal/core/observability/log"
	"github.com/zeusync/numsafe/pkg/numeric"
	"github.com/zeusync/numsafe/pkg/validation"
)

var (
	ErrUsage       = errors.New("usage")
	ErrUnknownKind = errors.New("unknown value kind")
	ErrArity       = errors.New("wrong number of components")
)

type options struct {
	policy  validation.Policy
	workers int
	check   bool
	degrees bool
	report  adapter.Reporter
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, ErrUsage):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("numsafe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: numsafe [flags] angle|vec2|vec3|color <components...>")
		fs.PrintDefaults()
	}

	opts := options{policy: validation.Safe(), report: adapter.NopReporter{}}
	fs.TextVar(&opts.policy, "policy", validation.Safe(), "policy preset or <invalid>/<range> pair")
	fs.IntVar(&opts.workers, "workers", 4, "concurrent sanitizers for batches")
	fs.BoolVar(&opts.check, "check", false, "report status only, never modify values")
	fs.BoolVar(&opts.degrees, "degrees", false, "read angles in degrees")
	verbose := fs.Bool("verbose", false, "log sanitizer warnings to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return ErrUsage
	}

	if *verbose {
		logger := log.New(log.LevelDebug)
		defer func() { _ = logger.Sync() }()
		opts.report = adapter.LogReporter(logger)
	}

	components, err := parseComponents(fs.Args()[1:])
	if err != nil {
		return err
	}

	switch kind := strings.ToLower(fs.Arg(0)); kind {
	case "angle":
		build := func(c []float64) numeric.Angle { return numeric.FromRadians(c[0]) }
		if opts.degrees {
			build = func(c []float64) numeric.Angle { return numeric.FromDegrees(c[0]) }
		}
		return process(ctx, stdout, validation.Angles, 1, build, components, opts)
	case "vec2":
		return process(ctx, stdout, validation.Vec2s, 2, func(c []float64) numeric.Vec2 {
			return numeric.NewVec2(c[0], c[1])
		}, components, opts)
	case "vec3":
		return process(ctx, stdout, validation.Vec3s, 3, func(c []float64) numeric.Vec3 {
			return numeric.NewVec3(c[0], c[1], c[2])
		}, components, opts)
	case "color":
		return process(ctx, stdout, validation.Colors, 4, func(c []float64) numeric.ColorF {
			return numeric.NewColorFA(c[0], c[1], c[2], c[3])
		}, components, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// parseComponents accepts anything strconv does, including NaN, Inf and -Inf.
func parseComponents(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func process[T any](
	ctx context.Context,
	w io.Writer,
	s *validation.Sanitizer[T],
	arity int,
	build func([]float64) T,
	components []float64,
	opts options,
) error {
	if len(components)%arity != 0 {
		return fmt.Errorf("%w: %s takes %d per value, got %d", ErrArity, s.Name(), arity, len(components))
	}

	values := make([]T, 0, len(components)/arity)
	for i := 0; i < len(components); i += arity {
		values = append(values, build(components[i:i+arity]))
	}

	guard := adapter.NewGuard(s, opts.policy, opts.report)

	if opts.check {
		for _, v := range values {
			guard.Check(v)
			fmt.Fprintf(w, "%v %s\n", v, s.Check(v))
		}
		return nil
	}

	sanitized, err := guard.ApplyAll(ctx, values, opts.workers)
	if err != nil {
		return err
	}
	for i, v := range values {
		fmt.Fprintf(w, "%v -> %v %s\n", v, sanitized[i], s.Check(v))
	}
	return nil
}
