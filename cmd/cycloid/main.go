// Command cycloid builds parametric equations for a cycloidal drive disk.
//
// Usage:
//
//	cycloid [flags]
//
// Flags:
//
//	-rp float      Pin circle radius R_p in mm (default 50)
//	-e float       Eccentricity e in mm (default 2.5)
//	-r float       Pin radius r in mm (default 2)
//	-n float       Number of pins N, an integer >= 2 (default 10)
//	-t1 float      Start of the sampled parameter range (default 0)
//	-t2 float      End of the sampled parameter range (default 2*pi)
//	-closure       Sample up to 2*pi - 1e-6, for CAD tools that reject closed curves
//	-samples int   Number of preview points (default 2000)
//	-json          Print the result as JSON instead of plain equations
//	-out string    Also save the JSON result to this path
//	-plot          Print a terminal preview of the curve
//	-tips          Print CAD equation-driven-curve tips
//	-tui           Open the interactive form
//
// The two expressions are printed one per line, right-hand sides only, ready
// to paste into a parametric equation driven curve.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"github.com/fwojciec/cycloid"
	bt "github.com/fwojciec/cycloid/bubbletea"
	"github.com/fwojciec/cycloid/goldmark"
	cycloidjson "github.com/fwojciec/cycloid/json"
	"github.com/fwojciec/cycloid/plot"
)

const (
	plotCols = 60
	plotRows = 30
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "cycloid: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	candidate cycloid.Candidate
	t1, t2    float64
	samples   int
	json      bool
	out       string
	plot      bool
	tips      bool
	tui       bool
}

func (c config) sampleOptions() []cycloid.SampleOption {
	return []cycloid.SampleOption{
		cycloid.WithRange(c.t1, c.t2),
		cycloid.WithSamples(c.samples),
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	d := cycloid.DefaultCandidate()
	fs := flag.NewFlagSet("cycloid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		rp      = fs.Float64("rp", d.Rp, "Pin circle radius R_p in mm")
		e       = fs.Float64("e", d.E, "Eccentricity e in mm")
		r       = fs.Float64("r", d.R, "Pin radius r in mm")
		n       = fs.Float64("n", d.N, "Number of pins N, an integer >= 2")
		t1      = fs.Float64("t1", 0, "Start of the sampled parameter range")
		t2      = fs.Float64("t2", 2*math.Pi, "End of the sampled parameter range")
		closure = fs.Bool("closure", false, "Sample up to 2*pi - 1e-6, for CAD tools that reject closed curves")
		samples = fs.Int("samples", cycloid.DefaultSamples, "Number of preview points")
		asJSON  = fs.Bool("json", false, "Print the result as JSON instead of plain equations")
		out     = fs.String("out", "", "Also save the JSON result to this path")
		plotF   = fs.Bool("plot", false, "Print a terminal preview of the curve")
		tips    = fs.Bool("tips", false, "Print CAD equation-driven-curve tips")
		tui     = fs.Bool("tui", false, "Open the interactive form")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config{
		candidate: cycloid.Candidate{Rp: *rp, E: *e, R: *r, N: *n},
		t1:        *t1,
		t2:        *t2,
		samples:   *samples,
		json:      *asJSON,
		out:       *out,
		plot:      *plotF,
		tips:      *tips,
		tui:       *tui,
	}
	if *closure {
		cfg.t1, cfg.t2 = cycloid.ClosureRange()
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if cfg.tui {
		return runTUI(cfg, stdout)
	}
	return generate(cfg, stdout, stderr)
}

// generate runs one request and writes its output. Warnings go to stderr;
// rejected input is returned as an error after its messages are reported.
func generate(cfg config, stdout, stderr io.Writer) error {
	theme := cycloid.DefaultTheme()
	res := cycloid.Generate(cfg.candidate, cfg.sampleOptions()...)

	for _, w := range res.Advisories() {
		fmt.Fprintf(stderr, "cycloid: warning: %s\n", w)
	}

	if cfg.out != "" {
		if err := cycloidjson.Save(cfg.out, res); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
	}

	if cfg.json {
		data, err := cycloidjson.MarshalResult(res)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Fprintf(stdout, "%s\n", data)
	}

	if err := res.Validation.Err(); err != nil {
		return err
	}

	if !cfg.json {
		fmt.Fprintln(stdout, res.Equations.X)
		fmt.Fprintln(stdout, res.Equations.Y)
	}
	if cfg.plot {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, plot.Render(*res.Sample, plotCols, plotRows, theme))
	}
	if cfg.tips {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, goldmark.Render(cycloid.Tips, 80, theme))
	}
	return nil
}

// runTUI opens the form and prints the last generated equations on exit so
// they can be copied from the normal screen.
func runTUI(cfg config, stdout io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := bt.New(cycloid.DefaultTheme(), bt.Config{
		Defaults:      cfg.candidate,
		SampleOptions: cfg.sampleOptions(),
	})
	final, err := bt.Run(ctx, m)
	if err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	if res := final.Result(); res != nil && res.Equations != nil {
		fmt.Fprintln(stdout, res.Equations.X)
		fmt.Fprintln(stdout, res.Equations.Y)
	}
	return nil
}
