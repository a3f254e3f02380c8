package cycloid

import "math"

const (
	// DefaultSamples is the number of points SampleCurve evaluates by default.
	DefaultSamples = 2000

	// singularityTolerance is both the magnitude below which the arctangent
	// denominator counts as zero and the value substituted for it.
	singularityTolerance = 1e-9

	// closureGap shortens the parameter range for CAD tools that reject a
	// curve whose end point coincides with its start point.
	closureGap = 1e-6
)

// ClosureRange returns [0, 2π-1e-6], the range to enter in CAD tools that
// refuse an exactly closed parametric curve.
func ClosureRange() (t1, t2 float64) {
	return 0, 2*math.Pi - closureGap
}

// Singularity describes how close a parameter set comes to the removable
// singularity of the arctangent term.
type Singularity struct {
	// Detected is set when at least one sample point had its denominator
	// replaced to avoid dividing by (almost) zero.
	Detected bool
	// Ratio is Rp/(e*N).
	Ratio float64
	// RatioInUnitInterval reports whether Ratio lies in [-1, 1], the range
	// in which the denominator can reach zero.
	RatioInUnitInterval bool
}

// Sample is a numeric evaluation of the disk profile. T, X and Y have equal
// length and share indices.
type Sample struct {
	T           []float64
	X           []float64
	Y           []float64
	Singularity Singularity
}

// Len returns the number of sample points.
func (s Sample) Len() int { return len(s.T) }

// Point returns the i-th sample point.
func (s Sample) Point(i int) Point { return Point{X: s.X[i], Y: s.Y[i]} }

// SampleOption configures a single SampleCurve call.
type SampleOption func(*sampleConfig)

type sampleConfig struct {
	t1, t2  float64
	samples int
}

// WithRange sets the parameter interval. The default is [0, 2π].
func WithRange(t1, t2 float64) SampleOption {
	return func(c *sampleConfig) {
		c.t1, c.t2 = t1, t2
	}
}

// WithSamples sets the number of evenly spaced points, endpoints included.
// Values below 1 select DefaultSamples.
func WithSamples(n int) SampleOption {
	return func(c *sampleConfig) {
		c.samples = n
	}
}

// SampleCurve evaluates the same profile BuildEquations renders, at evenly
// spaced t. Where the arctangent denominator is within 1e-9 of zero it is
// replaced by ±1e-9 (zero counts as positive), which keeps the preview finite
// without touching the text equations. p must satisfy the Params invariants.
func SampleCurve(p Params, opts ...SampleOption) Sample {
	cfg := sampleConfig{t2: 2 * math.Pi, samples: DefaultSamples}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.samples < 1 {
		cfg.samples = DefaultSamples
	}

	var (
		n     = float64(p.N)
		k     = float64(1 - p.N)
		ratio = p.Ratio()
		ts    = linspace(cfg.t1, cfg.t2, cfg.samples)
		xs    = make([]float64, len(ts))
		ys    = make([]float64, len(ts))
		hit   bool
	)
	for i, t := range ts {
		denom, guarded := guardDenominator(ratio - math.Cos(k*t))
		hit = hit || guarded
		phi := math.Atan(math.Sin(k*t) / denom)
		xs[i] = p.Rp*math.Cos(t) - p.R*math.Cos(t+phi) - p.E*math.Cos(n*t)
		ys[i] = -p.Rp*math.Sin(t) + p.R*math.Sin(t+phi) + p.E*math.Sin(n*t)
	}

	return Sample{
		T: ts,
		X: xs,
		Y: ys,
		Singularity: Singularity{
			Detected:            hit,
			Ratio:               ratio,
			RatioInUnitInterval: ratio >= -1 && ratio <= 1,
		},
	}
}

// guardDenominator replaces d by ±singularityTolerance when |d| is within
// the tolerance, keeping the sign of d. Zero is treated as positive.
func guardDenominator(d float64) (float64, bool) {
	if !(math.Abs(d) <= singularityTolerance) {
		return d, false
	}
	if d < 0 {
		return -singularityTolerance, true
	}
	return singularityTolerance, true
}

// linspace returns n evenly spaced values over [start, stop]. The last value
// is exactly stop.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
