package cycloid

// SingularityAdvisory is reported when sampling had to replace a near-zero
// arctangent denominator.
const SingularityAdvisory = "Singularity detected in the atn argument for some t. " +
	"In the CAD tool, consider adjusting parameters or using t2 = 2*pi - 1e-6."

// Result is the outcome of one request: the validation verdict and, when
// the input passed, the equations and a preview sample.
type Result struct {
	Candidate  Candidate
	Validation Validation
	Equations  *Equations // nil unless Validation.OK
	Sample     *Sample    // nil unless Validation.OK
}

// Generate validates c and, only if it passes, builds the equations and
// samples the curve. Generate never fails: rejected input is reported through
// Result.Validation with Equations and Sample left nil.
func Generate(c Candidate, opts ...SampleOption) Result {
	res := Result{Candidate: c, Validation: Validate(c)}
	if !res.Validation.OK {
		return res
	}
	p := Params{Rp: c.Rp, E: c.E, R: c.R, N: int(c.N)}
	eq := BuildEquations(p)
	s := SampleCurve(p, opts...)
	res.Equations = &eq
	res.Sample = &s
	return res
}

// Advisories returns the non-blocking warnings to show alongside the output:
// validation warnings first, then the sampler's singularity notice.
func (r Result) Advisories() []string {
	var out []string
	for _, m := range r.Validation.Warnings() {
		out = append(out, m.Text)
	}
	if r.Sample != nil && r.Sample.Singularity.Detected {
		out = append(out, SingularityAdvisory)
	}
	return out
}
