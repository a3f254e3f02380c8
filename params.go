// Package cycloid derives the parametric profile of a cycloidal drive disk
// from its pin geometry, as equation text for CAD tools and as sampled points
// for preview.
package cycloid

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is a validated set of cycloidal disk geometry parameters.
// All lengths are in millimetres. Obtain one from Candidate.Params so the
// invariants (Rp, E, R > 0 and N >= 2) are known to hold.
type Params struct {
	Rp float64 // pin circle radius
	E  float64 // eccentricity
	R  float64 // pin radius
	N  int     // pin count
}

// Ratio returns Rp/(E*N), the constant term of the arctangent denominator.
func (p Params) Ratio() float64 {
	return p.Rp / (p.E * float64(p.N))
}

// Candidate holds raw, possibly invalid, geometry input. N is a float so
// that non-integer pin counts can be reported rather than silently truncated.
type Candidate struct {
	Rp float64
	E  float64
	R  float64
	N  float64
}

// DefaultCandidate returns the values a form shows before the first submission.
func DefaultCandidate() Candidate {
	return Candidate{Rp: 50, E: 2.5, R: 2, N: 10}
}

// Params validates c and converts it to Params. The returned error wraps
// ErrValidation and lists every failed rule. Warnings do not cause an error.
func (c Candidate) Params() (Params, error) {
	if err := Validate(c).Err(); err != nil {
		return Params{}, err
	}
	return Params{Rp: c.Rp, E: c.E, R: c.R, N: int(c.N)}, nil
}

// ParseCandidate parses text form fields into a Candidate. Surrounding
// whitespace is ignored.
func ParseCandidate(rp, e, r, n string) (Candidate, error) {
	var c Candidate
	fields := []struct {
		name string
		text string
		dst  *float64
	}{
		{"R_p", rp, &c.Rp},
		{"e", e, &c.E},
		{"r", r, &c.R},
		{"N", n, &c.N},
	}
	for _, f := range fields {
		s := strings.TrimSpace(f.text)
		if s == "" {
			return Candidate{}, fmt.Errorf("%s is required: %w", f.name, ErrValidation)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Candidate{}, fmt.Errorf("%s must be a number, got %q: %w", f.name, s, ErrValidation)
		}
		*f.dst = v
	}
	return c, nil
}
