package cycloid

import (
	"fmt"
	"strconv"
)

// Equations holds the right-hand sides of a parametric curve x(t), y(t) as
// text for a CAD equation editor. The only free symbol is t.
type Equations struct {
	X string
	Y string
}

// BuildEquations renders the cycloidal disk profile of p:
//
//	φ(t) = atn(sin((1-N)t) / (Rp/(eN) - cos((1-N)t)))
//	x(t) = Rp cos(t) - r cos(t + φ(t)) - e cos(Nt)
//	y(t) = -Rp sin(t) + r sin(t + φ(t)) + e sin(Nt)
//
// Arctangent is spelled atn, the name CAD equation engines accept. Every
// literal is computed once; reals are rendered with FormatNumber and the
// integer terms N and 1-N exactly. p must satisfy the
// Params invariants; BuildEquations does not validate.
func BuildEquations(p Params) Equations {
	var (
		rp    = FormatNumber(p.Rp)
		e     = FormatNumber(p.E)
		r     = FormatNumber(p.R)
		n     = strconv.Itoa(p.N)
		k     = strconv.Itoa(1 - p.N)
		ratio = FormatNumber(p.Ratio())
	)
	phi := fmt.Sprintf("atn(sin(%s*t)/(%s-cos(%s*t)))", k, ratio, k)
	return Equations{
		X: fmt.Sprintf("(%s*cos(t)) - (%s*cos(t+%s)) - (%s*cos(%s*t))", rp, r, phi, e, n),
		Y: fmt.Sprintf("(-%s*sin(t)) + (%s*sin(t+%s)) + (%s*sin(%s*t))", rp, r, phi, e, n),
	}
}
