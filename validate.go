package cycloid

import (
	"fmt"
	"math"
	"strings"
)

// Message is a single validation finding.
type Message struct {
	Severity Severity
	Text     string
}

// Validation is the outcome of checking a Candidate. OK is false only when
// an error-severity rule failed; warnings never affect it.
type Validation struct {
	OK       bool
	Messages []Message
}

// Errors returns the error-severity messages in rule order.
func (v Validation) Errors() []Message { return v.filter(SeverityError) }

// Warnings returns the warning-severity messages in rule order.
func (v Validation) Warnings() []Message { return v.filter(SeverityWarning) }

func (v Validation) filter(sev Severity) []Message {
	var out []Message
	for _, m := range v.Messages {
		if m.Severity == sev {
			out = append(out, m)
		}
	}
	return out
}

// Err returns nil when v is OK. Otherwise it returns an error wrapping
// ErrValidation whose text joins the error messages.
func (v Validation) Err() error {
	if v.OK {
		return nil
	}
	errs := v.Errors()
	texts := make([]string, len(errs))
	for i, m := range errs {
		texts[i] = m.Text
	}
	return fmt.Errorf("%s: %w", strings.Join(texts, " "), ErrValidation)
}

// Validation messages. Exported so callers can match on them.
const (
	MsgPinCount    = "N must be an integer ≥ 2."
	MsgPositive    = "All geometry parameters must be positive."
	MsgDenominator = "Eccentricity × Pin Count must be non-zero."
)

// MaxPinCount bounds N so that it converts to int exactly and every
// literal derived from it renders without an exponent.
const MaxPinCount = 10000

// Validate checks c against the geometry rules, in order:
//
//  1. N is an integer between 2 and MaxPinCount.
//  2. Rp, E and R are finite and strictly positive.
//  3. E*N is non-zero.
//  4. If E*N is non-zero and Rp/(E*N) lies in [-1, 1], a warning is added:
//     the arctangent denominator can reach zero for some t.
//
// Rules are independent; each adds at most one message. Rule 3 cannot fail
// once rules 1 and 2 pass but is still checked on its own.
func Validate(c Candidate) Validation {
	v := Validation{OK: true}
	fail := func(text string) {
		v.OK = false
		v.Messages = append(v.Messages, Message{Severity: SeverityError, Text: text})
	}

	if !(c.N >= 2 && c.N <= MaxPinCount) || c.N != math.Trunc(c.N) {
		fail(MsgPinCount)
	}
	if !positive(c.Rp) || !positive(c.E) || !positive(c.R) {
		fail(MsgPositive)
	}
	en := c.E * c.N
	if en == 0 {
		fail(MsgDenominator)
	} else if ratio := c.Rp / en; ratio >= -1 && ratio <= 1 {
		v.Messages = append(v.Messages, Message{
			Severity: SeverityWarning,
			Text: fmt.Sprintf("R_p/(e*N) = %.6g lies in [-1, 1]. The atn denominator may reach zero for some t; "+
				"the CAD equation engine may reject or break the curve.", ratio),
		})
	}
	return v
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
