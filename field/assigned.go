package field

import (
	"github.com/consensys/gnark/constraint"
)

// Assigned is a value written into an advice cell: either an already evaluated
// element, or a numerator/denominator pair whose quotient is deferred so that
// all pending fractions of a build can be resolved with a single batch
// inversion. The zero value is the evaluated zero element.
type Assigned struct {
	num     constraint.Element
	den     constraint.Element
	pending bool
}

// Trivial wraps an already evaluated element.
func Trivial(v constraint.Element) Assigned {
	return Assigned{num: v}
}

// Rational wraps a fraction num/den pending batch inversion.
func Rational(num, den constraint.Element) Assigned {
	return Assigned{num: num, den: den, pending: true}
}

// IsPending reports whether the value is still an unresolved fraction.
func (a Assigned) IsPending() bool {
	return a.pending
}

// Numerator returns the numerator, or the evaluated element if not pending.
func (a Assigned) Numerator() constraint.Element {
	return a.num
}

// Denominator returns the denominator; ok is false if the value is not a
// pending fraction.
func (a Assigned) Denominator() (constraint.Element, bool) {
	return a.den, a.pending
}

// Evaluated returns the evaluated element.
//
// Panics if the value is a pending fraction; the batch-inversion pass must run
// before any evaluated read.
func (a Assigned) Evaluated() constraint.Element {
	if a.pending {
		panic("trying to get value of a fraction before batch inversion")
	}
	return a.num
}

// Resolve overwrites a pending fraction with its evaluated quotient. Called by
// the batch-inversion pass once per pending value.
func (a *Assigned) Resolve(v constraint.Element) {
	a.num = v
	a.den = constraint.Element{}
	a.pending = false
}
