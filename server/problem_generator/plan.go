package problemgenerator

import (
	"fmt"
	"math"
)

// Plan describes how candidate pairs are enumerated: the outer loop walks
// Outer, the inner loop walks Inner(outer), Keep filters and Make builds
// the problem. Every randomization level consumes the same Plan.
type Plan struct {
	Outer Range
	Inner func(outer int) Range
	Keep  func(inner, outer int) bool
	Make  func(inner, outer int) Problem

	// Transpose makes FullyShuffled collect with the loops swapped.
	// Only valid when Inner ignores its argument.
	Transpose bool
}

// AdditionPlan pairs a from first with b from second, keeping a >= b.
// The second range drives the outer loop.
func AdditionPlan(first, second Range) (Plan, error) {
	if err := validate(first, second); err != nil {
		return Plan{}, err
	}
	return Plan{
		Outer:     second,
		Inner:     func(int) Range { return first },
		Keep:      func(a, b int) bool { return a >= b },
		Make:      func(a, b int) Problem { return Problem{A: a, B: b} },
		Transpose: true,
	}, nil
}

// DivisionPlan walks denominators in the outer loop for every mode.
//
// In zero-remainder mode numerators span [answer.Min*den, answer.Max*den]
// and only exact quotients >= answer.Min are kept. A zero denominator is
// passed through untouched.
func DivisionPlan(mode DivisionMode, numerator, denominator, answer Range) (Plan, error) {
	makeDiv := func(num, den int) Problem { return Problem{A: num, B: den} }

	switch mode {
	case ZeroRemainder:
		if err := validate(denominator, answer); err != nil {
			return Plan{}, err
		}
		if err := checkProducts(answer, denominator); err != nil {
			return Plan{}, err
		}
		return Plan{
			Outer: denominator,
			Inner: func(den int) Range {
				return Range{Min: answer.Min * den, Max: answer.Max * den}
			},
			Keep: func(num, den int) bool {
				return den == 0 || (num%den == 0 && num/den >= answer.Min)
			},
			Make: makeDiv,
		}, nil
	case Decimal, Mixed:
		if err := validate(numerator, denominator); err != nil {
			return Plan{}, err
		}
		return Plan{
			Outer: denominator,
			Inner: func(int) Range { return numerator },
			Keep:  func(int, int) bool { return true },
			Make:  makeDiv,
		}, nil
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// PlanFor builds the plan matching req.
func PlanFor(req GenerateRequest) (Plan, error) {
	switch req.Operation {
	case Addition:
		return AdditionPlan(req.First, req.Second)
	case Division:
		return DivisionPlan(req.Mode, req.Numerator, req.Denominator, req.Answer)
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
}

// block returns the inner values kept for one outer value, in order.
func (p Plan) block(outer int) []int {
	r := p.Inner(outer)
	var kept []int
	for v := range r.Values() {
		if p.Keep(v, outer) {
			kept = append(kept, v)
		}
	}
	return kept
}

// transposed collects every kept pair with the inner range as the outer loop.
func (p Plan) transposed() []Problem {
	var out []Problem
	inner := p.Inner(p.Outer.Min)
	for v := range inner.Values() {
		for o := range p.Outer.Values() {
			if p.Keep(v, o) {
				out = append(out, p.Make(v, o))
			}
		}
	}
	return out
}

func validate(ranges ...Range) error {
	for _, r := range ranges {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// checkProducts rejects answer and divisor ranges whose numerator bounds
// answer*den would overflow. The product is monotonic in each factor, so
// checking the four corners covers every pair.
func checkProducts(answer, denominator Range) error {
	for _, a := range []int{answer.Min, answer.Max} {
		for _, d := range []int{denominator.Min, denominator.Max} {
			if !mulFits(a, d) {
				return fmt.Errorf("%w: %d * %d", ErrRangeOverflow, a, d)
			}
		}
	}
	return nil
}

func mulFits(a, b int) bool {
	if a == 0 || b == 0 {
		return true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return false
	}
	return (a*b)/b == a
}
