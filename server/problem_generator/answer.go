package problemgenerator

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

type AnswerKind string

const (
	AnswerWhole         AnswerKind = "whole"
	AnswerDecimal       AnswerKind = "decimal"
	AnswerFraction      AnswerKind = "fraction"
	AnswerMixed         AnswerKind = "mixed"
	AnswerUndefined     AnswerKind = "undefined"
	AnswerIndeterminate AnswerKind = "indeterminate"
)

// Answer is a division result. Division by zero is a regular answer
// (Undefined or Indeterminate), never an error.
type Answer struct {
	Kind        AnswerKind `json:"kind"`
	Whole       int        `json:"whole,omitempty"`
	Numerator   int        `json:"numerator,omitempty"`
	Denominator int        `json:"denominator,omitempty"`
	Decimal     string     `json:"decimal,omitempty"`
}

// String renders the answer as plain text, e.g. "2 1/3".
func (a Answer) String() string {
	switch a.Kind {
	case AnswerWhole:
		return strconv.Itoa(a.Whole)
	case AnswerDecimal:
		return a.Decimal
	case AnswerFraction:
		return fmt.Sprintf("%d/%d", a.Numerator, a.Denominator)
	case AnswerMixed:
		return fmt.Sprintf("%d %d/%d", a.Whole, a.Numerator, a.Denominator)
	case AnswerUndefined:
		return "Undefined"
	case AnswerIndeterminate:
		return "Indeterminate"
	}
	return ""
}

// LaTeX renders the answer for MathJax.
func (a Answer) LaTeX() string {
	switch a.Kind {
	case AnswerFraction:
		return fmt.Sprintf(`\frac{%d}{%d}`, a.Numerator, a.Denominator)
	case AnswerMixed:
		return fmt.Sprintf(`%d\frac{%d}{%d}`, a.Whole, a.Numerator, a.Denominator)
	case AnswerUndefined, AnswerIndeterminate:
		return `\text{` + a.String() + `}`
	}
	return a.String()
}

func zeroDivisor(num int) Answer {
	if num == 0 {
		return Answer{Kind: AnswerIndeterminate}
	}
	return Answer{Kind: AnswerUndefined}
}

// DecimalAnswer is num/den with exactly two fractional digits.
func DecimalAnswer(num, den int) Answer {
	if den == 0 {
		return zeroDivisor(num)
	}
	return Answer{Kind: AnswerDecimal, Decimal: fixed2(float64(num) / float64(den))}
}

// QuotientAnswer is the exact integer quotient of a zero-remainder problem.
func QuotientAnswer(num, den int) Answer {
	if den == 0 {
		return zeroDivisor(num)
	}
	return Answer{Kind: AnswerWhole, Whole: num / den}
}

// MixedAnswer splits num/den into a whole part and a proper fraction.
// The whole part is floored, the remainder keeps the sign of num.
func MixedAnswer(num, den int) Answer {
	if den == 0 {
		return zeroDivisor(num)
	}
	if num == 0 {
		return Answer{Kind: AnswerWhole}
	}

	whole := floorDiv(num, den)
	rem := num % den
	switch {
	case rem == 0:
		return Answer{Kind: AnswerWhole, Whole: whole}
	case whole == 0:
		return Answer{Kind: AnswerFraction, Numerator: rem, Denominator: den}
	}
	return Answer{Kind: AnswerMixed, Whole: whole, Numerator: rem, Denominator: den}
}

func floorDiv(num, den int) int {
	q := num / den
	if num%den != 0 && (num < 0) != (den < 0) {
		q--
	}
	return q
}

// fixed2 formats x with two fractional digits. Rounding works on the exact
// binary value of x and resolves ties away from zero; a negative x keeps
// its sign even when it rounds to zero.
func fixed2(x float64) string {
	r := new(big.Rat).SetFloat64(x)
	neg := r.Sign() < 0
	r.Abs(r)
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Quo(r.Num(), r.Denom()).String()

	if len(cents) < 3 {
		cents = strings.Repeat("0", 3-len(cents)) + cents
	}
	s := cents[:len(cents)-2] + "." + cents[len(cents)-2:]
	if neg {
		s = "-" + s
	}
	return s
}
