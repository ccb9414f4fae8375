package problemgenerator

import "testing"

func TestMixedAnswer(t *testing.T) {
	cases := []struct {
		num, den int
		want     Answer
		text     string
		latex    string
	}{
		{7, 3, Answer{Kind: AnswerMixed, Whole: 2, Numerator: 1, Denominator: 3}, "2 1/3", `2\frac{1}{3}`},
		{6, 3, Answer{Kind: AnswerWhole, Whole: 2}, "2", "2"},
		{0, 5, Answer{Kind: AnswerWhole}, "0", "0"},
		{5, 0, Answer{Kind: AnswerUndefined}, "Undefined", `\text{Undefined}`},
		{0, 0, Answer{Kind: AnswerIndeterminate}, "Indeterminate", `\text{Indeterminate}`},
		{2, 5, Answer{Kind: AnswerFraction, Numerator: 2, Denominator: 5}, "2/5", `\frac{2}{5}`},
		{-7, 3, Answer{Kind: AnswerMixed, Whole: -3, Numerator: -1, Denominator: 3}, "-3 -1/3", `-3\frac{-1}{3}`},
	}

	for _, tc := range cases {
		got := MixedAnswer(tc.num, tc.den)
		if got != tc.want {
			t.Errorf("MixedAnswer(%d, %d) = %+v, want %+v", tc.num, tc.den, got, tc.want)
		}
		if got.String() != tc.text {
			t.Errorf("MixedAnswer(%d, %d).String() = %q, want %q", tc.num, tc.den, got.String(), tc.text)
		}
		if got.LaTeX() != tc.latex {
			t.Errorf("MixedAnswer(%d, %d).LaTeX() = %q, want %q", tc.num, tc.den, got.LaTeX(), tc.latex)
		}
	}
}

func TestDecimalAnswer(t *testing.T) {
	cases := []struct {
		num, den int
		want     string
	}{
		{7, 2, "3.50"},
		{0, 0, "Indeterminate"},
		{5, 0, "Undefined"},
		{1, 3, "0.33"},
		{2, 3, "0.67"},
		{10, 1, "10.00"},
		{1, 8, "0.13"}, // exact binary tie rounds away from zero
		{3, 8, "0.38"},
		{-7, 2, "-3.50"},
		{-1, 8, "-0.13"},
		{1, -1000, "-0.00"},
		{0, 7, "0.00"},
		{0, -7, "0.00"},
		{100, 7, "14.29"},
	}

	for _, tc := range cases {
		if got := DecimalAnswer(tc.num, tc.den).String(); got != tc.want {
			t.Errorf("DecimalAnswer(%d, %d) = %q, want %q", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestQuotientAnswer(t *testing.T) {
	cases := []struct {
		num, den int
		want     string
	}{
		{12, 4, "3"},
		{0, 9, "0"},
		{0, 0, "Indeterminate"},
		{8, 0, "Undefined"},
	}
	for _, tc := range cases {
		if got := QuotientAnswer(tc.num, tc.den).String(); got != tc.want {
			t.Errorf("QuotientAnswer(%d, %d) = %q, want %q", tc.num, tc.den, got, tc.want)
		}
	}
}
