package problemgenerator

import "fmt"

// FormattedProblem is one worksheet line. Answer is nil for addition.
type FormattedProblem struct {
	Index  int     `json:"index"`
	Text   string  `json:"text"`
	Answer *Answer `json:"answer,omitempty"`
}

// Format renders every problem of ps with 1-based indices.
func Format(ps ProblemSet) []FormattedProblem {
	out := make([]FormattedProblem, len(ps.Problems))
	for i, p := range ps.Problems {
		idx := i + 1
		switch ps.Operation {
		case Addition:
			out[i] = FormattedProblem{Index: idx, Text: AdditionText(idx, p)}
		default:
			ans := DivisionAnswer(ps.Mode, p)
			out[i] = FormattedProblem{Index: idx, Text: DivisionText(idx, p), Answer: &ans}
		}
	}
	return out
}

func AdditionText(index int, p Problem) string {
	return fmt.Sprintf("(%2d)   %d + %d =", index, p.A, p.B)
}

func DivisionText(index int, p Problem) string {
	return fmt.Sprintf("(%d)  %d ÷ %d = ", index, p.A, p.B)
}

func DivisionAnswer(mode DivisionMode, p Problem) Answer {
	switch mode {
	case Mixed:
		return MixedAnswer(p.A, p.B)
	case Decimal:
		return DecimalAnswer(p.A, p.B)
	}
	return QuotientAnswer(p.A, p.B)
}

// Texts returns the problem lines in display order.
func Texts(problems []FormattedProblem) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = p.Text
	}
	return out
}

// AnswerTexts returns "(i)  answer" lines for problems that carry an answer.
func AnswerTexts(problems []FormattedProblem) []string {
	var out []string
	for _, p := range problems {
		if p.Answer == nil {
			continue
		}
		out = append(out, fmt.Sprintf("(%d)  %s", p.Index, p.Answer))
	}
	return out
}
