package webapp

import (
	"encoding/json"
	"strconv"
	"strings"

	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"
)

// form field names, shared by the templates
const (
	fieldMin1       = "min1"
	fieldMax1       = "max1"
	fieldMin2       = "min2"
	fieldMax2       = "max2"
	fieldLevel      = "randomization"
	fieldFontSize   = "pdf-font-size"
	fieldType       = "problemType"
	fieldDenZeroMin = "den-zero-min"
	fieldDenZeroMax = "den-zero-max"
	fieldAnsZeroMin = "ans-zero-min"
	fieldAnsZeroMax = "ans-zero-max"
	fieldNumMixMin  = "num-mixed-min"
	fieldNumMixMax  = "num-mixed-max"
	fieldDenMixMin  = "den-mixed-min"
	fieldDenMixMax  = "den-mixed-max"
	fieldOperation  = "operation"
	fieldProblems   = "problems"
	fieldAnswers    = "include-answers"
)

var defaultForms = map[pg.Operation]map[string]string{
	pg.Addition: {
		fieldMin1: "1", fieldMax1: "10",
		fieldMin2: "1", fieldMax2: "10",
		fieldLevel: "1", fieldFontSize: "14",
	},
	pg.Division: {
		fieldType:       string(pg.ZeroRemainder),
		fieldDenZeroMin: "1", fieldDenZeroMax: "10",
		fieldAnsZeroMin: "1", fieldAnsZeroMax: "10",
		fieldNumMixMin: "1", fieldNumMixMax: "20",
		fieldDenMixMin: "1", fieldDenMixMax: "10",
		fieldLevel: "1", fieldFontSize: "16",
	},
}

// formValues is the submitted form, echoed back into the page.
type formValues map[string]string

func (f formValues) Get(key string) string { return f[key] }

// number reads an integer field like a browser's parseInt: leading space is
// skipped, an optional sign is accepted and reading stops at the first
// non-digit. ok is false when no digits lead the field.
func (f formValues) number(key string) (int, bool) {
	s := strings.TrimLeft(f[key], " \t\n\r\f\v")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// rangeField binds a form range to the request field it fills.
type rangeField struct {
	dst            *pg.Range
	minKey, maxKey string
}

// readRanges fills every range. A range whose bounds both parse is
// validated even when another range is unreadable; ok reports whether all
// of them parsed.
func (f formValues) readRanges(fields ...rangeField) (ok bool, err error) {
	ok = true
	for _, rf := range fields {
		lo, okLo := f.number(rf.minKey)
		hi, okHi := f.number(rf.maxKey)
		*rf.dst = pg.Range{Min: lo, Max: hi}
		if !okLo || !okHi {
			ok = false
			continue
		}
		if err := rf.dst.Validate(); err != nil {
			return false, err
		}
	}
	return ok, nil
}

// fontSize is 0 (the sheet default) when the field does not parse.
func (f formValues) fontSize() int {
	n, _ := f.number(fieldFontSize)
	return n
}

// request turns the form into a generate request. An out-of-order range is
// an error. ok is false when a range field could not be read; such a form
// yields an empty worksheet.
func (f formValues) request(op pg.Operation) (req pg.GenerateRequest, ok bool, err error) {
	level, err := pg.ParseLevel(f[fieldLevel])
	if err != nil {
		return req, false, err
	}
	req = pg.GenerateRequest{Operation: op, Level: level}

	if op == pg.Addition {
		ok, err = f.readRanges(
			rangeField{&req.First, fieldMin1, fieldMax1},
			rangeField{&req.Second, fieldMin2, fieldMax2},
		)
		return req, ok, err
	}

	req.Mode, err = pg.ParseMode(f[fieldType])
	if err != nil {
		return req, false, err
	}
	if req.Mode == pg.ZeroRemainder {
		ok, err = f.readRanges(
			rangeField{&req.Denominator, fieldDenZeroMin, fieldDenZeroMax},
			rangeField{&req.Answer, fieldAnsZeroMin, fieldAnsZeroMax},
		)
	} else {
		ok, err = f.readRanges(
			rangeField{&req.Denominator, fieldDenMixMin, fieldDenMixMax},
			rangeField{&req.Numerator, fieldNumMixMin, fieldNumMixMax},
		)
	}
	return req, ok, err
}

// encodeProblems and decodeProblems carry generated lines through the
// export form's hidden field.
func encodeProblems(problems []pg.FormattedProblem) (string, error) {
	b, err := json.Marshal(problems)
	return string(b), err
}

func decodeProblems(s string) ([]pg.FormattedProblem, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []pg.FormattedProblem
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}
