package problemgenerator

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrInvalidRange     = errors.New("range minimum is greater than maximum")
	ErrEmptyExport      = errors.New("no problems to export")
	ErrUnknownLevel     = errors.New("unknown randomization level")
	ErrUnknownMode      = errors.New("unknown division mode")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrRangeOverflow    = errors.New("range bounds overflow an integer")
)

// InvalidRangeAlert is shown to the user when a range is out of order.
const InvalidRangeAlert = "The 'From' value cannot be greater than the 'To' value in a range."

type Operation string

const (
	Addition Operation = "addition"
	Division Operation = "division"
)

func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case Addition, Division:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// EmptyExportAlert is the message shown when a PDF is requested before
// anything was generated.
func (op Operation) EmptyExportAlert() string {
	if op == Addition {
		return "Please generate some sums first!"
	}
	return "Please generate some problems first!"
}

// RandomizationLevel selects the order problems are presented in.
// The numeric values match the radio buttons of the worksheet pages.
type RandomizationLevel int

const (
	Sequential RandomizationLevel = iota + 1
	BlockShuffled
	FullyShuffled
)

func ParseLevel(s string) (RandomizationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "sequential":
		return Sequential, nil
	case "2", "block":
		return BlockShuffled, nil
	case "3", "full":
		return FullyShuffled, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l RandomizationLevel) Valid() bool {
	return l >= Sequential && l <= FullyShuffled
}

func (l RandomizationLevel) String() string {
	switch l {
	case Sequential:
		return "sequential"
	case BlockShuffled:
		return "block"
	case FullyShuffled:
		return "full"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// DivisionMode picks how division problems are drawn and answered.
type DivisionMode string

const (
	ZeroRemainder DivisionMode = "zero"
	Decimal       DivisionMode = "decimal"
	Mixed         DivisionMode = "mixed"
)

func ParseMode(s string) (DivisionMode, error) {
	switch m := DivisionMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ZeroRemainder, Decimal, Mixed:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Values yields Min through Max in order. The counter never steps past Max,
// so a range ending at math.MaxInt terminates.
func (r Range) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		if r.Min > r.Max {
			return
		}
		for v := r.Min; ; v++ {
			if !yield(v) || v == r.Max {
				return
			}
		}
	}
}

// Problem is an operand pair: (augend, addend) for addition,
// (numerator, denominator) for division.
type Problem struct {
	A int `json:"a"`
	B int `json:"b"`
}

type ProblemSet struct {
	Operation Operation          `json:"operation"`
	Mode      DivisionMode       `json:"mode,omitempty"`
	Level     RandomizationLevel `json:"level"`
	Problems  []Problem          `json:"problems"`
}

// Info is the summary line shown above a worksheet.
func (ps ProblemSet) Info() string {
	return fmt.Sprintf("Generated %d unique problems.", len(ps.Problems))
}

// GenerateRequest carries the raw inputs of one "Generate" action.
// Addition reads First and Second; division reads Denominator plus either
// Answer (zero-remainder mode) or Numerator (decimal and mixed modes).
type GenerateRequest struct {
	Operation   Operation          `json:"operation"`
	Mode        DivisionMode       `json:"mode,omitempty"`
	Level       RandomizationLevel `json:"level"`
	First       Range              `json:"first"`
	Second      Range              `json:"second"`
	Numerator   Range              `json:"numerator"`
	Denominator Range              `json:"denominator"`
	Answer      Range              `json:"answer"`
}

// Alert turns an error from this package into the text shown to the user.
func Alert(err error, op Operation) string {
	switch {
	case errors.Is(err, ErrInvalidRange):
		return InvalidRangeAlert
	case errors.Is(err, ErrEmptyExport):
		return op.EmptyExportAlert()
	}
	return err.Error()
}
