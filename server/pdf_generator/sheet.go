package pdfgenerator

import (
	"fmt"

	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	startX     = 20
	startY     = 30
	pageBottom = 280

	// title anchors on an A4 portrait page
	titleX  = 105
	titleY  = 15
	authorX = 200
)

// Sheet holds the per-operation export constants.
type Sheet struct {
	Operation       pg.Operation
	FileName        string
	ShowAuthor      bool
	DefaultFontSize float64
	LinePad         float64
	ColumnWidth     float64
	PageRight       float64
}

var sheets = map[pg.Operation]Sheet{
	pg.Addition: {
		Operation:       pg.Addition,
		FileName:        "addition-worksheet.pdf",
		ShowAuthor:      true,
		DefaultFontSize: 14,
		LinePad:         2,
		ColumnWidth:     65,
		PageRight:       150,
	},
	pg.Division: {
		Operation:       pg.Division,
		FileName:        "division-worksheet.pdf",
		DefaultFontSize: 16,
		LinePad:         3,
		ColumnWidth:     70,
		PageRight:       160,
	},
}

func SheetFor(op pg.Operation) (Sheet, error) {
	s, ok := sheets[op]
	if !ok {
		return Sheet{}, fmt.Errorf("%w: %q", pg.ErrUnknownOperation, op)
	}
	return s, nil
}

// Title is e.g. "Addition Worksheet".
func (s Sheet) Title() string {
	return cases.Title(language.English).String(string(s.Operation)) + " Worksheet"
}

// FontSize falls back to the sheet default only for 0; any other size,
// negative included, is passed through.
func (s Sheet) FontSize(requested int) float64 {
	if requested == 0 {
		return s.DefaultFontSize
	}
	return float64(requested)
}

func (s Sheet) Layout(fontSize float64) Layout {
	return Layout{
		StartX:      startX,
		StartY:      startY,
		LineHeight:  fontSize/2 + s.LinePad,
		ColumnWidth: s.ColumnWidth,
		PageBottom:  pageBottom,
		PageRight:   s.PageRight,
	}
}
