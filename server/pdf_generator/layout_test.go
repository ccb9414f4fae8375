package pdfgenerator

import (
	"fmt"
	"testing"

	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"
)

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item %d", i+1)
	}
	return out
}

func TestPaginate_ColumnBreak(t *testing.T) {
	l := Layout{StartX: 20, StartY: 30, LineHeight: 9, ColumnWidth: 65, PageBottom: 280, PageRight: 150}
	got := Paginate(items(29), l)

	for i := 0; i < 28; i++ {
		if got[i].X != 20 || got[i].Y != 30+9*float64(i) {
			t.Fatalf("item %d: expected (20, %v), got (%v, %v)", i+1, 30+9*float64(i), got[i].X, got[i].Y)
		}
	}
	if last := got[28]; last.X != 85 || last.Y != 30 || last.Page != 0 {
		t.Errorf("item 29: expected new column at (85, 30) on page 0, got %+v", last)
	}
}

func TestPaginate_PageBreak(t *testing.T) {
	sheet, _ := SheetFor(pg.Addition)
	l := sheet.Layout(sheet.DefaultFontSize)
	// 28 lines per column, columns at x = 20, 85, 150
	got := Paginate(items(85), l)

	if got[83].X != 150 || got[83].Page != 0 {
		t.Errorf("item 84: expected last column of page 0, got %+v", got[83])
	}
	if got[84].X != 20 || got[84].Y != 30 || got[84].Page != 1 {
		t.Errorf("item 85: expected top of page 1, got %+v", got[84])
	}
	if Pages(got) != 2 {
		t.Errorf("expected 2 pages, got %d", Pages(got))
	}
	if Pages(got[:84]) != 1 {
		t.Errorf("expected a full first page not to open a second, got %d", Pages(got[:84]))
	}
}

func TestPaginate_Deterministic(t *testing.T) {
	sheet, _ := SheetFor(pg.Division)
	l := sheet.Layout(16)
	a := Paginate(items(150), l)
	b := Paginate(items(150), l)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	// 23 lines per column, columns at x = 20, 90, 160
	if a[69].Page != 1 || a[68].X != 160 {
		t.Errorf("expected 69 lines on the first page, got %+v / %+v", a[68], a[69])
	}
}

func TestPaginate_Empty(t *testing.T) {
	if got := Paginate(nil, Layout{}); len(got) != 0 || Pages(got) != 0 {
		t.Errorf("expected no placements, got %v", got)
	}
}

func TestSheet(t *testing.T) {
	cases := []struct {
		op         pg.Operation
		title      string
		file       string
		fontSize   float64
		lineHeight float64
	}{
		{pg.Addition, "Addition Worksheet", "addition-worksheet.pdf", 14, 9},
		{pg.Division, "Division Worksheet", "division-worksheet.pdf", 16, 11},
	}
	for _, tc := range cases {
		s, err := SheetFor(tc.op)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.op, err)
		}
		if s.Title() != tc.title || s.FileName != tc.file {
			t.Errorf("%s: got title %q file %q", tc.op, s.Title(), s.FileName)
		}
		if fs := s.FontSize(0); fs != tc.fontSize {
			t.Errorf("%s: expected default font size %v, got %v", tc.op, tc.fontSize, fs)
		}
		if lh := s.Layout(s.FontSize(0)).LineHeight; lh != tc.lineHeight {
			t.Errorf("%s: expected line height %v, got %v", tc.op, tc.lineHeight, lh)
		}
	}
	if s, _ := SheetFor(pg.Addition); s.FontSize(15) != 15 || s.Layout(15).LineHeight != 9.5 {
		t.Errorf("expected requested font size to drive the line height")
	}
	if _, err := SheetFor("subtraction"); err == nil {
		t.Errorf("expected an error for an unknown operation")
	}
}

func TestSheet_FontSize(t *testing.T) {
	s, _ := SheetFor(pg.Division)
	cases := []struct {
		requested int
		want      float64
	}{
		{0, 16},
		{12, 12},
		{-5, -5},
	}
	for _, tc := range cases {
		if got := s.FontSize(tc.requested); got != tc.want {
			t.Errorf("FontSize(%d): expected %v, got %v", tc.requested, tc.want, got)
		}
	}
}
