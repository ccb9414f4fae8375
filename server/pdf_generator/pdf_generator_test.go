package pdfgenerator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"
)

func additionProblems(t *testing.T, first, second pg.Range) []pg.FormattedProblem {
	t.Helper()
	g := pg.NewSeededGenerator(1)
	ps, err := g.Generate(pg.GenerateRequest{Operation: pg.Addition, Level: pg.Sequential, First: first, Second: second})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return pg.Format(ps)
}

func TestBuild_PageCount(t *testing.T) {
	gen := NewPDFGenerator(Config{Author: "Shuvam"})
	sheet, _ := SheetFor(pg.Addition)

	cases := []struct {
		first, second pg.Range
		pages         int
	}{
		{pg.Range{Min: 5, Max: 7}, pg.Range{Min: 1, Max: 3}, 1},
		// 84 problems fill exactly one page
		{pg.Range{Min: 1, Max: 84}, pg.Range{Min: 1, Max: 1}, 1},
		{pg.Range{Min: 1, Max: 85}, pg.Range{Min: 1, Max: 1}, 2},
	}
	for _, tc := range cases {
		pdf, err := gen.Build(sheet, additionProblems(t, tc.first, tc.second), Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pdf.PageCount() != tc.pages {
			t.Errorf("%v/%v: expected %d pages, got %d", tc.first, tc.second, tc.pages, pdf.PageCount())
		}
	}
}

func TestBuild_AnswerKey(t *testing.T) {
	gen := NewPDFGenerator(Config{})
	sheet, _ := SheetFor(pg.Division)
	ps := pg.ProblemSet{Operation: pg.Division, Mode: pg.Mixed, Problems: []pg.Problem{{A: 7, B: 3}, {A: 5, B: 0}}}
	problems := pg.Format(ps)

	without, err := gen.Build(sheet, problems, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	with, err := gen.Build(sheet, problems, Options{IncludeAnswers: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if without.PageCount() != 1 || with.PageCount() != 2 {
		t.Errorf("expected 1 and 2 pages, got %d and %d", without.PageCount(), with.PageCount())
	}

	// addition has no answers, so no key page is added
	add, err := gen.Build(sheet, additionProblems(t, pg.Range{Min: 1, Max: 2}, pg.Range{Min: 1, Max: 2}), Options{IncludeAnswers: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if add.PageCount() != 1 {
		t.Errorf("expected 1 page, got %d", add.PageCount())
	}
}

func TestRender_Empty(t *testing.T) {
	gen := NewPDFGenerator(Config{})
	sheet, _ := SheetFor(pg.Addition)
	var buf bytes.Buffer

	err := gen.Render(&buf, sheet, nil, Options{})
	if !errors.Is(err, pg.ErrEmptyExport) {
		t.Fatalf("expected ErrEmptyExport, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %d bytes", buf.Len())
	}
}

func TestRender_WritesPDF(t *testing.T) {
	gen := NewPDFGenerator(Config{Author: "Shuvam"})
	sheet, _ := SheetFor(pg.Addition)
	var buf bytes.Buffer

	if err := gen.Render(&buf, sheet, additionProblems(t, pg.Range{Min: 5, Max: 7}, pg.Range{Min: 1, Max: 3}), Options{FontSize: 12}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestGeneratePDF_File(t *testing.T) {
	gen := NewPDFGenerator(Config{})
	sheet, _ := SheetFor(pg.Division)
	ps := pg.ProblemSet{Operation: pg.Division, Mode: pg.Decimal, Problems: []pg.Problem{{A: 7, B: 2}}}
	path := filepath.Join(t.TempDir(), sheet.FileName)

	if err := gen.GeneratePDF(context.Background(), sheet, pg.Format(ps), Options{}, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("expected a non-empty file")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := gen.GeneratePDF(ctx, sheet, pg.Format(ps), Options{}, path); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
