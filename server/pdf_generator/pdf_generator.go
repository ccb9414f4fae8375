package pdfgenerator

import (
	"context"
	"fmt"
	"io"
	"os"

	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"

	"codeberg.org/go-pdf/fpdf"
)

type Config struct {
	PageSize   string
	FontFamily string
	Author     string
}

// Options are the per-export inputs.
type Options struct {
	FontSize       int // 0 uses the sheet default
	IncludeAnswers bool
}

type PDFGenerator struct {
	cfg Config
}

func NewPDFGenerator(cfg Config) *PDFGenerator {
	if cfg.PageSize == "" {
		cfg.PageSize = "A4"
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = "Helvetica"
	}
	return &PDFGenerator{cfg}
}

// Build lays out the worksheet into a new document.
func (p *PDFGenerator) Build(sheet Sheet, problems []pg.FormattedProblem, opts Options) (*fpdf.Fpdf, error) {
	if len(problems) == 0 {
		return nil, pg.ErrEmptyExport
	}
	fontSize := sheet.FontSize(opts.FontSize)
	layout := sheet.Layout(fontSize)

	pdf := fpdf.New("P", "mm", p.cfg.PageSize, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(sheet.Title(), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont(p.cfg.FontFamily, "", fontSize)

	// ---------- heading ----------
	title := tr(sheet.Title())
	pdf.Text(titleX-pdf.GetStringWidth(title)/2, titleY, title)
	if sheet.ShowAuthor && p.cfg.Author != "" {
		author := tr("By " + p.cfg.Author)
		pdf.Text(authorX-pdf.GetStringWidth(author), titleY, author)
	}

	// ---------- problems ----------
	draw(pdf, tr, Paginate(pg.Texts(problems), layout))

	// ---------- answers ----------
	if answers := pg.AnswerTexts(problems); opts.IncludeAnswers && len(answers) > 0 {
		pdf.AddPage()
		key := tr(sheet.Title() + " Answer Key")
		pdf.Text(titleX-pdf.GetStringWidth(key)/2, titleY, key)
		draw(pdf, tr, Paginate(answers, layout))
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf layout: %w", err)
	}
	return pdf, nil
}

// Render writes the worksheet PDF to w.
func (p *PDFGenerator) Render(w io.Writer, sheet Sheet, problems []pg.FormattedProblem, opts Options) error {
	pdf, err := p.Build(sheet, problems, opts)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// GeneratePDF writes the worksheet PDF to outputFilePath.
func (p *PDFGenerator) GeneratePDF(ctx context.Context, sheet Sheet, problems []pg.FormattedProblem, opts Options, outputFilePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pdf, err := p.Build(sheet, problems, opts)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(outputFilePath); err != nil {
		os.Remove(outputFilePath)
		return err
	}
	return nil
}

// draw writes placements onto the current page and the pages after it.
// Pages are only added when a line lands on them.
func draw(pdf *fpdf.Fpdf, tr func(string) string, placements []Placement) {
	page := 0
	for _, pl := range placements {
		for page < pl.Page {
			pdf.AddPage()
			page++
		}
		pdf.Text(pl.X, pl.Y, tr(pl.Text))
	}
}
