package writers

import (
	"fmt"
	"io"
	"math"
	"strconv"

	gofpdf "github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/config"
	"github.com/love0324/lighthouse/pkg/rating"
	"github.com/love0324/lighthouse/pkg/render"
	"github.com/love0324/lighthouse/pkg/ui"
)

// PDFWriter emits a one-page-per-category summary: score band, section
// counts, and the failed-audit table.
type PDFWriter struct {
	pdf    *gofpdf.Fpdf
	cfg    *config.Config
	titler cases.Caser
}

// NewPDFWriter creates a PDF summary writer. A nil cfg uses defaults.
func NewPDFWriter(cfg *config.Config) *PDFWriter {
	if cfg == nil {
		cfg = config.Default()
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(cfg.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	return &PDFWriter{
		pdf:    pdf,
		cfg:    cfg,
		titler: cases.Title(language.English),
	}
}

// AddCategory appends one category page.
func (pw *PDFWriter) AddCategory(cat *audit.Category, s render.Summary) {
	pdf := pw.pdf
	pdf.AddPage()

	r := rating.Calculate(cat.Score, audit.Numeric)
	cr, cg, cb := hexToRGB(ui.RatingColor(r))

	// Score band.
	pdf.SetFillColor(cr, cg, cb)
	pdf.Rect(10, 10, 190, 2, "F")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(150, 10, cat.Title, "", 0, "L", false, 0, "")

	score := "?"
	if cat.Score != nil {
		score = strconv.Itoa(int(math.Round(*cat.Score * 100)))
	}
	pdf.SetTextColor(cr, cg, cb)
	pdf.CellFormat(40, 10, score, "", 1, "R", false, 0, "")

	if cat.Description != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(0, 5, cat.Description, "", "L", false)
	}
	pdf.Ln(4)

	// Section counts.
	pw.addSectionHeader("Sections")
	counts := []struct {
		name  string
		count int
	}{
		{"failed", s.Failed},
		{"passed", s.Passed},
		{"not applicable", s.NotApplicable},
		{"manual", s.Manual},
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	for _, c := range counts {
		if c.count == 0 {
			continue
		}
		pdf.CellFormat(60, 6, pw.titler.String(c.name), "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, strconv.Itoa(c.count), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	failed := render.FailedAudits(cat)
	if len(failed) == 0 {
		return
	}

	pw.addSectionHeader("Failed Audits")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(55, 6, "ID", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 6, "Title", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 6, "Value", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, ref := range failed {
		res := ref.Result
		pdf.CellFormat(55, 6, clip(res.ID, 34), "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, clip(res.Title, 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, clip(rating.FormatDisplayValue(res.DisplayValue), 24), "1", 1, "L", false, 0, "")
	}
}

func (pw *PDFWriter) addSectionHeader(title string) {
	pw.pdf.SetFont("Helvetica", "B", 12)
	pw.pdf.SetTextColor(40, 40, 40)
	pw.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pw.pdf.Ln(1)
}

// Output writes the assembled document.
func (pw *PDFWriter) Output(w io.Writer) error {
	if err := pw.pdf.Output(w); err != nil {
		return fmt.Errorf("writers: write pdf: %w", err)
	}
	return nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// hexToRGB parses a #rrggbb color. Malformed input yields black.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
