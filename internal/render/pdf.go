package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/jcmanalo/barangay-records/internal/certify"
)

// Page geometry in millimeters. A4 portrait with 25mm side margins leaves a
// 160mm text column, matching the issued paper forms.
const (
	pdfMarginLeft  = 25.0
	pdfMarginTop   = 15.0
	pdfMarginRight = 25.0
	pdfTextWidth   = 160.0
	pdfRightEdge   = 185.0
	pdfFooterY     = 280.0
	pdfBreakAt     = 240.0
)

// PDF renders the vector PDF artifact for one composed certificate.
// The creation date is pinned to the issue date so identical inputs produce
// byte-identical documents.
func PDF(rc *certify.RenderContext, blocks []certify.Block, opts Options) (*Result, error) {
	desc, err := certify.Lookup(rc.Type)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(desc.DocumentTitle, false)
	pdf.SetCreationDate(rc.IssueDate)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	if err := pdfLetterhead(pdf, rc, opts); err != nil {
		return nil, err
	}
	pdfSerialBox(pdf, rc)
	pdfTitle(pdf, desc.DocumentTitle)

	pdf.SetFont("Times", "", 12)
	for _, b := range blocks {
		pdfBlock(pdf, b)
	}
	pdfFooter(pdf, rc)

	if pdf.Err() {
		return nil, &RenderError{Format: "pdf", Message: "building document", Cause: pdf.Error()}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Format: "pdf", Message: "writing document", Cause: err}
	}
	return &Result{
		Data:     buf.Bytes(),
		Filename: Filename(rc.Type, rc.FullName, "pdf"),
		Content:  contentTrace(rc, desc.DocumentTitle, blocks),
	}, nil
}

func pdfLetterhead(pdf *gofpdf.Fpdf, rc *certify.RenderContext, opts Options) error {
	if opts.LogoPath != "" {
		if _, err := os.Stat(opts.LogoPath); err != nil {
			return &certify.AssetError{Asset: opts.LogoPath, Cause: err}
		}
		pdf.Image(opts.LogoPath, pdfMarginLeft+2, pdfMarginTop, 22, 22, false, "", 0, "")
	}

	lines := letterheadLines(rc)
	pdf.SetFont("Times", "", 11)
	for i, line := range lines {
		switch i {
		case 3: // "Barangay X"
			pdf.SetFont("Times", "B", 13)
		case 4: // office line
			pdf.SetFont("Times", "B", 11)
		default:
			pdf.SetFont("Times", "", 11)
		}
		pdf.CellFormat(0, 5, line, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
	y := pdf.GetY()
	pdf.Line(pdfMarginLeft, y, pdfRightEdge, y)
	pdf.Ln(3)
	return nil
}

func pdfSerialBox(pdf *gofpdf.Fpdf, rc *certify.RenderContext) {
	y := pdf.GetY()
	pdf.Rect(143, y, 42, 8, "D")
	pdf.SetFont("Times", "", 9)
	pdf.SetXY(143, y)
	pdf.CellFormat(42, 8, "Serial No: "+rc.SerialNumber, "", 0, "C", false, 0, "")
	pdf.SetY(y + 10)
}

func pdfTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Times", "BU", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func pdfBlock(pdf *gofpdf.Fpdf, b certify.Block) {
	switch b.Kind {
	case certify.KindParagraph:
		if b.Salutation {
			pdf.SetFont("Times", "B", 12)
			pdf.CellFormat(0, 7, b.Text, "", 1, "L", false, 0, "")
			pdf.SetFont("Times", "", 12)
			pdf.Ln(2)
			return
		}
		pdf.MultiCell(pdfTextWidth, 6, b.Text, "", "J", false)
		pdf.Ln(2)
	case certify.KindLabeledField:
		pdf.SetX(pdfMarginLeft + 10)
		pdf.CellFormat(48, 7, b.Label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Times", "B", 12)
		pdf.CellFormat(97, 7, b.Value, "", 1, "L", false, 0, "")
		pdf.SetFont("Times", "", 12)
		y := pdf.GetY()
		pdf.Line(pdfMarginLeft+58, y-1, pdfRightEdge, y-1)
	case certify.KindNumberedItem:
		pdf.SetX(pdfMarginLeft + 5)
		pdf.MultiCell(pdfTextWidth-5, 6, fmt.Sprintf("%d. %s", b.Index, b.Text), "", "J", false)
		pdf.Ln(1)
	case certify.KindSignature:
		pdfSignature(pdf, b)
	case certify.KindSectionBreak:
		pdf.Ln(6)
	}
}

// pdfSignature draws one signature row. A single signatory sits on the right
// half of the page; two share the row. Rows are kept on one page.
func pdfSignature(pdf *gofpdf.Fpdf, b certify.Block) {
	if pdf.GetY() > pdfBreakAt {
		pdf.AddPage()
	}
	pdf.Ln(14) // room for the handwritten signature
	y := pdf.GetY()

	xs := []float64{115}
	if len(b.Signatories) == 2 {
		xs = []float64{pdfMarginLeft, 115}
	}
	for i, s := range b.Signatories {
		x := xs[i]
		pdf.Line(x, y, x+70, y)
		pdf.SetFont("Times", "B", 12)
		pdf.SetXY(x, y+1)
		pdf.CellFormat(70, 6, s.Name, "", 2, "C", false, 0, "")
		pdf.SetFont("Times", "", 11)
		pdf.CellFormat(70, 5, s.Title, "", 0, "C", false, 0, "")
	}
	if b.SealNote {
		pdf.SetFont("Times", "I", 9)
		pdf.SetXY(pdfMarginLeft, y+3)
		pdf.MultiCell(70, 4, sealReminder, "", "L", false)
	}
	pdf.SetY(y + 14)
	pdf.SetFont("Times", "", 12)
}

func pdfFooter(pdf *gofpdf.Fpdf, rc *certify.RenderContext) {
	pdf.Line(pdfMarginLeft, pdfFooterY, pdfRightEdge, pdfFooterY)
	pdf.SetFont("Times", "I", 8)
	pdf.SetXY(pdfMarginLeft, pdfFooterY+2)
	pdf.CellFormat(pdfTextWidth, 4, rc.BarangayLine()+"  |  Serial No: "+rc.SerialNumber, "", 0, "C", false, 0, "")
}
