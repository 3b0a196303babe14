package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/jcmanalo/barangay-records/internal/certify"
)

// Font sizes for the Word artifact, in half-points.
const (
	docxSizeBody       = "24" // 12pt
	docxSizeTitle      = "32" // 16pt
	docxSizeLetterhead = "22" // 11pt
	docxSizeBarangay   = "26" // 13pt
	docxSizeFooter     = "16" // 8pt
)

// Docx renders the editable Word artifact for one composed certificate. The
// layout mirrors the PDF: letterhead, serial, underlined title, then blocks.
func Docx(rc *certify.RenderContext, blocks []certify.Block) (*Result, error) {
	desc, err := certify.Lookup(rc.Type)
	if err != nil {
		return nil, err
	}

	w := docx.New().WithDefaultTheme()

	lines := letterheadLines(rc)
	for i, line := range lines {
		run := w.AddParagraph().Justification("center").AddText(line)
		switch i {
		case 3:
			run.Size(docxSizeBarangay).Bold()
		case 4:
			run.Size(docxSizeLetterhead).Bold()
		default:
			run.Size(docxSizeLetterhead)
		}
	}

	w.AddParagraph().Justification("end").
		AddText("Serial No: " + rc.SerialNumber).Size(docxSizeLetterhead)
	w.AddParagraph()
	w.AddParagraph().Justification("center").
		AddText(desc.DocumentTitle).Size(docxSizeTitle).Bold().Underline("single")
	w.AddParagraph()

	for _, b := range blocks {
		docxBlock(w, b)
	}

	w.AddParagraph()
	w.AddParagraph().Justification("center").
		AddText(rc.BarangayLine() + "  |  Serial No: " + rc.SerialNumber).
		Size(docxSizeFooter).Italic()

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, &RenderError{Format: "docx", Message: "writing document", Cause: err}
	}
	return &Result{
		Data:     buf.Bytes(),
		Filename: Filename(rc.Type, rc.FullName, "docx"),
		Content:  contentTrace(rc, desc.DocumentTitle, blocks),
	}, nil
}

func docxBlock(w *docx.Docx, b certify.Block) {
	switch b.Kind {
	case certify.KindParagraph:
		if b.Salutation {
			w.AddParagraph().AddText(b.Text).Size(docxSizeBody).Bold()
			return
		}
		w.AddParagraph().Justification("both").AddText(b.Text).Size(docxSizeBody)
	case certify.KindLabeledField:
		p := w.AddParagraph()
		p.AddText(b.Label + ": ").Size(docxSizeBody)
		p.AddText(b.Value).Size(docxSizeBody).Bold().Underline("single")
	case certify.KindNumberedItem:
		w.AddParagraph().Justification("both").
			AddText(fmt.Sprintf("%d. %s", b.Index, b.Text)).Size(docxSizeBody)
	case certify.KindSignature:
		docxSignature(w, b)
	case certify.KindSectionBreak:
		w.AddParagraph()
	}
}

func docxSignature(w *docx.Docx, b certify.Block) {
	// Word has no absolute positioning at this level; signatories stack,
	// each with a rule of underscores above the printed name.
	w.AddParagraph()
	just := "end"
	if len(b.Signatories) > 1 {
		just = "center"
	}
	for _, s := range b.Signatories {
		w.AddParagraph().Justification(just).
			AddText(strings.Repeat("_", 36)).Size(docxSizeBody)
		w.AddParagraph().Justification(just).AddText(s.Name).Size(docxSizeBody).Bold()
		w.AddParagraph().Justification(just).AddText(s.Title).Size(docxSizeBody)
	}
	if b.SealNote {
		w.AddParagraph().AddText(sealReminder).Size(docxSizeFooter).Italic()
	}
}
