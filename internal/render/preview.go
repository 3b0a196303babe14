package render

import (
	"bytes"
	"html/template"

	"github.com/jcmanalo/barangay-records/internal/certify"
)

// previewBlock is the template-facing view of one block; the kind is a string
// so the template can branch without knowing the numeric tags.
type previewBlock struct {
	Kind        string
	Text        string
	Index       int
	Label       string
	Value       string
	Signatories []certify.Signatory
	SealNote    bool
}

type previewData struct {
	Letterhead []string
	Serial     string
	Title      string
	Blocks     []previewBlock
	Footer     string
	SealNote   string
}

var previewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  .certificate { font-family: "Times New Roman", serif; font-size: 12pt; max-width: 640px; margin: 0 auto; padding: 24px; }
  .letterhead { text-align: center; line-height: 1.3; border-bottom: 1px solid #000; padding-bottom: 8px; }
  .letterhead .barangay { font-size: 13pt; font-weight: bold; }
  .letterhead .office { font-weight: bold; }
  .serial { text-align: right; border: 1px solid #000; padding: 2px 8px; width: fit-content; margin-left: auto; margin-top: 8px; font-size: 9pt; }
  .title { text-align: center; font-size: 16pt; font-weight: bold; text-decoration: underline; margin: 20px 0; }
  .paragraph { text-align: justify; text-indent: 2em; margin: 8px 0; }
  .salutation { font-weight: bold; margin: 8px 0; }
  .field { margin: 4px 0 4px 2.5em; }
  .field .value { font-weight: bold; text-decoration: underline; }
  .item { text-align: justify; margin: 4px 0 4px 1.5em; }
  .section-break { height: 16px; }
  .signature-row { display: flex; justify-content: flex-end; gap: 48px; margin-top: 40px; }
  .signature-row.pair { justify-content: space-between; }
  .signatory { text-align: center; min-width: 220px; }
  .signatory .name { border-top: 1px solid #000; font-weight: bold; padding-top: 2px; }
  .seal-note { font-style: italic; font-size: 9pt; margin-top: 8px; }
  .footer { border-top: 1px solid #000; text-align: center; font-style: italic; font-size: 8pt; margin-top: 32px; padding-top: 4px; }
</style>
</head>
<body>
<div class="certificate">
  <div class="letterhead">
    {{- range $i, $line := .Letterhead}}
    <div{{if eq $i 3}} class="barangay"{{else if eq $i 4}} class="office"{{end}}>{{$line}}</div>
    {{- end}}
  </div>
  <div class="serial">Serial No: {{.Serial}}</div>
  <div class="title">{{.Title}}</div>
  {{- range .Blocks}}
  {{- if eq .Kind "paragraph"}}
  <p class="paragraph">{{.Text}}</p>
  {{- else if eq .Kind "salutation"}}
  <p class="salutation">{{.Text}}</p>
  {{- else if eq .Kind "field"}}
  <div class="field">{{.Label}}: <span class="value">{{.Value}}</span></div>
  {{- else if eq .Kind "item"}}
  <div class="item">{{.Index}}. {{.Text}}</div>
  {{- else if eq .Kind "signature"}}
  <div class="signature-row{{if gt (len .Signatories) 1}} pair{{end}}">
    {{- range .Signatories}}
    <div class="signatory"><div class="name">{{.Name}}</div><div>{{.Title}}</div></div>
    {{- end}}
  </div>
  {{- if .SealNote}}<div class="seal-note">{{$.SealNote}}</div>{{end}}
  {{- else}}
  <div class="section-break"></div>
  {{- end}}
  {{- end}}
  <div class="footer">{{.Footer}}</div>
</div>
</body>
</html>
`))

// Preview renders the on-screen HTML artifact for one composed certificate.
// It surfaces the same ordered content as the PDF and Word outputs.
func Preview(rc *certify.RenderContext, blocks []certify.Block) (*Result, error) {
	desc, err := certify.Lookup(rc.Type)
	if err != nil {
		return nil, err
	}

	data := previewData{
		Letterhead: letterheadLines(rc),
		Serial:     rc.SerialNumber,
		Title:      desc.DocumentTitle,
		Blocks:     make([]previewBlock, 0, len(blocks)),
		Footer:     rc.BarangayLine() + "  |  Serial No: " + rc.SerialNumber,
		SealNote:   sealReminder,
	}
	for _, b := range blocks {
		data.Blocks = append(data.Blocks, toPreviewBlock(b))
	}

	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, data); err != nil {
		return nil, &RenderError{Format: "preview", Message: "executing template", Cause: err}
	}
	return &Result{
		Data:     buf.Bytes(),
		Filename: Filename(rc.Type, rc.FullName, "html"),
		Content:  contentTrace(rc, desc.DocumentTitle, blocks),
	}, nil
}

func toPreviewBlock(b certify.Block) previewBlock {
	pb := previewBlock{
		Text:        b.Text,
		Index:       b.Index,
		Label:       b.Label,
		Value:       b.Value,
		Signatories: b.Signatories,
		SealNote:    b.SealNote,
	}
	switch b.Kind {
	case certify.KindParagraph:
		pb.Kind = "paragraph"
		if b.Salutation {
			pb.Kind = "salutation"
		}
	case certify.KindLabeledField:
		pb.Kind = "field"
	case certify.KindNumberedItem:
		pb.Kind = "item"
	case certify.KindSignature:
		pb.Kind = "signature"
	default:
		pb.Kind = "break"
	}
	return pb
}
