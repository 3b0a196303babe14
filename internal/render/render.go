// Package render produces the three certificate outputs (PDF, Word document,
// HTML preview) from one composed block list. Renderers interpret blocks and
// never derive wording themselves, so the formats stay consistent.
package render

import (
	"fmt"
	"strings"

	"github.com/jcmanalo/barangay-records/internal/certify"
)

// Result is one rendered artifact.
type Result struct {
	Data     []byte
	Filename string
	// Content is the ordered plain-text trace of everything the artifact
	// surfaces, in reading order. All renderers emit the same trace for the
	// same input.
	Content []string
}

// Options carries renderer configuration shared across certificate types.
type Options struct {
	// LogoPath points at the barangay seal image for the PDF header. Empty
	// means render without a logo.
	LogoPath string
}

// Filename builds the download name for an artifact,
// e.g. "clearance_juan_d_cruz_jr.pdf".
func Filename(t certify.Type, fullName, ext string) string {
	var b strings.Builder
	pendingUnderscore := false
	for _, r := range strings.ToLower(fullName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingUnderscore = false
			b.WriteRune(r)
		} else {
			pendingUnderscore = true
		}
	}
	return fmt.Sprintf("%s_%s.%s", t, b.String(), ext)
}

// letterheadLines is the header every artifact prints above the title.
func letterheadLines(rc *certify.RenderContext) []string {
	return []string{
		"Republic of the Philippines",
		rc.Province,
		rc.Municipality,
		"Barangay " + rc.BarangayName,
		"OFFICE OF THE PUNONG BARANGAY",
	}
}

// contentTrace is the canonical reading-order trace: letterhead, serial,
// title, then each block's plain text. Every renderer reports exactly this.
func contentTrace(rc *certify.RenderContext, title string, blocks []certify.Block) []string {
	trace := append([]string{}, letterheadLines(rc)...)
	trace = append(trace, "Serial No: "+rc.SerialNumber, title)
	for _, b := range blocks {
		trace = append(trace, b.PlainText()...)
	}
	return trace
}

const sealReminder = "Not valid without the official barangay dry seal."
