package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmanalo/barangay-records/internal/certify"
)

func testContext(t *testing.T, certType certify.Type) (*certify.RenderContext, []certify.Block) {
	t.Helper()
	birth := time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC)
	resident := &certify.Resident{
		FirstName:   "Juan",
		MiddleName:  "Dela",
		LastName:    "Cruz",
		Suffix:      "Jr.",
		Birthdate:   &birth,
		CivilStatus: "Single",
		Address:     "123 Rizal St.",
		Citizenship: "Filipino",
	}
	form := certify.Form{
		SerialNumber:  "BC-2024-0001",
		IssueDate:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		BarangayName:  "635",
		Municipality:  "City of Manila",
		Province:      "Metro Manila",
		CaptainName:   "Danilo A. San Bueno",
		SecretaryName: "Paula Marie D. Bailon",
	}
	rc, err := certify.Bind(resident, certType, form)
	require.NoError(t, err)
	blocks, err := certify.Compose(rc, certType)
	require.NoError(t, err)
	return rc, blocks
}

func TestFilename(t *testing.T) {
	tests := []struct {
		fullName string
		ext      string
		want     string
	}{
		{"Juan D. Cruz Jr.", "pdf", "clearance_juan_d_cruz_jr.pdf"},
		{"Maria Santos", "docx", "clearance_maria_santos.docx"},
		{"  Ana-Lyn  O'Neil ", "html", "clearance_ana_lyn_o_neil.html"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(certify.TypeClearance, tt.fullName, tt.ext))
	}
}

func TestContentTrace_ReadingOrder(t *testing.T) {
	rc, blocks := testContext(t, certify.TypeClearance)
	trace := contentTrace(rc, "BARANGAY CLEARANCE", blocks)

	require.Greater(t, len(trace), 7)
	assert.Equal(t, "Republic of the Philippines", trace[0])
	assert.Equal(t, "Barangay 635", trace[3])
	assert.Equal(t, "Serial No: BC-2024-0001", trace[5])
	assert.Equal(t, "BARANGAY CLEARANCE", trace[6])

	// Every block's plain text follows, in order.
	var want []string
	for _, b := range blocks {
		want = append(want, b.PlainText()...)
	}
	assert.Equal(t, want, trace[7:])
}

func TestRenderers_EmitIdenticalContent(t *testing.T) {
	for _, certType := range certify.Types() {
		t.Run(string(certType), func(t *testing.T) {
			rc, blocks := testContext(t, certType)

			pdfRes, err := PDF(rc, blocks, Options{})
			require.NoError(t, err)
			docxRes, err := Docx(rc, blocks)
			require.NoError(t, err)
			previewRes, err := Preview(rc, blocks)
			require.NoError(t, err)

			assert.Equal(t, pdfRes.Content, docxRes.Content)
			assert.Equal(t, pdfRes.Content, previewRes.Content)
			assert.NotEmpty(t, pdfRes.Content)
		})
	}
}

func TestRenderers_UnknownType(t *testing.T) {
	rc := &certify.RenderContext{Type: certify.Type("diploma")}

	_, err := PDF(rc, nil, Options{})
	var unknownErr *certify.UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)

	_, err = Docx(rc, nil)
	require.ErrorAs(t, err, &unknownErr)

	_, err = Preview(rc, nil)
	require.ErrorAs(t, err, &unknownErr)
}
