package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmanalo/barangay-records/internal/certify"
)

func TestDocx_ProducesDocument(t *testing.T) {
	rc, blocks := testContext(t, certify.TypeResidency)

	res, err := Docx(rc, blocks)
	require.NoError(t, err)
	require.NotEmpty(t, res.Data)
	// A .docx file is a zip archive.
	assert.Equal(t, "PK", string(res.Data[:2]))
	assert.Equal(t, "residency_juan_d_cruz_jr.docx", res.Filename)
}

func TestDocx_AllTypes(t *testing.T) {
	for _, certType := range certify.Types() {
		t.Run(string(certType), func(t *testing.T) {
			rc, blocks := testContext(t, certType)
			res, err := Docx(rc, blocks)
			require.NoError(t, err)
			assert.NotEmpty(t, res.Data)
		})
	}
}
