package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmanalo/barangay-records/internal/certify"
)

func TestPDF_ProducesDocument(t *testing.T) {
	rc, blocks := testContext(t, certify.TypeClearance)

	res, err := PDF(rc, blocks, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Data)
	assert.Equal(t, "%PDF", string(res.Data[:4]))
	assert.Equal(t, "clearance_juan_d_cruz_jr.pdf", res.Filename)
}

func TestPDF_Deterministic(t *testing.T) {
	rc, blocks := testContext(t, certify.TypeIndigency)

	first, err := PDF(rc, blocks, Options{})
	require.NoError(t, err)
	second, err := PDF(rc, blocks, Options{})
	require.NoError(t, err)
	assert.Equal(t, first.Data, second.Data, "identical inputs should produce byte-identical PDFs")
}

func TestPDF_AllTypes(t *testing.T) {
	for _, certType := range certify.Types() {
		t.Run(string(certType), func(t *testing.T) {
			rc, blocks := testContext(t, certType)
			res, err := PDF(rc, blocks, Options{})
			require.NoError(t, err)
			assert.NotEmpty(t, res.Data)
		})
	}
}

func TestPDF_MissingLogo(t *testing.T) {
	rc, blocks := testContext(t, certify.TypeClearance)

	missing := filepath.Join(t.TempDir(), "seal.png")
	_, err := PDF(rc, blocks, Options{LogoPath: missing})
	require.Error(t, err)
	var assetErr *certify.AssetError
	require.ErrorAs(t, err, &assetErr)
	assert.Equal(t, missing, assetErr.Asset)
}
