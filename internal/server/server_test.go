package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/server/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointLabel(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		method   string
		path     string
		expected string
	}{
		{"GET", "/api/residents", "GET /api/residents"},
		{"PUT", "/api/residents/" + id, "PUT /api/residents/:id"},
		{"GET", "/api/households/" + id + "/members", "GET /api/households/:id/members"},
		{"POST", "/api/certificates/generate", "POST /api/certificates/generate"},
		{"GET", "/health", "GET /health"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, endpointLabel(tt.method, tt.path))
		})
	}
}

func TestHandleHealth(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleListCertificateTypes(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/api/certificates/types", nil)
	w := httptest.NewRecorder()
	s.handleListCertificateTypes(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Types []struct {
			Type           string `json:"type"`
			Label          string `json:"label"`
			DocumentTitle  string `json:"document_title"`
			SerialPrefix   string `json:"serial_prefix"`
			ValidityMonths int    `json:"validity_months"`
		} `json:"types"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 7, resp.Count)

	assert.Equal(t, "residency", resp.Types[0].Type)
	assert.Equal(t, "Certificate of Residency", resp.Types[0].Label)
	assert.Equal(t, "RES", resp.Types[0].SerialPrefix)
	assert.Equal(t, 6, resp.Types[0].ValidityMonths)

	prefixes := make(map[string]bool)
	for _, ct := range resp.Types {
		prefixes[ct.SerialPrefix] = true
	}
	for _, p := range []string{"RES", "IND", "BC", "GEN", "FJS", "OOU", "GMC"} {
		assert.True(t, prefixes[p], p)
	}
}

func TestHandleListHistoryLogs_RoleRestricted(t *testing.T) {
	s := &Server{}

	withRole := func(role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/history-logs", nil)
		claims := &Claims{UserID: uuid.New(), Username: "u", FullName: "U", Role: role}
		ctx := context.WithValue(req.Context(), middleware.ClaimsKey(), middleware.ClaimsAccessor(claims))
		req = req.WithContext(ctx)
		w := httptest.NewRecorder()
		s.handleListHistoryLogs(w, req)
		return w
	}

	assert.Equal(t, http.StatusForbidden, withRole("Staff").Code)
	assert.Contains(t, withRole("Staff").Body.String(), "Access denied.")
}

func TestHandleListHistoryLogs_Unauthenticated(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/api/history-logs", nil)
	w := httptest.NewRecorder()
	s.handleListHistoryLogs(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleListHistoryLogs_InvalidLimit(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/api/history-logs?limit=abc", nil)
	claims := &Claims{UserID: uuid.New(), Username: "u", FullName: "U", Role: "Chairman"}
	ctx := context.WithValue(req.Context(), middleware.ClaimsKey(), middleware.ClaimsAccessor(claims))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	s.handleListHistoryLogs(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
