package server

import (
	"encoding/json"
	"net/http"

	"github.com/jcmanalo/barangay-records/internal/db"
)

// ---------------------------------------------------------------------
// Barangay Profile Handlers
// ---------------------------------------------------------------------

type profileRequest struct {
	BarangayName string `json:"barangay_name"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	PlaceIssued  string `json:"place_issued"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.db.GetProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Barangay profile not configured")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.BarangayName == "" || req.Municipality == "" || req.Province == "" {
		s.errorResponse(w, http.StatusBadRequest, "Barangay name, municipality, and province are required")
		return
	}

	profile, err := s.db.UpsertProfile(r.Context(), req.BarangayName, req.Municipality, req.Province, req.PlaceIssued)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "updated the barangay profile",
		ModuleType: "Profile",
	})

	s.jsonResponse(w, http.StatusOK, profile)
}
