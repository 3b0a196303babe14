package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/certify"
	"github.com/jcmanalo/barangay-records/internal/db"
)

// ---------------------------------------------------------------------
// Resident Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := s.db.ListResidents(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"residents": residents,
		"count":     len(residents),
	})
}

func (s *Server) handleGetResident(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	residentID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resident ID")
		return
	}

	resident, err := s.db.GetResidentByID(r.Context(), residentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resident == nil {
		s.errorResponse(w, http.StatusNotFound, "Resident not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resident)
}

func (s *Server) handleCreateResident(w http.ResponseWriter, r *http.Request) {
	var req db.ResidentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.LastName == "" || req.FirstName == "" || req.Sex == "" {
		s.errorResponse(w, http.StatusBadRequest, "Last name, first name, and sex are required")
		return
	}

	resident, err := s.db.CreateResident(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	name := certify.FullName(resident.FirstName, resident.MiddleName, resident.LastName, resident.Suffix)
	s.logAction(r, db.HistoryLogInput{
		Action:       "added the resident record of " + name,
		ModuleType:   "Residents",
		ResidentID:   resident.ID.String(),
		ResidentName: name,
	})

	s.jsonResponse(w, http.StatusCreated, resident)
}

func (s *Server) handleUpdateResident(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	residentID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resident ID")
		return
	}

	var req db.ResidentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.LastName == "" || req.FirstName == "" || req.Sex == "" {
		s.errorResponse(w, http.StatusBadRequest, "Last name, first name, and sex are required")
		return
	}

	resident, err := s.db.UpdateResident(r.Context(), residentID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resident == nil {
		s.errorResponse(w, http.StatusNotFound, "Resident not found")
		return
	}

	name := certify.FullName(resident.FirstName, resident.MiddleName, resident.LastName, resident.Suffix)
	s.logAction(r, db.HistoryLogInput{
		Action:       "updated the resident record of " + name,
		ModuleType:   "Residents",
		ResidentID:   resident.ID.String(),
		ResidentName: name,
	})

	s.jsonResponse(w, http.StatusOK, resident)
}
