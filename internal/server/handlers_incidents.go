package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/db"
)

// ---------------------------------------------------------------------
// Incident (Blotter) Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := s.db.ListIncidents(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"count":     len(incidents),
	})
}

func (s *Server) handleGetIncident(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	incidentID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid incident ID")
		return
	}

	incident, err := s.db.GetIncidentByID(r.Context(), incidentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if incident == nil {
		s.errorResponse(w, http.StatusNotFound, "Incident not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, incident)
}

func (s *Server) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	var req db.IncidentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.IncidentDate.IsZero() || req.IncidentType == "" {
		s.errorResponse(w, http.StatusBadRequest, "Incident date and type are required")
		return
	}

	incident, err := s.db.CreateIncident(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "recorded a " + incident.IncidentType + " incident",
		ModuleType: "Incidents",
	})

	s.jsonResponse(w, http.StatusCreated, incident)
}

func (s *Server) handleUpdateIncident(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	incidentID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid incident ID")
		return
	}

	var req db.IncidentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.IncidentDate.IsZero() || req.IncidentType == "" {
		s.errorResponse(w, http.StatusBadRequest, "Incident date and type are required")
		return
	}

	incident, err := s.db.UpdateIncident(r.Context(), incidentID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if incident == nil {
		s.errorResponse(w, http.StatusNotFound, "Incident not found")
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "updated a " + incident.IncidentType + " incident",
		ModuleType: "Incidents",
	})

	s.jsonResponse(w, http.StatusOK, incident)
}
