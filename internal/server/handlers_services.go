package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/db"
)

// ---------------------------------------------------------------------
// Service / Program Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.db.ListServices(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"services": services,
		"count":    len(services),
	})
}

func (s *Server) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var req db.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ServiceName == "" {
		s.errorResponse(w, http.StatusBadRequest, "Service name is required")
		return
	}

	service, err := s.db.CreateService(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "added the service " + service.ServiceName,
		ModuleType: "Services",
	})

	s.jsonResponse(w, http.StatusCreated, service)
}

func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	serviceID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req db.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ServiceName == "" {
		s.errorResponse(w, http.StatusBadRequest, "Service name is required")
		return
	}

	service, err := s.db.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if service == nil {
		s.errorResponse(w, http.StatusNotFound, "Service not found")
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "updated the service " + service.ServiceName,
		ModuleType: "Services",
	})

	s.jsonResponse(w, http.StatusOK, service)
}

func (s *Server) handleListServiceBeneficiaries(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	serviceID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	beneficiaries, err := s.db.ListServiceBeneficiaries(r.Context(), serviceID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"beneficiaries": beneficiaries,
		"count":         len(beneficiaries),
	})
}

func (s *Server) handleAddServiceBeneficiary(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	serviceID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req struct {
		ResidentID string `json:"resident_id"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	residentID, err := uuid.Parse(req.ResidentID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resident ID")
		return
	}

	beneficiary, err := s.db.AddServiceBeneficiary(r.Context(), serviceID, residentID, req.Notes)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, beneficiary)
}
