package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/db"
)

// ---------------------------------------------------------------------
// Household Handlers
// ---------------------------------------------------------------------

type householdRequest struct {
	HouseholdName string `json:"household_name"`
	Address       string `json:"address"`
	Purok         string `json:"purok"`
}

func (s *Server) handleListHouseholds(w http.ResponseWriter, r *http.Request) {
	households, err := s.db.ListHouseholds(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"households": households,
		"count":      len(households),
	})
}

func (s *Server) handleCreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req householdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.HouseholdName == "" || req.Address == "" {
		s.errorResponse(w, http.StatusBadRequest, "Household name and address are required")
		return
	}

	household, err := s.db.CreateHousehold(r.Context(), req.HouseholdName, req.Address, req.Purok)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "added the household " + household.HouseholdName,
		ModuleType: "Households",
	})

	s.jsonResponse(w, http.StatusCreated, household)
}

func (s *Server) handleUpdateHousehold(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	householdID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid household ID")
		return
	}

	var req householdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.HouseholdName == "" || req.Address == "" {
		s.errorResponse(w, http.StatusBadRequest, "Household name and address are required")
		return
	}

	household, err := s.db.UpdateHousehold(r.Context(), householdID, req.HouseholdName, req.Address, req.Purok)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if household == nil {
		s.errorResponse(w, http.StatusNotFound, "Household not found")
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "updated the household " + household.HouseholdName,
		ModuleType: "Households",
	})

	s.jsonResponse(w, http.StatusOK, household)
}

func (s *Server) handleListHouseholdMembers(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	householdID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid household ID")
		return
	}

	members, err := s.db.ListHouseholdMembers(r.Context(), householdID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"members": members,
		"count":   len(members),
	})
}

func (s *Server) handleAddHouseholdMember(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	householdID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid household ID")
		return
	}

	var req struct {
		ResidentID     string `json:"resident_id"`
		RelationToHead string `json:"relation_to_head"`
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

	member, err := s.db.AddHouseholdMember(r.Context(), householdID, residentID, req.RelationToHead)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, member)
}
