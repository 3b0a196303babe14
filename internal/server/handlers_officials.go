package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/db"
)

// ---------------------------------------------------------------------
// Official Handlers
// ---------------------------------------------------------------------

// maxUploadBytes bounds a single officials multipart request (signature and
// photo images).
const maxUploadBytes = 10 << 20

func (s *Server) handleListOfficials(w http.ResponseWriter, r *http.Request) {
	officials, err := s.db.ListOfficials(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"officials": officials,
		"count":     len(officials),
	})
}

func (s *Server) handleGetOfficial(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	officialID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid official ID")
		return
	}

	official, err := s.db.GetOfficialByID(r.Context(), officialID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if official == nil {
		s.errorResponse(w, http.StatusNotFound, "Official not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, official)
}

func (s *Server) handleCreateOfficial(w http.ResponseWriter, r *http.Request) {
	input, ok := s.officialInputFromForm(w, r)
	if !ok {
		return
	}

	official, err := s.db.CreateOfficial(r.Context(), input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "added the official " + official.FullName,
		ModuleType: "Officials",
	})

	s.jsonResponse(w, http.StatusCreated, official)
}

func (s *Server) handleUpdateOfficial(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	officialID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid official ID")
		return
	}

	input, ok := s.officialInputFromForm(w, r)
	if !ok {
		return
	}

	official, err := s.db.UpdateOfficial(r.Context(), officialID, input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if official == nil {
		s.errorResponse(w, http.StatusNotFound, "Official not found")
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "updated the official " + official.FullName,
		ModuleType: "Officials",
	})

	s.jsonResponse(w, http.StatusOK, official)
}

func (s *Server) handleDeleteOfficial(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	officialID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid official ID")
		return
	}

	if err := s.db.DeleteOfficial(r.Context(), officialID); err != nil {
		if err.Error() == "official not found: "+officialID.String() {
			s.errorResponse(w, http.StatusNotFound, "Official not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.logAction(r, db.HistoryLogInput{
		Action:     "removed an official record",
		ModuleType: "Officials",
	})

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// officialInputFromForm parses the multipart officials form, stores any
// uploaded signature and photo images, and assembles the database input.
// Uploads are optional; an update without files keeps the stored paths.
func (s *Server) officialInputFromForm(w http.ResponseWriter, r *http.Request) (*db.OfficialInput, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}

	input := &db.OfficialInput{
		FullName:    r.FormValue("full_name"),
		Position:    r.FormValue("position"),
		IsCaptain:   parseFormBool(r.FormValue("is_captain")),
		IsSecretary: parseFormBool(r.FormValue("is_secretary")),
	}
	if input.FullName == "" || input.Position == "" {
		s.errorResponse(w, http.StatusBadRequest, "Full name and position are required")
		return nil, false
	}
	if orderNo := r.FormValue("order_no"); orderNo != "" {
		n, err := strconv.Atoi(orderNo)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid order number")
			return nil, false
		}
		input.OrderNo = n
	}

	if file, header, err := r.FormFile("signature"); err == nil {
		defer file.Close()
		path, err := s.storage.SaveSignature(header.Filename, file)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store signature: "+err.Error())
			return nil, false
		}
		input.SignaturePath = path
	}

	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		path, err := s.storage.SavePhoto(header.Filename, file)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store photo: "+err.Error())
			return nil, false
		}
		input.PhotoPath = path
	}

	return input, true
}

// parseFormBool accepts the checkbox encodings frontend forms send.
func parseFormBool(v string) bool {
	switch v {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
