package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/jcmanalo/barangay-records/internal/db"
	"github.com/jcmanalo/barangay-records/internal/server/middleware"
)

// ---------------------------------------------------------------------
// History Log Handlers
// ---------------------------------------------------------------------

// logAction records an audit-trail entry for the authenticated user. Logging
// never blocks the request that triggered it: unauthenticated requests are
// skipped and insert failures are only logged.
func (s *Server) logAction(r *http.Request, input db.HistoryLogInput) {
	claims, err := middleware.GetClaims(r)
	if err != nil {
		return
	}

	input.UserID = claims.GetUserID().String()
	input.UserRole = claims.GetRole()
	input.UserName = claims.GetFullName()

	if err := s.db.InsertHistoryLog(r.Context(), &input); err != nil {
		log.Printf("Failed to record history log: %v", err)
	}
}

// handleListHistoryLogs returns the audit trail. Only the Chairman and the
// Secretary may read it.
func (s *Server) handleListHistoryLogs(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.GetClaims(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	role := claims.GetRole()
	if role != "Chairman" && role != "Secretary" {
		s.errorResponse(w, http.StatusForbidden, "Access denied.")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	logs, err := s.db.ListHistoryLogs(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"logs":  logs,
		"count": len(logs),
	})
}
