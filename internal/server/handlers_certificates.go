package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/certify"
	"github.com/jcmanalo/barangay-records/internal/db"
	"github.com/jcmanalo/barangay-records/internal/render"
)

// ---------------------------------------------------------------------
// Certificate Handlers
// ---------------------------------------------------------------------

// GenerateCertificateRequest is the payload for the generation endpoint.
// Letterhead fields default from the barangay profile and may be overridden
// per request.
type GenerateCertificateRequest struct {
	ResidentID      string `json:"resident_id"`
	CertificateType string `json:"certificate_type"`
	SerialNumber    string `json:"serial_number"`
	Purpose         string `json:"purpose"`
	IssueDate       string `json:"issue_date"` // YYYY-MM-DD; empty means today
	PlaceIssued     string `json:"place_issued"`
	Amount          string `json:"amount"`
	ResidencyYears  string `json:"residency_years"`
	CaptainName     string `json:"captain_name"`
	SecretaryName   string `json:"secretary_name"`
	CoWitnessName   string `json:"co_witness_name"`
}

// Artifact is one rendered document. Data is base64-encoded in JSON.
type Artifact struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

// GenerateCertificateResponse carries all three renderings of one
// certificate. Warning is set when the documents were produced but the
// issuance could not be recorded.
type GenerateCertificateResponse struct {
	CertificateType string          `json:"certificate_type"`
	SerialNumber    string          `json:"serial_number"`
	PDF             Artifact        `json:"pdf"`
	Docx            Artifact        `json:"docx"`
	PreviewHTML     string          `json:"preview_html"`
	Certificate     *db.Certificate `json:"certificate,omitempty"`
	Warning         string          `json:"warning,omitempty"`
}

func (s *Server) handleListCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := s.db.ListCertificates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"certificates": certificates,
		"count":        len(certificates),
	})
}

// handleListCertificateTypes returns the fixed certificate catalog for
// pickers.
func (s *Server) handleListCertificateTypes(w http.ResponseWriter, _ *http.Request) {
	catalog := make([]map[string]any, 0, len(certify.Types()))
	for _, t := range certify.Types() {
		d, err := certify.Lookup(t)
		if err != nil {
			continue
		}
		catalog = append(catalog, map[string]any{
			"type":            d.Type,
			"label":           d.Label,
			"document_title":  d.DocumentTitle,
			"serial_prefix":   d.SerialPrefix,
			"validity_months": d.ValidityMonths,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"types": catalog,
		"count": len(catalog),
	})
}

// handleCreateCertificate records an issuance without rendering documents,
// for certificates prepared outside the system.
func (s *Server) handleCreateCertificate(w http.ResponseWriter, r *http.Request) {
	var req db.CertificateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ResidentID == uuid.Nil || req.CertificateType == "" || req.SerialNumber == "" || req.IssueDate.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "Resident, certificate type, serial number, and issue date are required")
		return
	}
	desc, err := certify.Lookup(certify.Type(req.CertificateType))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Unknown certificate type: "+req.CertificateType)
		return
	}

	cert, err := s.db.CreateCertificate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateSerial) {
			s.metrics.DuplicateSerials.Inc()
			s.errorResponse(w, http.StatusBadRequest, "Serial number already exists.")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	name := certify.FullName(cert.FirstName, cert.MiddleName, cert.LastName, cert.Suffix)
	s.logAction(r, db.HistoryLogInput{
		Action:          "released the " + desc.Label + " of " + name,
		ModuleType:      "Certificates",
		CertificateType: string(desc.Type),
		ResidentID:      cert.ResidentID.String(),
		ResidentName:    name,
		Details:         "Serial Number: " + cert.SerialNumber,
	})

	s.jsonResponse(w, http.StatusCreated, cert)
}

// handleGenerateCertificate binds a resident against a certificate template
// and renders the PDF, the Word document, and the HTML preview in one pass.
// Persisting the issuance never aborts delivery of the documents; failures
// there surface as a warning on an otherwise successful response.
func (s *Server) handleGenerateCertificate(w http.ResponseWriter, r *http.Request) {
	var req GenerateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	residentID, err := uuid.Parse(req.ResidentID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resident ID")
		return
	}

	certType := certify.Type(req.CertificateType)
	desc, err := certify.Lookup(certType)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Unknown certificate type: "+req.CertificateType)
		return
	}

	var issueDate time.Time
	if req.IssueDate != "" {
		issueDate, err = time.Parse("2006-01-02", req.IssueDate)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid issue date, expected YYYY-MM-DD")
			return
		}
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

	profile, err := s.db.GetProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusBadRequest, "Barangay profile must be configured before generating certificates")
		return
	}

	captain, err := s.db.GetCaptain(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	secretary, err := s.db.GetSecretary(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	placeIssued := req.PlaceIssued
	if placeIssued == "" {
		placeIssued = profile.PlaceIssued
	}

	coWitness := req.CoWitnessName
	if coWitness == "" {
		coWitness = s.coWitness
	}

	form := certify.Form{
		Purpose:        req.Purpose,
		IssueDate:      issueDate,
		SerialNumber:   req.SerialNumber,
		PlaceIssued:    placeIssued,
		Amount:         req.Amount,
		BarangayName:   profile.BarangayName,
		Municipality:   profile.Municipality,
		Province:       profile.Province,
		CaptainName:    req.CaptainName,
		SecretaryName:  req.SecretaryName,
		CoWitnessName:  coWitness,
		ResidencyYears: req.ResidencyYears,
	}
	if form.CaptainName == "" && captain != nil {
		form.CaptainName = captain.FullName
	}
	if form.SecretaryName == "" && secretary != nil {
		form.SecretaryName = secretary.FullName
	}

	var birthdate *time.Time
	if resident.Birthdate != nil && !resident.Birthdate.IsZero() {
		b := resident.Birthdate.Time
		birthdate = &b
	}

	rc, err := certify.Bind(&certify.Resident{
		FirstName:   resident.FirstName,
		MiddleName:  resident.MiddleName,
		LastName:    resident.LastName,
		Suffix:      resident.Suffix,
		Birthdate:   birthdate,
		CivilStatus: resident.CivilStatus,
		Address:     resident.Address,
		Citizenship: resident.Citizenship,
	}, certType, form)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	blocks, err := certify.Compose(rc, certType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdfResult, err := render.PDF(rc, blocks, render.Options{LogoPath: s.logoPath})
	if err != nil {
		s.metrics.RenderFailures.WithLabelValues("pdf").Inc()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF: "+err.Error())
		return
	}
	docxResult, err := render.Docx(rc, blocks)
	if err != nil {
		s.metrics.RenderFailures.WithLabelValues("docx").Inc()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render Word document: "+err.Error())
		return
	}
	previewResult, err := render.Preview(rc, blocks)
	if err != nil {
		s.metrics.RenderFailures.WithLabelValues("preview").Inc()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview: "+err.Error())
		return
	}

	response := GenerateCertificateResponse{
		CertificateType: string(certType),
		SerialNumber:    rc.SerialNumber,
		PDF:             Artifact{Filename: pdfResult.Filename, Data: pdfResult.Data},
		Docx:            Artifact{Filename: docxResult.Filename, Data: docxResult.Data},
		PreviewHTML:     string(previewResult.Data),
	}

	cert, err := s.db.CreateCertificate(r.Context(), &db.CertificateInput{
		ResidentID:      resident.ID,
		CertificateType: string(certType),
		SerialNumber:    rc.SerialNumber,
		Purpose:         rc.Purpose,
		IssueDate:       db.Date{Time: rc.IssueDate},
		PlaceIssued:     rc.PlaceIssued,
		Amount:          req.Amount,
	})
	switch {
	case errors.Is(err, db.ErrDuplicateSerial):
		s.metrics.DuplicateSerials.Inc()
		response.Warning = "Serial number already exists; the issuance was not recorded."
	case err != nil:
		log.Printf("Failed to record certificate issuance: %v", err)
		response.Warning = "The certificate was generated but the issuance could not be recorded."
	default:
		response.Certificate = cert
	}

	s.logAction(r, db.HistoryLogInput{
		Action:          "released the " + desc.Label + " of " + rc.FullName,
		ModuleType:      "Certificates",
		CertificateType: string(certType),
		ResidentID:      resident.ID.String(),
		ResidentName:    rc.FullName,
		Details:         "Serial Number: " + rc.SerialNumber,
	})

	s.metrics.CertificatesIssued.WithLabelValues(string(certType)).Inc()

	s.jsonResponse(w, http.StatusOK, response)
}
