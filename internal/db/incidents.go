package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// IncidentInput holds the writable fields of an incident record
type IncidentInput struct {
	IncidentDate    Date       `json:"incident_date"`
	IncidentType    string     `json:"incident_type"`
	Location        string     `json:"location"`
	Description     string     `json:"description"`
	ComplainantID   *uuid.UUID `json:"complainant_id"`
	ComplainantName string     `json:"complainant_name"`
	RespondentID    *uuid.UUID `json:"respondent_id"`
	Status          string     `json:"status"`
}

const incidentColumns = `i.id, i.incident_date, i.incident_type, COALESCE(i.location, ''),
	COALESCE(i.description, ''), i.complainant_id, COALESCE(i.complainant_name, ''),
	i.respondent_id, i.status, i.created_at,
	COALESCE(c.first_name, ''), COALESCE(c.last_name, ''),
	COALESCE(r.first_name, ''), COALESCE(r.last_name, '')`

const incidentJoins = `FROM incidents i
	LEFT JOIN residents c ON c.id = i.complainant_id
	LEFT JOIN residents r ON r.id = i.respondent_id`

func scanIncident(row pgx.Row) (*Incident, error) {
	var in Incident
	err := row.Scan(&in.ID, &in.IncidentDate, &in.IncidentType, &in.Location,
		&in.Description, &in.ComplainantID, &in.ComplainantName,
		&in.RespondentID, &in.Status, &in.CreatedAt,
		&in.ComplainantFirstName, &in.ComplainantLastName,
		&in.RespondentFirstName, &in.RespondentLastName)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// ListIncidents retrieves all incidents, most recent first, with the linked
// complainant and respondent names
func (db *DB) ListIncidents(ctx context.Context) ([]Incident, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+incidentColumns+` `+incidentJoins+` ORDER BY i.incident_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	var incidents []Incident
	for rows.Next() {
		in, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident: %w", err)
		}
		incidents = append(incidents, *in)
	}
	return incidents, nil
}

// GetIncidentByID retrieves one incident by its UUID
func (db *DB) GetIncidentByID(ctx context.Context, id uuid.UUID) (*Incident, error) {
	in, err := scanIncident(db.pool.QueryRow(ctx,
		`SELECT `+incidentColumns+` `+incidentJoins+` WHERE i.id = $1`, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return in, nil
}

// CreateIncident inserts a new incident record
func (db *DB) CreateIncident(ctx context.Context, input *IncidentInput) (*Incident, error) {
	status := input.Status
	if status == "" {
		status = "Open"
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO incidents
		 (incident_date, incident_type, location, description,
		  complainant_id, complainant_name, respondent_id, status)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)
		 RETURNING id`,
		input.IncidentDate, input.IncidentType, input.Location, input.Description,
		input.ComplainantID, input.ComplainantName, input.RespondentID, status,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return db.GetIncidentByID(ctx, id)
}

// UpdateIncident updates an incident and returns the updated row,
// or nil when the incident does not exist
func (db *DB) UpdateIncident(ctx context.Context, id uuid.UUID, input *IncidentInput) (*Incident, error) {
	status := input.Status
	if status == "" {
		status = "Open"
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE incidents SET
		   incident_date = $1, incident_type = $2, location = NULLIF($3, ''),
		   description = NULLIF($4, ''), complainant_id = $5,
		   complainant_name = NULLIF($6, ''), respondent_id = $7, status = $8
		 WHERE id = $9`,
		input.IncidentDate, input.IncidentType, input.Location, input.Description,
		input.ComplainantID, input.ComplainantName, input.RespondentID, status, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}
	return db.GetIncidentByID(ctx, id)
}
