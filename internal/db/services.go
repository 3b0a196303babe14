package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ServiceInput holds the writable fields of a service record
type ServiceInput struct {
	ServiceName string `json:"service_name"`
	Description string `json:"description"`
	ServiceDate *Date  `json:"service_date"`
	Location    string `json:"location"`
}

// ListServices retrieves all services, most recent first
func (db *DB) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, service_name, COALESCE(description, ''), service_date,
		        COALESCE(location, ''), created_at
		 FROM services ORDER BY service_date DESC NULLS LAST, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.ServiceName, &s.Description, &s.ServiceDate, &s.Location, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// CreateService inserts a new service record
func (db *DB) CreateService(ctx context.Context, input *ServiceInput) (*Service, error) {
	var s Service
	err := db.pool.QueryRow(ctx,
		`INSERT INTO services (service_name, description, service_date, location)
		 VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''))
		 RETURNING id, service_name, COALESCE(description, ''), service_date,
		           COALESCE(location, ''), created_at`,
		input.ServiceName, input.Description, input.ServiceDate, input.Location,
	).Scan(&s.ID, &s.ServiceName, &s.Description, &s.ServiceDate, &s.Location, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &s, nil
}

// UpdateService updates a service and returns the updated row,
// or nil when the service does not exist
func (db *DB) UpdateService(ctx context.Context, id uuid.UUID, input *ServiceInput) (*Service, error) {
	var s Service
	err := db.pool.QueryRow(ctx,
		`UPDATE services SET
		   service_name = $1, description = NULLIF($2, ''),
		   service_date = $3, location = NULLIF($4, '')
		 WHERE id = $5
		 RETURNING id, service_name, COALESCE(description, ''), service_date,
		           COALESCE(location, ''), created_at`,
		input.ServiceName, input.Description, input.ServiceDate, input.Location, id,
	).Scan(&s.ID, &s.ServiceName, &s.Description, &s.ServiceDate, &s.Location, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &s, nil
}

// ListServiceBeneficiaries retrieves the beneficiaries of a service with
// their resident names
func (db *DB) ListServiceBeneficiaries(ctx context.Context, serviceID uuid.UUID) ([]ServiceBeneficiary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT sb.id, r.id AS resident_id, r.first_name, r.last_name, COALESCE(sb.notes, '')
		 FROM service_beneficiaries sb
		 JOIN residents r ON r.id = sb.resident_id
		 WHERE sb.service_id = $1
		 ORDER BY r.last_name, r.first_name`,
		serviceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list service beneficiaries: %w", err)
	}
	defer rows.Close()

	var beneficiaries []ServiceBeneficiary
	for rows.Next() {
		var b ServiceBeneficiary
		if err := rows.Scan(&b.ID, &b.ResidentID, &b.FirstName, &b.LastName, &b.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan service beneficiary: %w", err)
		}
		beneficiaries = append(beneficiaries, b)
	}
	return beneficiaries, nil
}

// AddServiceBeneficiary joins a resident to a service
func (db *DB) AddServiceBeneficiary(ctx context.Context, serviceID, residentID uuid.UUID, notes string) (*ServiceBeneficiary, error) {
	var b ServiceBeneficiary
	err := db.pool.QueryRow(ctx,
		`WITH inserted AS (
		   INSERT INTO service_beneficiaries (service_id, resident_id, notes)
		   VALUES ($1, $2, NULLIF($3, ''))
		   RETURNING id, resident_id, notes
		 )
		 SELECT i.id, r.id, r.first_name, r.last_name, COALESCE(i.notes, '')
		 FROM inserted i
		 JOIN residents r ON r.id = i.resident_id`,
		serviceID, residentID, notes,
	).Scan(&b.ID, &b.ResidentID, &b.FirstName, &b.LastName, &b.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to add service beneficiary: %w", err)
	}
	return &b, nil
}
