package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ResidentInput holds the writable fields of a resident record
type ResidentInput struct {
	LastName         string `json:"last_name"`
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	Suffix           string `json:"suffix"`
	Sex              string `json:"sex"`
	Birthdate        *Date  `json:"birthdate"`
	CivilStatus      string `json:"civil_status"`
	ContactNo        string `json:"contact_no"`
	Address          string `json:"address"`
	Citizenship      string `json:"citizenship"`
	EmploymentStatus string `json:"employment_status"`
}

const residentColumns = `id, last_name, first_name, COALESCE(middle_name, ''), COALESCE(suffix, ''),
	sex, birthdate, COALESCE(civil_status, ''), COALESCE(contact_no, ''), COALESCE(address, ''),
	COALESCE(citizenship, 'Filipino'), COALESCE(employment_status, 'Not Working'), created_at`

func scanResident(row pgx.Row) (*Resident, error) {
	var r Resident
	err := row.Scan(&r.ID, &r.LastName, &r.FirstName, &r.MiddleName, &r.Suffix,
		&r.Sex, &r.Birthdate, &r.CivilStatus, &r.ContactNo, &r.Address,
		&r.Citizenship, &r.EmploymentStatus, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListResidents retrieves all residents ordered by name
func (db *DB) ListResidents(ctx context.Context) ([]Resident, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+residentColumns+` FROM residents ORDER BY last_name, first_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	var residents []Resident
	for rows.Next() {
		r, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resident: %w", err)
		}
		residents = append(residents, *r)
	}
	return residents, nil
}

// GetResidentByID retrieves a resident by its UUID
func (db *DB) GetResidentByID(ctx context.Context, id uuid.UUID) (*Resident, error) {
	r, err := scanResident(db.pool.QueryRow(ctx,
		`SELECT `+residentColumns+` FROM residents WHERE id = $1`, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}
	return r, nil
}

// CreateResident inserts a new resident record
func (db *DB) CreateResident(ctx context.Context, input *ResidentInput) (*Resident, error) {
	if input.Citizenship == "" {
		input.Citizenship = "Filipino"
	}
	if input.EmploymentStatus == "" {
		input.EmploymentStatus = "Not Working"
	}

	r, err := scanResident(db.pool.QueryRow(ctx,
		`INSERT INTO residents
		 (last_name, first_name, middle_name, suffix, sex, birthdate,
		  civil_status, contact_no, address, citizenship, employment_status)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6,
		         NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11)
		 RETURNING `+residentColumns,
		input.LastName, input.FirstName, input.MiddleName, input.Suffix,
		input.Sex, input.Birthdate, input.CivilStatus, input.ContactNo,
		input.Address, input.Citizenship, input.EmploymentStatus,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resident: %w", err)
	}
	return r, nil
}

// UpdateResident updates a resident record and returns the updated row,
// or nil when the resident does not exist
func (db *DB) UpdateResident(ctx context.Context, id uuid.UUID, input *ResidentInput) (*Resident, error) {
	r, err := scanResident(db.pool.QueryRow(ctx,
		`UPDATE residents SET
		   last_name = $1, first_name = $2, middle_name = NULLIF($3, ''),
		   suffix = NULLIF($4, ''), sex = $5, birthdate = $6,
		   civil_status = NULLIF($7, ''), contact_no = NULLIF($8, ''),
		   address = NULLIF($9, ''), citizenship = NULLIF($10, ''),
		   employment_status = NULLIF($11, '')
		 WHERE id = $12
		 RETURNING `+residentColumns,
		input.LastName, input.FirstName, input.MiddleName, input.Suffix,
		input.Sex, input.Birthdate, input.CivilStatus, input.ContactNo,
		input.Address, input.Citizenship, input.EmploymentStatus, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resident: %w", err)
	}
	return r, nil
}
