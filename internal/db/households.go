package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListHouseholds retrieves all households with their member counts
func (db *DB) ListHouseholds(ctx context.Context) ([]Household, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT h.id, h.household_name, h.address, COALESCE(h.purok, ''), h.created_at,
		        COUNT(hm.id) AS member_count
		 FROM households h
		 LEFT JOIN household_members hm ON hm.household_id = h.id
		 GROUP BY h.id
		 ORDER BY h.household_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list households: %w", err)
	}
	defer rows.Close()

	var households []Household
	for rows.Next() {
		var h Household
		if err := rows.Scan(&h.ID, &h.HouseholdName, &h.Address, &h.Purok, &h.CreatedAt, &h.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan household: %w", err)
		}
		households = append(households, h)
	}
	return households, nil
}

// CreateHousehold inserts a new household record
func (db *DB) CreateHousehold(ctx context.Context, name, address, purok string) (*Household, error) {
	var h Household
	err := db.pool.QueryRow(ctx,
		`INSERT INTO households (household_name, address, purok)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id, household_name, address, COALESCE(purok, ''), created_at`,
		name, address, purok,
	).Scan(&h.ID, &h.HouseholdName, &h.Address, &h.Purok, &h.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}
	return &h, nil
}

// UpdateHousehold updates a household and returns the updated row,
// or nil when the household does not exist
func (db *DB) UpdateHousehold(ctx context.Context, id uuid.UUID, name, address, purok string) (*Household, error) {
	var h Household
	err := db.pool.QueryRow(ctx,
		`UPDATE households
		 SET household_name = $1, address = $2, purok = NULLIF($3, '')
		 WHERE id = $4
		 RETURNING id, household_name, address, COALESCE(purok, ''), created_at`,
		name, address, purok, id,
	).Scan(&h.ID, &h.HouseholdName, &h.Address, &h.Purok, &h.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update household: %w", err)
	}
	return &h, nil
}

// ListHouseholdMembers retrieves the members of a household with their
// resident details and computed age
func (db *DB) ListHouseholdMembers(ctx context.Context, householdID uuid.UUID) ([]HouseholdMember, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT hm.id, r.id AS resident_id, r.first_name, r.last_name,
		        COALESCE(r.middle_name, ''), COALESCE(r.suffix, ''), r.birthdate,
		        COALESCE(r.civil_status, ''), COALESCE(r.contact_no, ''),
		        COALESCE(r.employment_status, 'Not Working'),
		        COALESCE(hm.relation_to_head, ''),
		        DATE_PART('year', AGE(r.birthdate))::int AS age
		 FROM household_members hm
		 JOIN residents r ON r.id = hm.resident_id
		 WHERE hm.household_id = $1
		 ORDER BY r.last_name, r.first_name`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list household members: %w", err)
	}
	defer rows.Close()

	var members []HouseholdMember
	for rows.Next() {
		var m HouseholdMember
		if err := rows.Scan(&m.ID, &m.ResidentID, &m.FirstName, &m.LastName,
			&m.MiddleName, &m.Suffix, &m.Birthdate, &m.CivilStatus, &m.ContactNo,
			&m.EmploymentStatus, &m.RelationToHead, &m.Age); err != nil {
			return nil, fmt.Errorf("failed to scan household member: %w", err)
		}
		members = append(members, m)
	}
	return members, nil
}

// AddHouseholdMember joins a resident to a household
func (db *DB) AddHouseholdMember(ctx context.Context, householdID, residentID uuid.UUID, relationToHead string) (*HouseholdMember, error) {
	var m HouseholdMember
	err := db.pool.QueryRow(ctx,
		`WITH inserted AS (
		   INSERT INTO household_members (household_id, resident_id, relation_to_head)
		   VALUES ($1, $2, NULLIF($3, ''))
		   RETURNING id, resident_id, relation_to_head
		 )
		 SELECT i.id, r.id, r.first_name, r.last_name, COALESCE(i.relation_to_head, '')
		 FROM inserted i
		 JOIN residents r ON r.id = i.resident_id`,
		householdID, residentID, relationToHead,
	).Scan(&m.ID, &m.ResidentID, &m.FirstName, &m.LastName, &m.RelationToHead)
	if err != nil {
		return nil, fmt.Errorf("failed to add household member: %w", err)
	}
	return &m, nil
}
