package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetProfile retrieves the single barangay profile row, or nil when the
// profile has not been configured yet
func (db *DB) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, barangay_name, municipality, province, COALESCE(place_issued, '')
		 FROM barangay_profile LIMIT 1`,
	).Scan(&p.ID, &p.BarangayName, &p.Municipality, &p.Province, &p.PlaceIssued)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get barangay profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile creates or updates the single barangay profile row
func (db *DB) UpsertProfile(ctx context.Context, barangayName, municipality, province, placeIssued string) (*Profile, error) {
	existing, err := db.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	var p Profile
	if existing == nil {
		err = db.pool.QueryRow(ctx,
			`INSERT INTO barangay_profile (barangay_name, municipality, province, place_issued)
			 VALUES ($1, $2, $3, NULLIF($4, ''))
			 RETURNING id, barangay_name, municipality, province, COALESCE(place_issued, '')`,
			barangayName, municipality, province, placeIssued,
		).Scan(&p.ID, &p.BarangayName, &p.Municipality, &p.Province, &p.PlaceIssued)
	} else {
		err = db.pool.QueryRow(ctx,
			`UPDATE barangay_profile
			 SET barangay_name = $1, municipality = $2, province = $3, place_issued = NULLIF($4, '')
			 WHERE id = $5
			 RETURNING id, barangay_name, municipality, province, COALESCE(place_issued, '')`,
			barangayName, municipality, province, placeIssued, existing.ID,
		).Scan(&p.ID, &p.BarangayName, &p.Municipality, &p.Province, &p.PlaceIssued)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save barangay profile: %w", err)
	}
	return &p, nil
}
