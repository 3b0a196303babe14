package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OfficialInput holds the writable fields of an official record. Empty
// signature or photo paths leave the stored paths untouched on update.
type OfficialInput struct {
	FullName      string
	Position      string
	OrderNo       int
	IsCaptain     bool
	IsSecretary   bool
	SignaturePath string
	PhotoPath     string
}

const officialColumns = `id, full_name, position, order_no, is_captain, is_secretary,
	COALESCE(signature_path, ''), COALESCE(photo_path, '')`

func scanOfficial(row pgx.Row) (*Official, error) {
	var o Official
	err := row.Scan(&o.ID, &o.FullName, &o.Position, &o.OrderNo,
		&o.IsCaptain, &o.IsSecretary, &o.SignaturePath, &o.PhotoPath)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOfficials retrieves all officials in display order
func (db *DB) ListOfficials(ctx context.Context) ([]Official, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+officialColumns+` FROM officials ORDER BY order_no, position, full_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list officials: %w", err)
	}
	defer rows.Close()

	var officials []Official
	for rows.Next() {
		o, err := scanOfficial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan official: %w", err)
		}
		officials = append(officials, *o)
	}
	return officials, nil
}

// GetOfficialByID retrieves one official by its UUID
func (db *DB) GetOfficialByID(ctx context.Context, id uuid.UUID) (*Official, error) {
	o, err := scanOfficial(db.pool.QueryRow(ctx,
		`SELECT `+officialColumns+` FROM officials WHERE id = $1`, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get official: %w", err)
	}
	return o, nil
}

// GetCaptain retrieves the official flagged as Punong Barangay, or nil when
// none is configured
func (db *DB) GetCaptain(ctx context.Context) (*Official, error) {
	o, err := scanOfficial(db.pool.QueryRow(ctx,
		`SELECT `+officialColumns+` FROM officials WHERE is_captain ORDER BY order_no LIMIT 1`,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get captain: %w", err)
	}
	return o, nil
}

// GetSecretary retrieves the official flagged as secretary, or nil when none
// is configured
func (db *DB) GetSecretary(ctx context.Context) (*Official, error) {
	o, err := scanOfficial(db.pool.QueryRow(ctx,
		`SELECT `+officialColumns+` FROM officials WHERE is_secretary ORDER BY order_no LIMIT 1`,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get secretary: %w", err)
	}
	return o, nil
}

// CreateOfficial inserts a new official record
func (db *DB) CreateOfficial(ctx context.Context, input *OfficialInput) (*Official, error) {
	o, err := scanOfficial(db.pool.QueryRow(ctx,
		`INSERT INTO officials
		 (full_name, position, order_no, is_captain, is_secretary, signature_path, photo_path)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
		 RETURNING `+officialColumns,
		input.FullName, input.Position, input.OrderNo, input.IsCaptain,
		input.IsSecretary, input.SignaturePath, input.PhotoPath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create official: %w", err)
	}
	return o, nil
}

// UpdateOfficial updates an official; empty signature or photo paths keep
// the existing stored values. Returns nil when the official does not exist.
func (db *DB) UpdateOfficial(ctx context.Context, id uuid.UUID, input *OfficialInput) (*Official, error) {
	o, err := scanOfficial(db.pool.QueryRow(ctx,
		`UPDATE officials SET
		   full_name = $1, position = $2, order_no = $3,
		   is_captain = $4, is_secretary = $5,
		   signature_path = COALESCE(NULLIF($6, ''), signature_path),
		   photo_path = COALESCE(NULLIF($7, ''), photo_path)
		 WHERE id = $8
		 RETURNING `+officialColumns,
		input.FullName, input.Position, input.OrderNo, input.IsCaptain,
		input.IsSecretary, input.SignaturePath, input.PhotoPath, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update official: %w", err)
	}
	return o, nil
}

// DeleteOfficial removes an official record
func (db *DB) DeleteOfficial(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM officials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete official: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("official not found: %s", id)
	}
	return nil
}
