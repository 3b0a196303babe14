package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicateSerial indicates the serial number is already on record.
// Serial numbers are unique across all certificate types.
var ErrDuplicateSerial = errors.New("serial number already exists")

// CertificateInput holds the writable fields of a certificate record
type CertificateInput struct {
	ResidentID      uuid.UUID `json:"resident_id"`
	CertificateType string    `json:"certificate_type"`
	SerialNumber    string    `json:"serial_number"`
	Purpose         string    `json:"purpose"`
	IssueDate       Date      `json:"issue_date"`
	PlaceIssued     string    `json:"place_issued"`
	Amount          string    `json:"amount"`
}

const certificateColumns = `c.id, c.resident_id, c.certificate_type, c.serial_number,
	COALESCE(c.purpose, ''), c.issue_date, COALESCE(c.place_issued, ''),
	COALESCE(c.amount, ''), c.created_at,
	r.first_name, r.last_name, COALESCE(r.middle_name, ''), COALESCE(r.suffix, '')`

func scanCertificate(row pgx.Row) (*Certificate, error) {
	var c Certificate
	err := row.Scan(&c.ID, &c.ResidentID, &c.CertificateType, &c.SerialNumber,
		&c.Purpose, &c.IssueDate, &c.PlaceIssued, &c.Amount, &c.CreatedAt,
		&c.FirstName, &c.LastName, &c.MiddleName, &c.Suffix)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCertificates retrieves all issued certificates, most recent first
func (db *DB) ListCertificates(ctx context.Context) ([]Certificate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+certificateColumns+`
		 FROM certificates c
		 JOIN residents r ON r.id = c.resident_id
		 ORDER BY c.issue_date DESC, c.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	var certificates []Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, *c)
	}
	return certificates, nil
}

// SerialExists reports whether a serial number is already on record
func (db *DB) SerialExists(ctx context.Context, serialNumber string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM certificates WHERE serial_number = $1)`,
		serialNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check serial number: %w", err)
	}
	return exists, nil
}

// CreateCertificate records an issued certificate. Returns ErrDuplicateSerial
// when the serial number is already taken; the unique index is the authority,
// not a prior existence check, so concurrent issuance cannot race.
func (db *DB) CreateCertificate(ctx context.Context, input *CertificateInput) (*Certificate, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO certificates
		 (resident_id, certificate_type, serial_number, purpose, issue_date, place_issued, amount)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''))
		 RETURNING id`,
		input.ResidentID, input.CertificateType, input.SerialNumber,
		input.Purpose, input.IssueDate, input.PlaceIssued, input.Amount,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSerial
		}
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	c, err := scanCertificate(db.pool.QueryRow(ctx,
		`SELECT `+certificateColumns+`
		 FROM certificates c
		 JOIN residents r ON r.id = c.resident_id
		 WHERE c.id = $1`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return c, nil
}
