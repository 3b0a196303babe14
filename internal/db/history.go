package db

import (
	"context"
	"fmt"
)

// HistoryLogInput holds the fields of one audit-trail entry
type HistoryLogInput struct {
	UserID          string
	UserRole        string
	UserName        string
	Action          string
	ModuleType      string
	CertificateType string
	ResidentID      string
	ResidentName    string
	Details         string
}

// InsertHistoryLog records one audit-trail entry
func (db *DB) InsertHistoryLog(ctx context.Context, input *HistoryLogInput) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO history_logs
		 (user_id, user_role, user_name, action, module_type, certificate_type,
		  resident_id, resident_name, details)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''),
		         NULLIF($7, '')::uuid, NULLIF($8, ''), NULLIF($9, ''))`,
		input.UserID, input.UserRole, input.UserName, input.Action,
		input.ModuleType, input.CertificateType,
		input.ResidentID, input.ResidentName, input.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history log: %w", err)
	}
	return nil
}

// ListHistoryLogs retrieves the most recent audit-trail entries
func (db *DB) ListHistoryLogs(ctx context.Context, limit int) ([]HistoryLog, error) {
	if limit <= 0 {
		limit = 1000
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, user_role, user_name, action,
		        COALESCE(module_type, ''), COALESCE(certificate_type, ''),
		        resident_id, COALESCE(resident_name, ''), COALESCE(details, ''), created_at
		 FROM history_logs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history logs: %w", err)
	}
	defer rows.Close()

	var logs []HistoryLog
	for rows.Next() {
		var l HistoryLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.UserRole, &l.UserName, &l.Action,
			&l.ModuleType, &l.CertificateType, &l.ResidentID, &l.ResidentName,
			&l.Details, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, nil
}
