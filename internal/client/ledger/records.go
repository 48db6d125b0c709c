package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Record statuses
const (
	StatusPending = "pending" // queued locally, not yet confirmed
	StatusSynced  = "synced"  // confirmed by the server, ServerID set
	StatusFailed  = "failed"  // terminally rejected, Error set
)

// ErrRecordNotFound indicates that no record exists for the given local id.
var ErrRecordNotFound = errors.New("ledger record not found")

// Record is one locally known transaction. Records start pending with only a
// LocalID; a successful sync moves them to synced and fills ServerID.
type Record struct {
	LocalID     string
	ServerID    string
	Action      string
	RecordedFor string
	Amount      float64
	Currency    string
	Category    string
	Context     string
	Date        string
	ReceiptID   string
	Status      string
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Insert stores a new provisional record.
func (s *Storage) Insert(ctx context.Context, r *Record) error {
	now := time.Now().UTC()
	if r.Status == "" {
		r.Status = StatusPending
	}
	r.CreatedAt = now
	r.UpdatedAt = now

	query := `
		INSERT INTO records (
			local_id, server_id, action, recorded_for, amount, currency,
			category, context, date, receipt_id, status, error,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		r.LocalID,
		r.ServerID,
		r.Action,
		r.RecordedFor,
		r.Amount,
		r.Currency,
		r.Category,
		r.Context,
		r.Date,
		r.ReceiptID,
		r.Status,
		r.Error,
		r.CreatedAt.Unix(),
		r.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Get returns the record with the given local id.
func (s *Storage) Get(ctx context.Context, localID string) (*Record, error) {
	query := `
		SELECT local_id, server_id, action, recorded_for, amount, currency,
		       category, context, date, receipt_id, status, error,
		       created_at, updated_at
		FROM records
		WHERE local_id = ?
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, localID))
}

// Reconcile marks a record as confirmed and stores the server-assigned id.
// Applying the same server id twice is harmless; results flagged duplicate go
// through the same path as fresh successes.
func (s *Storage) Reconcile(ctx context.Context, localID, serverID string) error {
	query := `
		UPDATE records
		SET server_id = ?, status = ?, error = '', updated_at = ?
		WHERE local_id = ?
	`
	res, err := s.db.ExecContext(ctx, query, serverID, StatusSynced, time.Now().UTC().Unix(), localID)
	if err != nil {
		return fmt.Errorf("failed to reconcile record: %w", err)
	}
	return checkAffected(res)
}

// MarkFailed marks a record as terminally failed with the server's reason.
func (s *Storage) MarkFailed(ctx context.Context, localID, reason string) error {
	query := `
		UPDATE records
		SET status = ?, error = ?, updated_at = ?
		WHERE local_id = ?
	`
	res, err := s.db.ExecContext(ctx, query, StatusFailed, reason, time.Now().UTC().Unix(), localID)
	if err != nil {
		return fmt.Errorf("failed to mark record failed: %w", err)
	}
	return checkAffected(res)
}

// SetReceiptID stores the resolved receipt id on a pending record.
func (s *Storage) SetReceiptID(ctx context.Context, localID, receiptID string) error {
	query := `UPDATE records SET receipt_id = ?, updated_at = ? WHERE local_id = ?`
	res, err := s.db.ExecContext(ctx, query, receiptID, time.Now().UTC().Unix(), localID)
	if err != nil {
		return fmt.Errorf("failed to set receipt id: %w", err)
	}
	return checkAffected(res)
}

// List returns records newest-first, optionally filtered by status.
func (s *Storage) List(ctx context.Context, status string) ([]*Record, error) {
	query := `
		SELECT local_id, server_id, action, recorded_for, amount, currency,
		       category, context, date, receipt_id, status, error,
		       created_at, updated_at
		FROM records
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, local_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*Record
	for rows.Next() {
		r, err := s.scanRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanOne(row *sql.Row) (*Record, error) {
	r, err := s.scanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Storage) scanRow(row rowScanner) (*Record, error) {
	var (
		r        Record
		serverID sql.NullString
		created  int64
		updated  int64
	)
	err := row.Scan(
		&r.LocalID,
		&serverID,
		&r.Action,
		&r.RecordedFor,
		&r.Amount,
		&r.Currency,
		&r.Category,
		&r.Context,
		&r.Date,
		&r.ReceiptID,
		&r.Status,
		&r.Error,
		&created,
		&updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}
	r.ServerID = serverID.String
	r.CreatedAt = time.Unix(created, 0).UTC()
	r.UpdatedAt = time.Unix(updated, 0).UTC()
	return &r, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}
