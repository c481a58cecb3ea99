package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeledger/internal/db"
	"github.com/alexanderramin/timeledger/internal/domain"
)

// SQLiteClockEventRepo implements ClockEventRepo on the time_entries table.
type SQLiteClockEventRepo struct {
	db db.DBTX
}

func NewSQLiteClockEventRepo(conn db.DBTX) *SQLiteClockEventRepo {
	return &SQLiteClockEventRepo{db: conn}
}

const clockEventColumns = `id, user_id, entry_type, timestamp, notes, created_at`

func (r *SQLiteClockEventRepo) Create(ctx context.Context, e *domain.ClockEvent) error {
	query := `INSERT INTO time_entries (` + clockEventColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.SubjectID,
		string(e.Kind),
		formatTime(e.Timestamp),
		e.Note,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting clock event: %w", err)
	}
	return nil
}

// ListBySubject mirrors the panel's fetch: newest first, optionally capped.
// rowid breaks timestamp ties so the order is stable across calls.
func (r *SQLiteClockEventRepo) ListBySubject(ctx context.Context, subjectID string, limit int) ([]domain.ClockEvent, error) {
	query := `SELECT ` + clockEventColumns + ` FROM time_entries
		WHERE user_id = ?
		ORDER BY timestamp DESC, rowid DESC`
	args := []any{subjectID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.query(ctx, "listing clock events by subject", query, args...)
}

func (r *SQLiteClockEventRepo) ListAll(ctx context.Context) ([]domain.ClockEvent, error) {
	query := `SELECT ` + clockEventColumns + ` FROM time_entries ORDER BY user_id, timestamp, rowid`
	return r.query(ctx, "listing clock events", query)
}

func (r *SQLiteClockEventRepo) query(ctx context.Context, op, query string, args ...any) ([]domain.ClockEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.ClockEvent
	for rows.Next() {
		var e domain.ClockEvent
		var kind, ts, createdAt string
		if err := rows.Scan(&e.ID, &e.SubjectID, &kind, &ts, &e.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning clock event: %w", err)
		}
		// Kinds are copied verbatim; validation belongs to the aggregation step.
		e.Kind = domain.EventKind(kind)
		if e.Timestamp, err = parseTime("timestamp", ts); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clock events: %w", err)
	}
	return out, nil
}
