package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeledger/internal/db"
	"github.com/alexanderramin/timeledger/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo on the task_assignments table.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

const assignmentColumns = `id, task_id, user_id, progress_notes, assigned_at`

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO task_assignments (` + assignmentColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.TaskID,
		a.SubjectID,
		a.ProgressNotes,
		formatTime(a.AssignedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) ListBySubject(ctx context.Context, subjectID string) ([]domain.Assignment, error) {
	return r.query(ctx,
		`SELECT `+assignmentColumns+` FROM task_assignments WHERE user_id = ? ORDER BY assigned_at, id`,
		subjectID)
}

func (r *SQLiteAssignmentRepo) ListByTask(ctx context.Context, taskID string) ([]domain.Assignment, error) {
	return r.query(ctx,
		`SELECT `+assignmentColumns+` FROM task_assignments WHERE task_id = ? ORDER BY assigned_at, id`,
		taskID)
}

func (r *SQLiteAssignmentRepo) query(ctx context.Context, query string, args ...any) ([]domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing task assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var assignedAt string
		if err := rows.Scan(&a.ID, &a.TaskID, &a.SubjectID, &a.ProgressNotes, &assignedAt); err != nil {
			return nil, fmt.Errorf("scanning task assignment: %w", err)
		}
		if a.AssignedAt, err = parseTime("assigned_at", assignedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task assignments: %w", err)
	}
	return out, nil
}
