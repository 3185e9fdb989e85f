package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Job lifecycle statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job is a queued or finished route computation.
type Job struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Params    string    `json:"params"`
	Result    string    `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateJob inserts a new pending job with the given JSON-encoded params.
func (s *Store) CreateJob(ctx context.Context, id, params string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (id, status, params) VALUES (?, ?, ?)`,
		id, StatusPending, params)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJob fetches a job by ID.
func (s *Store) GetJob(ctx context.Context, id string) (*Job, error) {
	var (
		j              Job
		result, errMsg sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, status, progress, params, result, error, created_at, updated_at
		 FROM jobs WHERE id = ?`, id,
	).Scan(&j.ID, &j.Status, &j.Progress, &j.Params, &result, &errMsg, &j.CreatedAt, &j.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	j.Result = result.String
	j.Error = errMsg.String

	return &j, nil
}

// SetProgress marks a job processing at the given completion percentage.
func (s *Store) SetProgress(ctx context.Context, id string, progress int) error {
	return s.updateJob(ctx,
		`UPDATE jobs SET status = ?, progress = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		StatusProcessing, progress, id)
}

// CompleteJob stores the JSON-encoded result and marks the job completed.
func (s *Store) CompleteJob(ctx context.Context, id, result string) error {
	return s.updateJob(ctx,
		`UPDATE jobs SET status = ?, progress = 100, result = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		StatusCompleted, result, id)
}

// FailJob records the failure message and marks the job failed.
func (s *Store) FailJob(ctx context.Context, id, errMsg string) error {
	return s.updateJob(ctx,
		`UPDATE jobs SET status = ?, error = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		StatusFailed, errMsg, id)
}

func (s *Store) updateJob(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrJobNotFound
	}
	return nil
}

// ListPending returns IDs of jobs still waiting for a worker, oldest first.
// Used on startup to requeue work that a previous process left behind.
func (s *Store) ListPending(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM jobs WHERE status = ? ORDER BY created_at ASC`, StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending jobs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan job id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}
