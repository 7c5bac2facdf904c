package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Job Methods
// -----------------------------------------------------------------------------

const jobColumns = `id, title, description, skills, status, created_by, created_at, updated_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Skills, &j.Status,
		&j.CreatedBy, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

// CreateJob inserts a job owned by createdBy
func (db *DB) CreateJob(ctx context.Context, createdBy uuid.UUID, title, description string, skills []string, status string) (*Job, error) {
	j, err := scanJob(db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, skills, status, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+jobColumns,
		title, description, StringArray(skills), status, createdBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// GetJob retrieves a job by ID
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	j, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobsByOwner lists the jobs created by a user, newest first
func (db *DB) ListJobsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE created_by = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob applies a partial update and returns the updated job
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, upd JobUpdate) (*Job, error) {
	var skills any
	if upd.Skills != nil {
		skills = StringArray(upd.Skills)
	}
	j, err := scanJob(db.pool.QueryRow(ctx,
		`UPDATE jobs SET
		     title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     skills = COALESCE($4::jsonb, skills),
		     status = COALESCE($5, status),
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		id, upd.Title, upd.Description, skills, upd.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return j, nil
}

// DeleteJob removes a job; its candidates are removed by cascade
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return nil
}
