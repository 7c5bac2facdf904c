package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Candidate Methods
// -----------------------------------------------------------------------------

const candidateColumns = `c.id, c.job_id, c.name, c.email, c.resume_text, c.skills,
	c.text_similarity, c.skill_match, c.experience_score, c.match_score, c.notes,
	c.uploaded_by, c.content_type, c.filename, c.created_at`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	if err := row.Scan(&c.ID, &c.JobID, &c.Name, &c.Email, &c.ResumeText, &c.Skills,
		&c.TextSimilarity, &c.SkillMatch, &c.ExperienceScore, &c.MatchScore, &c.Notes,
		&c.UploadedBy, &c.ContentType, &c.FileName, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCandidate inserts a scored candidate and fills its ID and timestamp
func (db *DB) CreateCandidate(ctx context.Context, c *Candidate) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (job_id, name, email, resume_text, skills, text_similarity,
		                         skill_match, experience_score, match_score, notes,
		                         uploaded_by, resume_file, content_type, filename)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id, created_at`,
		c.JobID, c.Name, c.Email, c.ResumeText, c.Skills, c.TextSimilarity,
		c.SkillMatch, c.ExperienceScore, c.MatchScore, c.Notes,
		c.UploadedBy, c.ResumeFile, c.ContentType, c.FileName,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// GetCandidate retrieves a candidate by ID. The stored resume file is not loaded.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates c WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// GetCandidateFile retrieves the uploaded resume bytes of a candidate
func (db *DB) GetCandidateFile(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var data []byte
	err := db.pool.QueryRow(ctx, `SELECT resume_file FROM candidates WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate file: %w", err)
	}
	return data, nil
}

// ListCandidatesByJob lists a job's candidates, best match first
func (db *DB) ListCandidatesByJob(ctx context.Context, jobID uuid.UUID) ([]Candidate, error) {
	return db.listCandidates(ctx,
		`SELECT `+candidateColumns+` FROM candidates c
		 WHERE c.job_id = $1
		 ORDER BY c.match_score DESC, c.created_at ASC`, jobID)
}

// ListCandidatesByOwner lists candidates across all jobs created by ownerID, best match first
func (db *DB) ListCandidatesByOwner(ctx context.Context, ownerID uuid.UUID) ([]Candidate, error) {
	return db.listCandidates(ctx,
		`SELECT `+candidateColumns+` FROM candidates c
		 JOIN jobs j ON j.id = c.job_id
		 WHERE j.created_by = $1
		 ORDER BY c.match_score DESC, c.created_at ASC`, ownerID)
}

func (db *DB) listCandidates(ctx context.Context, query string, arg uuid.UUID) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

// DeleteCandidate removes a candidate
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}
	return nil
}
