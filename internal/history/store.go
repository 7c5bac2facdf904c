// Package history keeps a local SQLite log of CLI scoring runs.
package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jonathan/candidate-matcher/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS match_history (
	id               TEXT PRIMARY KEY,
	resume_path      TEXT NOT NULL,
	resume_hash      TEXT NOT NULL,
	job_title        TEXT NOT NULL,
	text_similarity  REAL NOT NULL,
	skill_match      REAL NOT NULL,
	experience_score REAL NOT NULL,
	composite_score  INTEGER NOT NULL,
	skills_json      TEXT NOT NULL,
	created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_match_history_created ON match_history(created_at);
`

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// Entry is one recorded scoring run.
type Entry struct {
	ID         string            `json:"id"`
	ResumePath string            `json:"resume_path"`
	ResumeHash string            `json:"resume_hash"`
	JobTitle   string            `json:"job_title"`
	Result     types.MatchResult `json:"result"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Store manages score history in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashResume returns the hex SHA-256 of resume text.
func HashResume(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Record stores e, assigning an ID and timestamp when they are empty.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	skills := e.Result.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO match_history (id, resume_path, resume_hash, job_title, text_similarity,
		                            skill_match, experience_score, composite_score, skills_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ResumePath, e.ResumeHash, e.JobTitle, e.Result.TextSimilarity,
		e.Result.SkillMatch, e.Result.ExperienceScore, e.Result.CompositeScore,
		string(skillsJSON), e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, resume_path, resume_hash, job_title, text_similarity, skill_match,
		        experience_score, composite_score, skills_json, created_at
		 FROM match_history ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var skillsJSON, createdAt string
		if err := rows.Scan(&e.ID, &e.ResumePath, &e.ResumeHash, &e.JobTitle,
			&e.Result.TextSimilarity, &e.Result.SkillMatch, &e.Result.ExperienceScore,
			&e.Result.CompositeScore, &skillsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		if err := json.Unmarshal([]byte(skillsJSON), &e.Result.Skills); err != nil {
			return nil, fmt.Errorf("unmarshal skills: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}
