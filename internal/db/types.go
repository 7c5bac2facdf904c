package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a recruiter account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Job represents a job posting owned by a user
type Job struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Skills      StringArray `json:"skills"` // JSONB array
	Status      string      `json:"status"`
	CreatedBy   uuid.UUID   `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// JobUpdate carries the fields to change on a job. Nil fields are kept.
type JobUpdate struct {
	Title       *string
	Description *string
	Skills      []string
	Status      *string
}

// Candidate represents a scored resume submitted for a job
type Candidate struct {
	ID              uuid.UUID   `json:"id"`
	JobID           uuid.UUID   `json:"job_id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	ResumeText      string      `json:"resume_text"`
	Skills          StringArray `json:"skills"`
	TextSimilarity  float64     `json:"text_similarity"`
	SkillMatch      float64     `json:"skill_match"`
	ExperienceScore float64     `json:"experience"`
	MatchScore      int         `json:"match_score"`
	Notes           string      `json:"notes,omitempty"`
	UploadedBy      uuid.UUID   `json:"uploaded_by"`
	ResumeFile      []byte      `json:"-"`
	ContentType     string      `json:"content_type,omitempty"`
	FileName        string      `json:"filename,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// StringArray is a []string stored as a JSONB array
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}
	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
