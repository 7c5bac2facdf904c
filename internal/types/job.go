//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Job statuses accepted by the API.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// JobSpec is the minimal description of a job needed for scoring.
// The CLI reads it from JSON files.
type JobSpec struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// CreateJobRequest represents a request to create a job posting.
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=100"`
	Description string   `json:"description" validate:"required,notblank,max=1000"`
	Skills      []string `json:"skills" validate:"required,min=1,dive,notblank"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=open closed draft"`
}

// UpdateJobRequest represents a partial update of a job posting.
// Nil fields are left unchanged.
type UpdateJobRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,notblank,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,notblank,max=1000"`
	Skills      []string `json:"skills,omitempty" validate:"omitempty,min=1,dive,notblank"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=open closed draft"`
}

// Validate validates the CreateJobRequest and fills the default status.
func (r *CreateJobRequest) Validate() error {
	if err := newValidator().Struct(r); err != nil {
		return err
	}
	if r.Status == "" {
		r.Status = JobStatusOpen
	}
	r.Skills = trimAll(r.Skills)
	return nil
}

// Validate validates the UpdateJobRequest.
func (r *UpdateJobRequest) Validate() error {
	if err := newValidator().Struct(r); err != nil {
		return err
	}
	r.Skills = trimAll(r.Skills)
	return nil
}

// Spec returns the scoring view of the request.
func (r *CreateJobRequest) Spec() JobSpec {
	return JobSpec{Title: r.Title, Description: r.Description, Skills: r.Skills}
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
