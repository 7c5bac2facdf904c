// Package types provides type definitions for structured data used throughout the candidate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the outcome of scoring one resume against one job.
// Every percentage is within [0, 100] and Skills is a subset of the job's
// declared skill catalog with the catalog's casing.
type MatchResult struct {
	Skills          []string `json:"skills"`
	TextSimilarity  float64  `json:"text_similarity"`
	SkillMatch      float64  `json:"skill_match"`
	ExperienceScore float64  `json:"experience_score"`
	CompositeScore  int      `json:"composite_score"`
	Notes           string   `json:"notes,omitempty"`
}

// ContactInfo holds heuristically extracted candidate identity fields.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RankedCandidates is the output of batch scoring several resumes against one job.
type RankedCandidates struct {
	JobTitle string            `json:"job_title,omitempty"`
	Ranked   []RankedCandidate `json:"ranked"`
}

// RankedCandidate is one scored resume in a batch.
type RankedCandidate struct {
	Source  string      `json:"source"`
	Contact ContactInfo `json:"contact"`
	Result  MatchResult `json:"result"`
}

// MatchRequest asks for a stateless score of one resume against a job
// description and skill list.
type MatchRequest struct {
	ResumeText     string   `json:"resume_text" validate:"required,notblank"`
	JobDescription string   `json:"job_description"`
	Skills         []string `json:"skills" validate:"omitempty,dive,notblank"`
	Name           string   `json:"name,omitempty"`
	Email          string   `json:"email,omitempty"`
}

// Validate validates the MatchRequest and trims the skills.
func (r *MatchRequest) Validate() error {
	if err := newValidator().Struct(r); err != nil {
		return err
	}
	r.Skills = trimAll(r.Skills)
	return nil
}

// MatchResponse pairs a score with the resume's contact details.
type MatchResponse struct {
	Result  MatchResult `json:"result"`
	Contact ContactInfo `json:"contact"`
}
