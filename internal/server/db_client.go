package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-matcher/internal/db"
)

// DBClient is the persistence surface the API needs. *db.DB implements it;
// tests substitute an in-memory fake.
type DBClient interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	CreateJob(ctx context.Context, createdBy uuid.UUID, title, description string, skills []string, status string) (*db.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
	ListJobsByOwner(ctx context.Context, ownerID uuid.UUID) ([]db.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, upd db.JobUpdate) (*db.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error

	CreateCandidate(ctx context.Context, c *db.Candidate) error
	GetCandidate(ctx context.Context, id uuid.UUID) (*db.Candidate, error)
	GetCandidateFile(ctx context.Context, id uuid.UUID) ([]byte, error)
	ListCandidatesByJob(ctx context.Context, jobID uuid.UUID) ([]db.Candidate, error)
	ListCandidatesByOwner(ctx context.Context, ownerID uuid.UUID) ([]db.Candidate, error)
	DeleteCandidate(ctx context.Context, id uuid.UUID) error
}

var _ DBClient = (*db.DB)(nil)
