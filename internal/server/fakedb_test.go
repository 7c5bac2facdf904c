package server

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-matcher/internal/db"
)

// fakeDB is an in-memory DBClient that mirrors the Postgres semantics the
// handlers rely on: getters return (nil, nil) for missing rows and mutations
// wrap db.ErrNotFound.
type fakeDB struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*db.User
	jobs       map[uuid.UUID]*db.Job
	candidates map[uuid.UUID]*db.Candidate
	pingErr    error
	clock      time.Time
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:      make(map[uuid.UUID]*db.User),
		jobs:       make(map[uuid.UUID]*db.Job),
		candidates: make(map[uuid.UUID]*db.Candidate),
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so ordering is deterministic.
func (f *fakeDB) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeDB) Ping(_ context.Context) error { return f.pingErr }

func (f *fakeDB) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			return uuid.Nil, errors.New("duplicate key value violates unique constraint")
		}
	}
	now := f.tick()
	u := &db.User{ID: uuid.New(), Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeDB) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := f.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (f *fakeDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, db.ErrNotFound)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = f.tick()
	return nil
}

func (f *fakeDB) CreateJob(_ context.Context, createdBy uuid.UUID, title, description string, skills []string, status string) (*db.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()
	j := &db.Job{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Skills:      append(db.StringArray{}, skills...),
		Status:      status,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.jobs[j.ID] = j
	cp := *j
	return &cp, nil
}

func (f *fakeDB) GetJob(_ context.Context, id uuid.UUID) (*db.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDB) ListJobsByOwner(_ context.Context, ownerID uuid.UUID) ([]db.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	jobs := make([]db.Job, 0)
	for _, j := range f.jobs {
		if j.CreatedBy == ownerID {
			jobs = append(jobs, *j)
		}
	}
	sort.Slice(jobs, func(a, b int) bool { return jobs[a].CreatedAt.After(jobs[b].CreatedAt) })
	return jobs, nil
}

func (f *fakeDB) UpdateJob(_ context.Context, id uuid.UUID, upd db.JobUpdate) (*db.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, db.ErrNotFound)
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.Description != nil {
		j.Description = *upd.Description
	}
	if upd.Skills != nil {
		j.Skills = append(db.StringArray{}, upd.Skills...)
	}
	if upd.Status != nil {
		j.Status = *upd.Status
	}
	j.UpdatedAt = f.tick()
	cp := *j
	return &cp, nil
}

func (f *fakeDB) DeleteJob(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return fmt.Errorf("job %s: %w", id, db.ErrNotFound)
	}
	delete(f.jobs, id)
	for cid, c := range f.candidates {
		if c.JobID == id {
			delete(f.candidates, cid)
		}
	}
	return nil
}

func (f *fakeDB) CreateCandidate(_ context.Context, c *db.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[c.JobID]; !ok {
		return errors.New("foreign key violation on candidates.job_id")
	}
	c.ID = uuid.New()
	c.CreatedAt = f.tick()
	cp := *c
	f.candidates[c.ID] = &cp
	return nil
}

func (f *fakeDB) GetCandidate(_ context.Context, id uuid.UUID) (*db.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.candidates[id]; ok {
		cp := *c
		cp.ResumeFile = nil
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDB) GetCandidateFile(_ context.Context, id uuid.UUID) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.candidates[id]; ok {
		return c.ResumeFile, nil
	}
	return nil, nil
}

func (f *fakeDB) ListCandidatesByJob(_ context.Context, jobID uuid.UUID) ([]db.Candidate, error) {
	return f.listCandidates(func(c *db.Candidate) bool { return c.JobID == jobID }), nil
}

func (f *fakeDB) ListCandidatesByOwner(_ context.Context, ownerID uuid.UUID) ([]db.Candidate, error) {
	f.mu.Lock()
	owned := make(map[uuid.UUID]bool)
	for id, j := range f.jobs {
		owned[id] = j.CreatedBy == ownerID
	}
	f.mu.Unlock()
	return f.listCandidates(func(c *db.Candidate) bool { return owned[c.JobID] }), nil
}

func (f *fakeDB) listCandidates(keep func(*db.Candidate) bool) []db.Candidate {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db.Candidate, 0)
	for _, c := range f.candidates {
		if keep(c) {
			cp := *c
			cp.ResumeFile = nil
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].MatchScore != out[b].MatchScore {
			return out[a].MatchScore > out[b].MatchScore
		}
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out
}

func (f *fakeDB) DeleteCandidate(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.candidates[id]; !ok {
		return fmt.Errorf("candidate %s: %w", id, db.ErrNotFound)
	}
	delete(f.candidates, id)
	return nil
}

var _ DBClient = (*fakeDB)(nil)
