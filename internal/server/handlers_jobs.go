package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/db"
	"github.com/jonathan/candidate-matcher/internal/logger"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// ---------------------------------------------------------------------
// Job Handlers
// ---------------------------------------------------------------------

// ownedJob loads a job and checks that userID created it. Missing and
// foreign jobs both yield ErrNotFound.
func (s *Server) ownedJob(ctx context.Context, userID, jobID uuid.UUID) (*db.Job, error) {
	job, err := s.db.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.CreatedBy != userID {
		return nil, &ErrNotFound{Resource: "job", ID: jobID.String()}
	}
	return job, nil
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	jobs, err := s.db.ListJobsByOwner(r.Context(), userID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job, err := s.db.CreateJob(r.Context(), userID, req.Title, req.Description, req.Skills, req.Status)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.log.Info("job created",
		zap.String(logger.FieldJobID, job.ID.String()),
		zap.Int("skills", len(job.Skills)),
	)
	s.jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	jobID, ok := s.pathID(w, r, "job")
	if !ok {
		return
	}

	job, err := s.ownedJob(r.Context(), userID, jobID)
	if err != nil {
		s.errorStatus(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	jobID, ok := s.pathID(w, r, "job")
	if !ok {
		return
	}

	var req types.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if _, err := s.ownedJob(r.Context(), userID, jobID); err != nil {
		s.errorStatus(w, r, err)
		return
	}

	job, err := s.db.UpdateJob(r.Context(), jobID, db.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Status:      req.Status,
	})
	if err != nil {
		s.errorStatus(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	jobID, ok := s.pathID(w, r, "job")
	if !ok {
		return
	}

	if _, err := s.ownedJob(r.Context(), userID, jobID); err != nil {
		s.errorStatus(w, r, err)
		return
	}
	if err := s.db.DeleteJob(r.Context(), jobID); err != nil {
		s.errorStatus(w, r, err)
		return
	}
	s.log.Info("job deleted", zap.String(logger.FieldJobID, jobID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// handleListJobCandidates lists a job's candidates, best match first.
func (s *Server) handleListJobCandidates(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	jobID, ok := s.pathID(w, r, "job")
	if !ok {
		return
	}

	if _, err := s.ownedJob(r.Context(), userID, jobID); err != nil {
		s.errorStatus(w, r, err)
		return
	}
	candidates, err := s.db.ListCandidatesByJob(r.Context(), jobID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}
