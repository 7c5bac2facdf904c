package server

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/db"
	"github.com/jonathan/candidate-matcher/internal/ingestion"
	"github.com/jonathan/candidate-matcher/internal/logger"
	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/ranking"
)

// formOverhead is the room left above the file cap for the other multipart
// fields and part headers.
const formOverhead = 64 << 10

// ---------------------------------------------------------------------
// Candidate Handlers
// ---------------------------------------------------------------------

// ownedCandidate loads a candidate whose job belongs to userID.
func (s *Server) ownedCandidate(ctx context.Context, userID, candidateID uuid.UUID) (*db.Candidate, error) {
	notFound := &ErrNotFound{Resource: "candidate", ID: candidateID.String()}

	c, err := s.db.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound
	}
	if _, err := s.ownedJob(ctx, userID, c.JobID); err != nil {
		var jobMissing *ErrNotFound
		if errors.As(err, &jobMissing) {
			return nil, notFound
		}
		return nil, err
	}
	return c, nil
}

// handleUploadResume accepts a resume file for one of the caller's jobs,
// scores it against the job and stores the candidate.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+formOverhead)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > s.cfg.MaxUploadBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
		return
	}

	jobID, err := uuid.Parse(strings.TrimSpace(formValue(r, "jobId", "job_id")))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	job, err := s.ownedJob(r.Context(), userID, jobID)
	if err != nil {
		s.errorStatus(w, r, err)
		return
	}

	declared := header.Header.Get("Content-Type")
	if !ingestion.AcceptUpload(header.Filename, declared) {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF, DOC, DOCX and plain text files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	mediaType := ingestion.UploadMediaType(header.Filename, declared)
	if mediaType == "" {
		mediaType = ingestion.DetectMediaType(header.Filename, data)
	}

	log := s.log.With(
		zap.String(logger.FieldJobID, job.ID.String()),
		zap.String(logger.FieldSource, header.Filename),
		zap.String("media_type", mediaType),
	)
	log.Info("resume received", zap.Int("bytes", len(data)))

	text, err := s.extractor.Extract(r.Context(), data, mediaType)
	if err != nil {
		if errors.Is(err, ingestion.ErrUnsupportedMediaType) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Warn("text extraction failed", zap.Error(err))
		text = ""
	}
	if err := ingestion.RequireUsableText(text, s.cfg.MinTextLength); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to extract text from resume or text too short")
		return
	}
	log.Debug("extracted resume text", zap.String("preview", logger.TruncateForLog(text, logger.PreviewLimit)))

	result := ranking.Score(s.normalizer, text, job.Description, job.Skills)
	contact := parsing.ResolveContact(text, r.FormValue("name"), r.FormValue("email"))

	candidate := &db.Candidate{
		JobID:           job.ID,
		Name:            contact.Name,
		Email:           contact.Email,
		ResumeText:      text,
		Skills:          db.StringArray(result.Skills),
		TextSimilarity:  result.TextSimilarity,
		SkillMatch:      result.SkillMatch,
		ExperienceScore: result.ExperienceScore,
		MatchScore:      result.CompositeScore,
		Notes:           result.Notes,
		UploadedBy:      userID,
		ResumeFile:      data,
		ContentType:     mediaType,
		FileName:        header.Filename,
	}
	if err := s.db.CreateCandidate(r.Context(), candidate); err != nil {
		s.internalError(w, r, err)
		return
	}

	log.Info("candidate scored",
		append(logger.ScoreFields(result), zap.String(logger.FieldCandidateID, candidate.ID.String()))...)
	s.jsonResponse(w, http.StatusCreated, candidate)
}

// formValue returns the first non-empty form field among names.
func formValue(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.FormValue(name); v != "" {
			return v
		}
	}
	return ""
}

// handleListCandidates lists every candidate across the caller's jobs.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	candidates, err := s.db.ListCandidatesByOwner(r.Context(), userID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	candidateID, ok := s.pathID(w, r, "candidate")
	if !ok {
		return
	}

	c, err := s.ownedCandidate(r.Context(), userID, candidateID)
	if err != nil {
		s.errorStatus(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handleDownloadResume returns the originally uploaded file.
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	candidateID, ok := s.pathID(w, r, "candidate")
	if !ok {
		return
	}

	c, err := s.ownedCandidate(r.Context(), userID, candidateID)
	if err != nil {
		s.errorStatus(w, r, err)
		return
	}
	data, err := s.db.GetCandidateFile(r.Context(), candidateID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if len(data) == 0 {
		s.errorResponse(w, http.StatusNotFound, "No resume file stored")
		return
	}

	contentType := c.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if c.FileName != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": c.FileName}))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.log.Warn("failed to write resume file", zap.String(logger.FieldCandidateID, candidateID.String()), zap.Error(err))
	}
}

func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requestUser(w, r)
	if !ok {
		return
	}
	candidateID, ok := s.pathID(w, r, "candidate")
	if !ok {
		return
	}

	if _, err := s.ownedCandidate(r.Context(), userID, candidateID); err != nil {
		s.errorStatus(w, r, err)
		return
	}
	if err := s.db.DeleteCandidate(r.Context(), candidateID); err != nil {
		s.errorStatus(w, r, err)
		return
	}
	s.log.Info("candidate deleted", zap.String(logger.FieldCandidateID, candidateID.String()))
	w.WriteHeader(http.StatusNoContent)
}
