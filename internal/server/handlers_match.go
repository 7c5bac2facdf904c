package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/candidate-matcher/internal/logger"
	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/ranking"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// handleMatch scores a resume against a description without storing anything.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result := ranking.Score(s.normalizer, req.ResumeText, req.JobDescription, req.Skills)
	s.log.Debug("match scored", logger.ScoreFields(result)...)

	s.jsonResponse(w, http.StatusOK, types.MatchResponse{
		Result:  result,
		Contact: parsing.ResolveContact(req.ResumeText, req.Name, req.Email),
	})
}
