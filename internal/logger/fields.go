package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// FieldJobID is the structured log field key for a job identifier.
	FieldJobID = "job_id"
	// FieldCandidateID is the structured log field key for a candidate identifier.
	FieldCandidateID = "candidate_id"
	// FieldSource is the structured log field key for where a resume came from.
	FieldSource = "source"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// ScoreFields describes a match result compactly.
func ScoreFields(result types.MatchResult) []zap.Field {
	return []zap.Field{
		zap.Int("composite", result.CompositeScore),
		zap.Float64("text_similarity", result.TextSimilarity),
		zap.Float64("skill_match", result.SkillMatch),
		zap.Float64("experience", result.ExperienceScore),
		zap.Strings("skills", result.Skills),
	}
}
