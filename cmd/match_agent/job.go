package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/ingestion"
	"github.com/jonathan/candidate-matcher/internal/schemas"
	"github.com/jonathan/candidate-matcher/internal/types"
	bundled "github.com/jonathan/candidate-matcher/schemas"
)

// loadJobSpec reads and validates a job description file.
func loadJobSpec(path string) (types.JobSpec, error) {
	var job types.JobSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("failed to read job file: %w", err)
	}
	if err := schemas.ValidateBytes(bundled.JobSpec, data); err != nil {
		return job, fmt.Errorf("invalid job file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("failed to parse job file: %w", err)
	}
	job.Skills = splitSkills(strings.Join(job.Skills, ","))
	return job, nil
}

// fetchJobSpec builds a job from a posting URL and an explicit skill list.
func fetchJobSpec(ctx context.Context, url, skills string, useBrowser bool) (types.JobSpec, error) {
	var job types.JobSpec
	job.Skills = splitSkills(skills)
	if len(job.Skills) == 0 {
		return job, fmt.Errorf("--skills is required with --job-url")
	}

	text, meta, err := ingestion.IngestFromURL(ctx, url, &ingestion.URLOptions{
		UseBrowser: useBrowser,
		Logger:     log,
	})
	if err != nil {
		return job, fmt.Errorf("failed to ingest job posting: %w", err)
	}
	job.Description = text
	job.Title = meta.Title
	log.Info("fetched job posting",
		zap.String("url", url),
		zap.String("title", meta.Title),
		zap.String("platform", meta.Platform),
		zap.Bool("rendered", meta.Rendered),
	)
	return job, nil
}

// splitSkills parses a comma separated skill list, dropping blanks.
func splitSkills(list string) []string {
	skills := make([]string, 0)
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// readResume extracts resume text and rejects files with too little of it.
func readResume(ctx context.Context, path string, minChars int) (string, error) {
	text, _, err := ingestion.IngestFromFile(ctx, ingestion.NewMediaExtractor(), path)
	if err != nil {
		return "", err
	}
	if err := ingestion.RequireUsableText(text, minChars); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// writeOutput writes v as indented JSON to path, or to stdout when path is
// empty.
func writeOutput(stdout io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("wrote output", zap.String("path", path))
	return nil
}

// checkOutput validates v against a bundled schema. Failures are logged, not
// returned.
func checkOutput(schema string, v any) {
	if err := schemas.Validate(schema, v); err != nil {
		log.Warn("output failed schema validation", zap.String("schema", schema), zap.Error(err))
	}
}
