package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-matcher/internal/ingestion"
	"github.com/jonathan/candidate-matcher/internal/observability"
	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/ranking"
	bundled "github.com/jonathan/candidate-matcher/schemas"
)

type rankOptions struct {
	JobPath     string
	ResumesDir  string
	Concurrency int
	OutputPath  string
	Summary     io.Writer
}

var rankOpts rankOptions

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every resume in a directory against a job",
	Long: `Score each supported resume (txt, pdf, docx) in --resumes against the job
and print them best match first. Files that cannot be read are skipped.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rankOpts.Summary = summaryWriter(cmd)
		return runRank(commandContext(cmd), cmd.OutOrStdout(), rankOpts)
	},
}

func init() {
	rankCmd.Flags().StringVarP(&rankOpts.JobPath, "job", "j", "", "Path to a job JSON file (required)")
	rankCmd.Flags().StringVar(&rankOpts.ResumesDir, "resumes", "", "Directory of resume files (required)")
	rankCmd.Flags().IntVar(&rankOpts.Concurrency, "concurrency", 0, "Resumes processed in parallel (default from config)")
	rankCmd.Flags().StringVarP(&rankOpts.OutputPath, "out", "o", "", "Write the ranking to this file instead of stdout")
	_ = rankCmd.MarkFlagRequired("job")
	_ = rankCmd.MarkFlagRequired("resumes")
	rootCmd.AddCommand(rankCmd)
}

func runRank(ctx context.Context, stdout io.Writer, opts rankOptions) error {
	job, err := loadJobSpec(opts.JobPath)
	if err != nil {
		return err
	}

	limit := opts.Concurrency
	if limit < 1 {
		limit = appConfig.RankConcurrency
	}

	paths, err := resumeFiles(opts.ResumesDir)
	if err != nil {
		return err
	}
	candidates, err := loadCandidates(ctx, paths, limit)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no readable resumes in %s", opts.ResumesDir)
	}

	ranked, err := ranking.RankCandidates(ctx, parsing.DefaultNormalizer(), job, candidates, limit)
	if err != nil {
		return err
	}
	log.Info("ranked resumes", zap.String("job_title", job.Title), zap.Int("count", len(ranked.Ranked)))

	checkOutput(bundled.RankedCandidates, ranked)
	if opts.Summary != nil {
		observability.NewPrinter(opts.Summary).PrintRanking(ranked)
	}
	return writeOutput(stdout, opts.OutputPath, ranked)
}

// resumeFiles lists the files in dir whose extension the extractor handles,
// sorted by name.
func resumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		mediaType := ingestion.UploadMediaType(e.Name(), "")
		if !ingestion.AcceptUpload(e.Name(), mediaType) {
			log.Debug("skipping unsupported file", zap.String("file", e.Name()))
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// loadCandidates extracts text from each path, at most limit at a time.
// Unreadable files are logged and dropped; input order is kept.
func loadCandidates(ctx context.Context, paths []string, limit int) ([]ranking.Candidate, error) {
	texts := make([]string, len(paths))
	var mu sync.Mutex
	skipped := 0

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			text, err := readResume(gCtx, path, appConfig.MinTextLength)
			if err != nil {
				if ctxErr := gCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Warn("skipping resume", zap.String("file", path), zap.Error(err))
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make([]ranking.Candidate, 0, len(paths)-skipped)
	for i, text := range texts {
		if text == "" {
			continue
		}
		candidates = append(candidates, ranking.Candidate{Source: filepath.Base(paths[i]), Text: text})
	}
	return candidates, nil
}
