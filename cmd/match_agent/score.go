package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/history"
	"github.com/jonathan/candidate-matcher/internal/logger"
	"github.com/jonathan/candidate-matcher/internal/observability"
	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/ranking"
	"github.com/jonathan/candidate-matcher/internal/types"
	bundled "github.com/jonathan/candidate-matcher/schemas"
)

type scoreOptions struct {
	ResumePath  string
	JobPath     string
	JobURL      string
	Skills      string
	Title       string
	OutputPath  string
	HistoryPath string
	UseBrowser  bool
	Summary     io.Writer
}

var scoreOpts scoreOptions

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job",
	Long: `Score a resume file (txt, pdf or docx) against a job description.

The job comes either from a JSON file (--job) with title, description and
skills, or from a posting URL (--job-url) combined with --skills.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		scoreOpts.Summary = summaryWriter(cmd)
		return runScore(commandContext(cmd), cmd.OutOrStdout(), scoreOpts)
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreOpts.ResumePath, "resume", "r", "", "Path to the resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreOpts.JobPath, "job", "j", "", "Path to a job JSON file")
	scoreCmd.Flags().StringVar(&scoreOpts.JobURL, "job-url", "", "URL of a job posting")
	scoreCmd.Flags().StringVar(&scoreOpts.Skills, "skills", "", "Comma separated required skills (with --job-url)")
	scoreCmd.Flags().StringVar(&scoreOpts.Title, "title", "", "Job title override")
	scoreCmd.Flags().StringVarP(&scoreOpts.OutputPath, "out", "o", "", "Write the result to this file instead of stdout")
	scoreCmd.Flags().StringVar(&scoreOpts.HistoryPath, "history", "", "Record the result in this SQLite history database")
	scoreCmd.Flags().BoolVar(&scoreOpts.UseBrowser, "use-browser", false, "Render the posting in headless Chrome when plain HTTP is not enough")

	_ = scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	scoreCmd.MarkFlagsOneRequired("job", "job-url")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(ctx context.Context, stdout io.Writer, opts scoreOptions) error {
	var job types.JobSpec
	var err error
	if opts.JobURL != "" {
		job, err = fetchJobSpec(ctx, opts.JobURL, opts.Skills, opts.UseBrowser || appConfig.UseBrowser)
	} else {
		job, err = loadJobSpec(opts.JobPath)
	}
	if err != nil {
		return err
	}
	if opts.Title != "" {
		job.Title = opts.Title
	}

	text, err := readResume(ctx, opts.ResumePath, appConfig.MinTextLength)
	if err != nil {
		return err
	}

	result := ranking.Score(parsing.DefaultNormalizer(), text, job.Description, job.Skills)
	log.Info("scored resume", append(logger.StringFields(
		logger.StringField{Key: logger.FieldSource, Value: opts.ResumePath},
		logger.StringField{Key: "job_title", Value: job.Title},
	), logger.ScoreFields(result)...)...)

	checkOutput(bundled.MatchResult, result)
	if opts.Summary != nil {
		p := observability.NewPrinter(opts.Summary)
		p.PrintJob(&job)
		p.PrintMatchResult(&result)
	}

	if opts.HistoryPath != "" {
		if err := recordHistory(ctx, opts.HistoryPath, &history.Entry{
			ResumePath: opts.ResumePath,
			ResumeHash: history.HashResume(text),
			JobTitle:   job.Title,
			Result:     result,
		}); err != nil {
			return err
		}
	}

	return writeOutput(stdout, opts.OutputPath, result)
}

func recordHistory(ctx context.Context, path string, e *history.Entry) error {
	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if err := store.Record(ctx, e); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	log.Debug("recorded history", zap.String("id", e.ID), zap.String("path", path))
	return nil
}
