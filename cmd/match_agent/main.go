// Package main provides the match_agent command: the HTTP API server plus
// local scoring tools for resumes and job descriptions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/config"
	"github.com/jonathan/candidate-matcher/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configFile string
	debugLog   bool
	jsonLog    bool
	verbose    bool

	appConfig *config.Config
	log       = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "match_agent",
	Short:         "Resume to job matching engine",
	Long:          "match_agent scores resumes against job descriptions by text similarity, skill overlap and stated experience, and serves the recruiter REST API.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print human-readable summaries to stderr")
}

// setup loads configuration and builds the logger shared by all commands.
func setup() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	l, err := logger.New(jsonLog, debugLog)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	appConfig, log = cfg, l
	return nil
}

// summaryWriter returns where verbose summaries go, or nil when --verbose is
// off.
func summaryWriter(cmd *cobra.Command) io.Writer {
	if !verbose {
		return nil
	}
	return cmd.ErrOrStderr()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
