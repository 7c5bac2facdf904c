package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-matcher/internal/observability"
	"github.com/jonathan/candidate-matcher/internal/parsing"
	bundled "github.com/jonathan/candidate-matcher/schemas"
)

type contactOptions struct {
	ResumePath string
	Name       string
	Email      string
	OutputPath string
	Summary    io.Writer
}

var contactOpts contactOptions

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Extract the candidate name and email from a resume",
	RunE: func(cmd *cobra.Command, _ []string) error {
		contactOpts.Summary = summaryWriter(cmd)
		return runContact(commandContext(cmd), cmd.OutOrStdout(), contactOpts)
	},
}

func init() {
	contactCmd.Flags().StringVarP(&contactOpts.ResumePath, "resume", "r", "", "Path to the resume file (required)")
	contactCmd.Flags().StringVar(&contactOpts.Name, "name", "", "Name to use instead of the extracted one")
	contactCmd.Flags().StringVar(&contactOpts.Email, "email", "", "Email to use instead of the extracted one")
	contactCmd.Flags().StringVarP(&contactOpts.OutputPath, "out", "o", "", "Write the result to this file instead of stdout")
	_ = contactCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(contactCmd)
}

func runContact(ctx context.Context, stdout io.Writer, opts contactOptions) error {
	text, err := readResume(ctx, opts.ResumePath, appConfig.MinTextLength)
	if err != nil {
		return err
	}
	contact := parsing.ResolveContact(text, opts.Name, opts.Email)
	checkOutput(bundled.ContactInfo, contact)
	if opts.Summary != nil {
		observability.NewPrinter(opts.Summary).PrintContact(&contact)
	}
	return writeOutput(stdout, opts.OutputPath, contact)
}
