package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeRole       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume from the command line",
	Long: `Run a one-shot analysis of a resume file: ATS compatibility and
resume feedback, plus a match score when a job description file is given.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to the resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role for feedback scoring")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resume, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	printer := observability.NewPrinter(cmd.OutOrStdout())

	ats := a.analyzer.PredictATS(ctx, types.ATSRequest{ResumeText: string(resume)})
	printer.PrintATS(&ats)

	feedback := a.analyzer.PredictFeedback(ctx, types.FeedbackRequest{
		ResumeText: string(resume),
		TargetRole: analyzeRole,
	})
	printer.PrintFeedback(&feedback)

	if analyzeJobPath != "" {
		job, err := os.ReadFile(analyzeJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		match := a.analyzer.PredictMatch(ctx, types.MatchRequest{
			ResumeText:     string(resume),
			JobDescription: string(job),
		})
		printer.PrintMatch(&match)
	}
	return nil
}
