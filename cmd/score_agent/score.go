package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/normalize"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/validation"
)

var (
	scoreResumePath string
	scoreJobPath    string
	scoreConfigPath string
	scoreJSON       bool
	scoreDebug      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume from the command line",
	Long:  `Score a resume file, optionally against a job description file, without starting the server or touching the database.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResumePath, "resume", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job description text file")
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the raw JSON result")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Include the debug block in the result")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig(scoreConfigPath)
	if err != nil {
		return err
	}

	resumePath := firstNonEmpty(scoreResumePath, cfg.Resume)
	if resumePath == "" {
		return fmt.Errorf("--resume is required")
	}
	resumeText, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	req := &types.ScoreRequest{
		Resume:       types.DocumentInput{Text: string(resumeText), Title: resumePath},
		IncludeDebug: scoreDebug,
	}

	jobPath := firstNonEmpty(scoreJobPath, cfg.Job)
	if jobPath != "" {
		jobText, err := os.ReadFile(jobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		req.JobDescription = &types.DocumentInput{Text: string(jobText), Title: jobPath}
	}

	if err := validation.CheckScoreRequest(req); err != nil {
		return err
	}

	ctx := context.Background()

	var client llm.Client
	if apiKey := firstNonEmpty(cfg.APIKey, os.Getenv("GEMINI_API_KEY")); apiKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create extraction client: %w", err)
		}
		defer client.Close()
	}

	opts := []scoring.ServiceOption{scoring.WithModelVersion(llm.ModelVersion)}
	if cfg.HasWeightOverrides() {
		weights := scoring.Weights{
			Skills:     cfg.SkillsWeight,
			Experience: cfg.ExperienceWeight,
			Education:  cfg.EducationWeight,
			Keywords:   cfg.KeywordsWeight,
		}
		if err := weights.Validate(); err != nil {
			return fmt.Errorf("invalid score weights: %w", err)
		}
		opts = append(opts, scoring.WithWeights(weights))
	}
	if cfg.MatchThreshold > 0 {
		opts = append(opts, scoring.WithThreshold(cfg.MatchThreshold))
	}

	// One-shot scoring runs without a store; nothing is persisted
	service := scoring.NewService(normalize.New(client), nil, opts...)

	result, err := service.Score(ctx, req)
	if err != nil {
		return err
	}

	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreSummary(result)
	printer.PrintGates(result.Gates)
	printer.PrintMissingKeywords(result.MissingKeywords)
	printer.PrintSuggestions(result.Suggestions)
	if scoreDebug {
		printer.PrintDebug(result.Debug)
	}
	return nil
}
