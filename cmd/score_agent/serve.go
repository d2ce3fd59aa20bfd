package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes and browsing stored score runs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig(serveConfigPath)
	if err != nil {
		return err
	}

	databaseURL := firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Without an API key the server still runs; extraction uses the
	// deterministic fallback only.
	apiKey := firstNonEmpty(cfg.APIKey, os.Getenv("GEMINI_API_KEY"))

	weights := scoring.DefaultWeights()
	if cfg.HasWeightOverrides() {
		weights = scoring.Weights{
			Skills:     cfg.SkillsWeight,
			Experience: cfg.ExperienceWeight,
			Education:  cfg.EducationWeight,
			Keywords:   cfg.KeywordsWeight,
		}
	}

	serverCfg := server.Config{
		Port:              servePort,
		DatabaseURL:       databaseURL,
		APIKey:            apiKey,
		ReportRendererURL: firstNonEmpty(cfg.ReportRendererURL, os.Getenv("REPORT_RENDERER_URL")),
		Weights:           weights,
		MatchThreshold:    cfg.MatchThreshold,
	}

	srv, err := server.New(serverCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadFileConfig loads and validates the optional JSON config file.
func loadFileConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
