// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text file

	// Behavior
	APIKey            string `json:"api_key,omitempty"`             // Gemini API key
	DatabaseURL       string `json:"database_url,omitempty"`        // PostgreSQL connection URL
	ReportRendererURL string `json:"report_renderer_url,omitempty"` // External PDF renderer base URL
	Verbose           bool   `json:"verbose,omitempty"`             // Print detailed debug information

	// Scoring
	MatchThreshold   float64 `json:"match_threshold,omitempty"`   // Keyword similarity threshold (0.0-1.0)
	SkillsWeight     float64 `json:"skills_weight,omitempty"`     // Section weight overrides; all four
	ExperienceWeight float64 `json:"experience_weight,omitempty"` // must be set together and sum to 1.0
	EducationWeight  float64 `json:"education_weight,omitempty"`
	KeywordsWeight   float64 `json:"keywords_weight,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// HasWeightOverrides reports whether any section weight is set in the file.
func (c *Config) HasWeightOverrides() bool {
	return c.SkillsWeight != 0 || c.ExperienceWeight != 0 ||
		c.EducationWeight != 0 || c.KeywordsWeight != 0
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("config error: 'match_threshold' must be between 0.0 and 1.0")
	}

	if c.HasWeightOverrides() {
		for name, w := range map[string]float64{
			"skills_weight":     c.SkillsWeight,
			"experience_weight": c.ExperienceWeight,
			"education_weight":  c.EducationWeight,
			"keywords_weight":   c.KeywordsWeight,
		} {
			if w <= 0 {
				return fmt.Errorf("config error: %q must be set and positive when overriding weights", name)
			}
		}
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ReportRendererURL == "" {
		result.ReportRendererURL = defaults.ReportRendererURL
	}

	// Float fields: use default if zero
	if result.MatchThreshold == 0 {
		result.MatchThreshold = defaults.MatchThreshold
	}
	if !result.HasWeightOverrides() && defaults.HasWeightOverrides() {
		result.SkillsWeight = defaults.SkillsWeight
		result.ExperienceWeight = defaults.ExperienceWeight
		result.EducationWeight = defaults.EducationWeight
		result.KeywordsWeight = defaults.KeywordsWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
