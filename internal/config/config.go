package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"candidate-search/internal/models"
)

// DefaultConfig returns the default configuration for candidate search
func DefaultConfig() models.Config {
	return models.Config{
		GitHubAPIURL:   "https://api.github.com",
		PerPage:        30,
		Since:          -1,
		MaxConcurrency: 10,
		RequestTimeout: 0,
		FailurePolicy:  models.FailBatch,
		DBPath:         "candidates.db",
		LogPath:        "candidate-search.log",
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// an optional .env file and the process environment, in that order.
func Load(path string) (models.Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// A missing .env is fine, the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *models.Config) {
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHubToken = v
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.GitHubAPIURL = v
	}
	if v := os.Getenv("CANDIDATE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CANDIDATE_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
}

// Validate reports the first invalid setting
func Validate(cfg models.Config) error {
	if cfg.GitHubAPIURL == "" {
		return errors.New("github_api_url must be set")
	}
	if cfg.PerPage <= 0 || cfg.PerPage > 100 {
		return fmt.Errorf("per_page must be between 1 and 100, got %d", cfg.PerPage)
	}
	if cfg.MaxConcurrency <= 0 {
		return fmt.Errorf("max_concurrency must be positive, got %d", cfg.MaxConcurrency)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", cfg.RequestTimeout)
	}
	switch cfg.FailurePolicy {
	case models.FailBatch, models.DropFailed:
	default:
		return fmt.Errorf("unknown failure_policy %q", cfg.FailurePolicy)
	}
	if cfg.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}
