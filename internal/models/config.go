package models

import "time"

// FailurePolicy decides what a failed detail lookup does to its batch
type FailurePolicy string

const (
	// FailBatch fails the whole fetch when any lookup fails
	FailBatch FailurePolicy = "fail_batch"
	// DropFailed drops candidates whose lookup failed and keeps the rest
	DropFailed FailurePolicy = "drop_failed"
)

// Config represents the application configuration
type Config struct {
	GitHubAPIURL    string        `yaml:"github_api_url"`
	GitHubToken     string        `yaml:"github_token"`
	PerPage         int           `yaml:"per_page"`
	Since           int64         `yaml:"since"` // negative picks a random starting id
	MaxConcurrency  int64         `yaml:"max_concurrency"`
	RequestTimeout  time.Duration `yaml:"request_timeout"` // zero disables the timeout
	FailurePolicy   FailurePolicy `yaml:"failure_policy"`
	DBPath          string        `yaml:"db_path"`
	LogPath         string        `yaml:"log_path"`
	OpenInBrowser   bool          `yaml:"open_in_browser"`
	BrowserHeadless bool          `yaml:"browser_headless"`
	Verbose         bool          `yaml:"verbose"`
}
