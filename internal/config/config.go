// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultAPIBaseURL is used when JOBDESK_API_URL is not set.
const DefaultAPIBaseURL = "http://localhost:8000"

// Config holds the runtime configuration for the client. Values come from
// environment variables; missing values use defaults.
type Config struct {
	// APIBaseURL is the origin of the job-board backend, without a
	// trailing slash.
	APIBaseURL string

	// StateDir is where the session token and cached user profile are
	// persisted. Defaults to ~/.jobdesk.
	StateDir string

	// Verbose enables debug-level logging.
	Verbose bool
}

// Load builds a Config from the environment.
// It reads JOBDESK_API_URL, JOBDESK_STATE_DIR and JOBDESK_VERBOSE.
func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL: strings.TrimSuffix(os.Getenv("JOBDESK_API_URL"), "/"),
		StateDir:   os.Getenv("JOBDESK_STATE_DIR"),
		Verbose:    os.Getenv("JOBDESK_VERBOSE") == "1" || strings.EqualFold(os.Getenv("JOBDESK_VERBOSE"), "true"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".jobdesk")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config error: API base URL is empty")
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config error: invalid API base URL %q (must include scheme and host)", c.APIBaseURL)
	}

	if c.StateDir == "" {
		return fmt.Errorf("config error: state directory is empty")
	}

	return nil
}
