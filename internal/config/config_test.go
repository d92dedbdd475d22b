package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JOBDESK_API_URL", "")
	t.Setenv("JOBDESK_STATE_DIR", t.TempDir())
	t.Setenv("JOBDESK_VERBOSE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.False(t, cfg.Verbose)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("JOBDESK_API_URL", "https://api.example.com/")
	t.Setenv("JOBDESK_STATE_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
}

func TestLoad_VerboseForms(t *testing.T) {
	t.Setenv("JOBDESK_STATE_DIR", t.TempDir())

	t.Setenv("JOBDESK_VERBOSE", "1")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)

	t.Setenv("JOBDESK_VERBOSE", "TRUE")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestValidate_RejectsBadURL(t *testing.T) {
	cfg := &Config{APIBaseURL: "not-a-url", StateDir: filepath.Join(t.TempDir(), "state")}
	assert.Error(t, cfg.Validate())

	cfg.APIBaseURL = "https://api.example.com"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsEmptyStateDir(t *testing.T) {
	cfg := &Config{APIBaseURL: "https://api.example.com"}
	assert.Error(t, cfg.Validate())
}
