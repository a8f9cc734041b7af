package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8001", cfg.BaseURL)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		configData  string
		expectError bool
		expected    string
	}{
		{
			name:       "base url set",
			configData: `base_url = "http://staging.internal:9000"`,
			expected:   "http://staging.internal:9000",
		},
		{
			name:       "empty file falls back to default",
			configData: ``,
			expected:   DefaultBaseURL,
		},
		{
			name:       "blank base url falls back to default",
			configData: `base_url = "   "`,
			expected:   DefaultBaseURL,
		},
		{
			name:        "invalid toml",
			configData:  `base_url = "unterminated`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.configData), 0o644))

			cfg, err := Load(path)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.BaseURL)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "nope.toml")
}
