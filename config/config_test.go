package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	t.Setenv("CDISC_API_KEY", "test-key")
	t.Setenv("CDISC_BASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://api.library.cdisc.org/api", cfg.BaseURL)
}

func Test_Load_BaseURLOverride(t *testing.T) {
	t.Setenv("CDISC_API_KEY", "test-key")
	t.Setenv("CDISC_BASE_URL", "http://localhost:8080/api/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL, "trailing slash is trimmed")
}

func Test_Load_MissingKey(t *testing.T) {
	t.Setenv("CDISC_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config_error")
}

func Test_Load_BlankKey(t *testing.T) {
	t.Setenv("CDISC_API_KEY", "   ")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CDISC_API_KEY is empty")
}
