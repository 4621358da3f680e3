package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
transport = "http"
port = "9090"

[classifier]
provider = "http"
base_url = "http://localhost:5151"
timeout_seconds = 10

[llm]
provider = "openai"
model = "gpt-4o-mini"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Server.Transport)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http", cfg.Classifier.Provider)
	assert.Equal(t, "http://localhost:5151", cfg.Classifier.BaseURL)
	assert.Equal(t, 10, cfg.Classifier.TimeoutSeconds)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "sse")
	t.Setenv("EVODEX_CLASSIFIER_URL", "http://classifier:8000")
	t.Setenv("LLM_PROVIDER", "claude")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "sse", cfg.Server.Transport)
	assert.Equal(t, "http://classifier:8000", cfg.Classifier.BaseURL)
	assert.Equal(t, "claude", cfg.LLM.Provider)

	// Untouched values keep their defaults.
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Classifier.Provider)
}
