package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromPath_Defaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "studyplan.db", filepath.Base(cfg.DBPath))
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, "disabled", cfg.LLM.Provider)
	assert.Equal(t, 60000, cfg.LLM.TimeoutMs)
	assert.Equal(t, 2, cfg.LLM.MaxRetries)
	assert.Equal(t, 1000, cfg.LLM.RetryBackoffMs)
	assert.False(t, cfg.ToLLM().Enabled())
}

func TestLoadFromPath_FileValues(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/plans.db
log:
  debug: true
  dir: /tmp/studyplan-logs
llm:
  provider: ollama
  endpoint: http://gpu-box:11434
  model: qwen2.5
  timeout_ms: 90000
  max_retries: 4
  retry_backoff_ms: 250
  log_calls: true
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/plans.db", cfg.DBPath)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "/tmp/studyplan-logs", cfg.Log.Dir)

	out := cfg.ToLLM()
	assert.Equal(t, llm.ProviderOllama, out.Provider)
	assert.Equal(t, "http://gpu-box:11434", out.Endpoint)
	assert.Equal(t, "qwen2.5", out.Model)
	assert.Equal(t, 90000, out.TimeoutMs)
	assert.Equal(t, 4, out.MaxRetries)
	assert.Equal(t, 250, out.RetryBackoffMs)
	assert.True(t, out.LogCalls)
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	t.Setenv("STUDYPLAN_DB_PATH", "/env/override.db")
	t.Setenv("STUDYPLAN_LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-env")

	cfg, err := LoadFromPath(writeConfig(t, "db_path: /file.db\n"))
	require.NoError(t, err)

	assert.Equal(t, "/env/override.db", cfg.DBPath)
	out := cfg.ToLLM()
	assert.Equal(t, llm.ProviderAnthropic, out.Provider)
	assert.Equal(t, "sk-env", out.APIKey)
	assert.Empty(t, out.Endpoint, "anthropic uses the SDK's base URL unless overridden")
	assert.Empty(t, out.Model)
}

func TestLoadFromPath_UnknownProvider(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "llm:\n  provider: gpt\n"))
	assert.Error(t, err)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestOllamaDefaultsWhenUnset(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "llm:\n  provider: ollama\n"))
	require.NoError(t, err)

	out := cfg.ToLLM()
	assert.Equal(t, "http://localhost:11434", out.Endpoint)
	assert.Equal(t, "llama3.2", out.Model)
}

func TestUserConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "studyplan"), UserConfigDir())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x.db"), expandHome("~/x.db"))
	assert.Equal(t, "/abs/x.db", expandHome("/abs/x.db"))
}
