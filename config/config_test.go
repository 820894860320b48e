package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_PORT", "LLM_API_KEY", "GEMINI_API_KEY", "LLM_PROVIDER",
		"YOUTUBE_API_KEY", "GOOGLE_SEARCH_API_KEY", "GOOGLE_SEARCH_ENGINE_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DefaultLLMProvider, cfg.LLM.Provider)
	assert.Equal(t, DefaultLLMModel, cfg.LLM.Model)
	assert.Equal(t, DefaultBudgetTolerance, cfg.Recommend.BudgetTolerance)
	assert.Equal(t, DefaultImageTimeoutMs, cfg.ImageSearch.TimeoutMs)
	assert.Equal(t, DefaultVideoTimeoutMs, cfg.VideoSearch.TimeoutMs)
	assert.Equal(t, 3, cfg.VideoSearch.MaxResults)
	assert.False(t, cfg.LLMConfigured())
	assert.False(t, cfg.ImageSearchConfigured())
	assert.False(t, cfg.VideoSearchConfigured())
}

func TestLoad_FileThenEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
llm:
  provider: Anthropic
  api_key: from-file
  timeout_sec: 15
recommend:
  budget_tolerance: "1.25"
  max_concurrency: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("YOUTUBE_API_KEY", "yt")
	t.Setenv("GOOGLE_SEARCH_ENGINE_ID", "cx-1")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, DefaultAnthropicModel, cfg.LLM.Model)
	assert.Empty(t, cfg.LLM.BaseURL)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, 15, cfg.LLM.TimeoutSec)
	assert.Equal(t, "1.25", cfg.Recommend.BudgetTolerance)
	assert.Equal(t, 2, cfg.Recommend.MaxConcurrency)

	// 图片检索未单独配置密钥时沿用 YouTube 密钥
	assert.Equal(t, "yt", cfg.ImageSearch.APIKey)
	assert.Equal(t, "cx-1", cfg.ImageSearch.EngineID)
	assert.True(t, cfg.ImageSearchConfigured())
	assert.True(t, cfg.VideoSearchConfigured())
}

func TestLoadFile_ZeroTemperatureKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  temperature: 0\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	cfg.applyDefaults()

	require.NotNil(t, cfg.LLM.Temperature)
	assert.Equal(t, 0.0, cfg.LLMTemperature())
}

func TestLLMTemperature_Default(t *testing.T) {
	assert.Equal(t, DefaultLLMTemperature, Default().LLMTemperature())
	assert.Equal(t, DefaultLLMTemperature, (&Config{}).LLMTemperature())
}

func TestLoad_SeparateImageKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("YOUTUBE_API_KEY", "yt")
	t.Setenv("GOOGLE_SEARCH_API_KEY", "cse")

	cfg := Load()

	assert.Equal(t, "cse", cfg.ImageSearch.APIKey)
	assert.False(t, cfg.ImageSearchConfigured(), "cx is still missing")
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
