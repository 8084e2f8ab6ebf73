package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override this package reads so file/default
// behavior can be observed in isolation.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("BIDEVAL_MODEL", "")
	t.Setenv("BIDEVAL_CATALOG", "")
	t.Setenv("BIDEVAL_LOG_LEVEL", "")
	t.Setenv("BIDEVAL_LOG_DIR", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "bideval", cfg.Name)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.Dir, "file logging is off by default")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().LLM.Model, cfg.LLM.Model)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bideval.yaml")
	content := `llm:
  api_key: file-key
  model: gemini-2.5-pro
catalog:
  file: projects.yaml
logging:
  level: debug
  dir: logs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, "projects.yaml", cfg.Catalog.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "logs", cfg.Logging.Dir)
	assert.Equal(t, "bideval", cfg.Name, "defaults survive for fields the file omits")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [not a mapping"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY wins over file value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "env-key")

		path := filepath.Join(t.TempDir(), "bideval.yaml")
		require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key: file-key\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.LLM.APIKey)
	})

	t.Run("env applies even with no config file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "env-only-key")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "env-only-key", cfg.LLM.APIKey)
	})

	t.Run("model, catalog, and logging overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIDEVAL_MODEL", "gemini-2.5-pro")
		t.Setenv("BIDEVAL_CATALOG", "/tmp/catalog.yaml")
		t.Setenv("BIDEVAL_LOG_LEVEL", "debug")
		t.Setenv("BIDEVAL_LOG_DIR", "/tmp/logs")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
		assert.Equal(t, "/tmp/catalog.yaml", cfg.Catalog.File)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "/tmp/logs", cfg.Logging.Dir)
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing API key is fatal", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("key present passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LLM.APIKey = "some-key"
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty model rejected", func(t *testing.T) {
		cfg := &Config{LLM: LLMConfig{APIKey: "some-key"}}
		require.Error(t, cfg.Validate())
	})
}
