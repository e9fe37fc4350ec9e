package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Paths.Index != "lite_index.yaml" {
		t.Errorf("expected Index=lite_index.yaml, got %s", cfg.Paths.Index)
	}
	if cfg.Paths.Evaluation != "evaluation" {
		t.Errorf("expected Evaluation=evaluation, got %s", cfg.Paths.Evaluation)
	}
	if cfg.Paths.Output != filepath.Join("dist", "leaderboard-mini.json") {
		t.Errorf("unexpected Output %s", cfg.Paths.Output)
	}
	if cfg.Links.BaseURL != DefaultLinkBase {
		t.Errorf("expected BaseURL=%s, got %s", DefaultLinkBase, cfg.Links.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "leaderboard.yaml")

	cfg := DefaultConfig()
	cfg.Paths.Output = "public/board.json"
	cfg.Links.BaseURL = "https://example.com/runs"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "public/board.json", loaded.Paths.Output)
	assert.Equal(t, "https://example.com/runs", loaded.Links.BaseURL)
	assert.Equal(t, "lite_index.yaml", loaded.Paths.Index)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.yaml")
	content := "logging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "evaluation", cfg.Paths.Evaluation)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty index", func(c *Config) { c.Paths.Index = "" }},
		{"empty evaluation", func(c *Config) { c.Paths.Evaluation = " " }},
		{"empty output", func(c *Config) { c.Paths.Output = "" }},
		{"relative link base", func(c *Config) { c.Links.BaseURL = "evaluation" }},
		{"unknown level", func(c *Config) { c.Logging.Level = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestResolve(t *testing.T) {
	ws := t.TempDir()
	assert.Equal(t, filepath.Join(ws, "lite_index.yaml"), DefaultConfig().IndexPath(ws))
	assert.Equal(t, "evaluation", DefaultConfig().EvaluationPath(""))

	abs := filepath.Join(ws, "elsewhere", "out.json")
	assert.Equal(t, abs, Resolve("/ignored", abs))
}
