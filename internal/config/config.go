package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the optional per-workspace config file.
const DefaultFileName = "leaderboard.yaml"

// DefaultLinkBase is where published logs and trajectories live.
const DefaultLinkBase = "https://github.com/SEC-bench/experiments/tree/main/evaluation"

// Config holds all leaderboard build configuration.
type Config struct {
	// Input and output locations, relative to the workspace unless absolute.
	Paths PathsConfig `yaml:"paths"`

	// External link templating
	Links LinksConfig `yaml:"links"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig locates the index, the evaluation tree and the output document.
type PathsConfig struct {
	Index      string `yaml:"index"`
	Evaluation string `yaml:"evaluation"`
	Output     string `yaml:"output"`
}

// LinksConfig configures the URLs emitted for logs/ and trajs/ directories.
type LinksConfig struct {
	BaseURL string `yaml:"base_url"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Index:      "lite_index.yaml",
			Evaluation: "evaluation",
			Output:     filepath.Join("dist", "leaderboard-mini.json"),
		},
		Links: LinksConfig{
			BaseURL: DefaultLinkBase,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.Index) == "" {
		return fmt.Errorf("paths.index must not be empty")
	}
	if strings.TrimSpace(c.Paths.Evaluation) == "" {
		return fmt.Errorf("paths.evaluation must not be empty")
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		return fmt.Errorf("paths.output must not be empty")
	}

	u, err := url.Parse(c.Links.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid links.base_url: %q", c.Links.BaseURL)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if strings.EqualFold(c.Logging.Level, l) {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	return nil
}

// Resolve joins p onto workspace unless p is already absolute.
func Resolve(workspace, p string) string {
	if filepath.IsAbs(p) || workspace == "" {
		return p
	}
	return filepath.Join(workspace, p)
}

// IndexPath returns the absolute-or-workspace-relative index location.
func (c *Config) IndexPath(workspace string) string {
	return Resolve(workspace, c.Paths.Index)
}

// EvaluationPath returns the evaluation tree location.
func (c *Config) EvaluationPath(workspace string) string {
	return Resolve(workspace, c.Paths.Evaluation)
}

// OutputPath returns the output document location.
func (c *Config) OutputPath(workspace string) string {
	return Resolve(workspace, c.Paths.Output)
}
