package app

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds run configuration. Everything has a working default; a
// YAML file only needs to name what it changes.
type Config struct {
	// Workers bounds how many directories are analyzed concurrently.
	Workers int `yaml:"workers"`

	// Excludes are doublestar glob patterns, matched against paths
	// relative to the directory being analyzed.
	Excludes []string `yaml:"excludes"`

	// ArtifactDir is the per-directory subdirectory the report is written
	// into.
	ArtifactDir string `yaml:"artifact_dir"`

	// GrammarPaths are extra directories searched for grammar shared
	// libraries.
	GrammarPaths []string `yaml:"grammar_paths"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Excludes: []string{
			"**/.git/**",
			"**/node_modules/**",
			"**/__pycache__/**",
			"**/.venv/**",
			"**/vendor/**",
			"**/build/**",
			"**/dist/**",
			"**/target/**",
			"**/.leafsift/**",
			"**/ana_json/**",
		},
		ArtifactDir: "ana_json",
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = "ana_json"
	}
	return cfg, nil
}

// LoadConfigFromDir looks for leafsift.yaml, then .leafsift/config.yaml,
// under dir. Missing files fall through to the defaults.
func LoadConfigFromDir(dir string) (*Config, error) {
	for _, name := range []string{
		filepath.Join(dir, "leafsift.yaml"),
		filepath.Join(dir, ".leafsift", "config.yaml"),
	} {
		if _, err := os.Stat(name); err == nil {
			return LoadConfig(name)
		}
	}
	return DefaultConfig(), nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
