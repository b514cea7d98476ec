package aoc

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no config
// path is given.
const DefaultConfigFile = "aoc.yaml"

// Config holds where puzzle inputs live and how to fetch them.
type Config struct {
	// InputDir is the root of the input cache. Inputs are stored as
	// <InputDir>/<year>/<day>.input.
	InputDir string `yaml:"input_dir"`

	// SessionFile holds the adventofcode.com session cookie used to
	// download inputs that are not cached yet.
	SessionFile string `yaml:"session_file"`
}

func DefaultConfig() *Config {
	return &Config{
		InputDir:    ".",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
	}
}

// LoadConfig reads the YAML config at path on top of the defaults. A
// missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AOC_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("AOC_SESSION_FILE"); v != "" {
		c.SessionFile = v
	}
}

func (c *Config) inputPath(year, day int) string {
	return filepath.Join(c.InputDir, fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}
