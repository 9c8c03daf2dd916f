package config

import (
	"errors"
	"os"
	"path/filepath"

	semver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// FileConfig is the repo-local YAML configuration shape. Fields are pointers
// so an unset field defers to the JSON preferences or built-in defaults.
type FileConfig struct {
	Include         *string `yaml:"include"`
	Exclude         *string `yaml:"exclude"`
	MaxFileSize     *int64  `yaml:"max_file_size"`
	Secrets         *bool   `yaml:"secrets"`
	Complexity      *bool   `yaml:"complexity"`
	Threads         *int    `yaml:"threads"`
	NoColor         *bool   `yaml:"no_color"`
	DefaultExcludes *bool   `yaml:"default_excludes"`
	Format          *string `yaml:"format"`

	// MinVersion rejects configs written for a newer codewarden.
	MinVersion *string `yaml:"min_version"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .codewarden.yml/.yaml and codewarden.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".codewarden.yml", ".codewarden.yaml", "codewarden.yml", "codewarden.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// CheckMinVersion reports whether the running tool satisfies the config's
// min_version constraint. Unparseable versions are treated as satisfied so a
// bad config line never blocks analysis.
func (fc FileConfig) CheckMinVersion(toolVersion string) (ok bool, required string) {
	if fc.MinVersion == nil || *fc.MinVersion == "" {
		return true, ""
	}
	required = *fc.MinVersion
	min, err := semver.ParseTolerant(required)
	if err != nil {
		return true, required
	}
	cur, err := semver.ParseTolerant(toolVersion)
	if err != nil {
		return true, required
	}
	return cur.GTE(min), required
}
