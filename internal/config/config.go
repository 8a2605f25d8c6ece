// Package config loads cprtcat configuration from YAML with defaults for
// every field. Static catalog front matter (publisher identity, postal
// address) lives here rather than in code so that other publishers can reuse
// the converter.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the cprtcat configuration file.
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the cprtcat configuration directory.
const ConfigDirName = ".cprtcat"

// ErrConfigNotFound is returned when no config file can be found.
var ErrConfigNotFound = errors.New("config file not found")

// Config holds all cprtcat configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Cache     CacheConfig     `yaml:"cache"`
	Publisher PublisherConfig `yaml:"publisher"`
	Catalog   CatalogConfig   `yaml:"catalog"`
}

// APIConfig holds CPRT API client settings.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// CacheConfig holds export cache settings.
type CacheConfig struct {
	// Dir is the cache directory. Empty means <home>/.cprtcat.
	Dir      string `yaml:"dir"`
	Disabled bool   `yaml:"disabled"`
}

// PublisherConfig holds the publisher party written into catalog metadata.
type PublisherConfig struct {
	Name       string   `yaml:"name"`
	ShortName  string   `yaml:"short_name"`
	Email      string   `yaml:"email"`
	AddrLines  []string `yaml:"addr_lines"`
	City       string   `yaml:"city"`
	State      string   `yaml:"state"`
	PostalCode string   `yaml:"postal_code"`
}

// CatalogConfig holds settings for the emitted catalog documents.
type CatalogConfig struct {
	GeneratedBy string `yaml:"generated_by"`
}

// Load reads config from <workDir>/.cprtcat/config.yaml, walking up the
// directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFromPath(filepath.Join(configDir, ConfigFileName))
}

// LoadFromPath reads config from a specific path, merging it with defaults
// and validating the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// FindConfigDir locates the .cprtcat directory by walking up from startDir.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// Validate checks that config values are usable.
func Validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.Publisher.Name == "" {
		return fmt.Errorf("publisher.name must not be empty")
	}
	return nil
}

// CacheDir resolves the cache directory, defaulting to <home>/.cprtcat.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName), nil
}
