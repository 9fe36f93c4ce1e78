package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file looked up in the
// scan root.
const ConfigFileName = ".i18ngrd.config"

// DefaultBaseLanguageFile is the filename convention for the
// default/base language translation file, preferred as the suggestion
// target.
const DefaultBaseLanguageFile = "en.json"

// Config represents the i18ngrd configuration file
type Config struct {
	Ignores          IgnoresConfig `yaml:"ignores"`
	BaseLanguageFile string        `yaml:"base_language_file"` // Overrides the en.json convention
}

// IgnoresConfig contains ignore rules for localization keys
type IgnoresConfig struct {
	Missing []string `yaml:"missing"` // Keys to ignore when reporting as missing
	Folders []string `yaml:"folders"` // Folders whose usages are excluded from the missing report
}

// LoadConfig loads the .i18ngrd.config file from the specified
// directory. A missing file is not an error and yields the default
// config.
func LoadConfig(rootPath string) (*Config, error) {
	configPath := filepath.Join(rootPath, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ShouldIgnoreMissing checks if a key should be ignored when reporting
// as missing
func (c *Config) ShouldIgnoreMissing(key string) bool {
	for _, ignored := range c.Ignores.Missing {
		if ignored == key {
			return true
		}
	}
	return false
}

// BaseFilename returns the filename treated as the default/base
// language file when choosing a suggestion target.
func (c *Config) BaseFilename() string {
	if c.BaseLanguageFile != "" {
		return c.BaseLanguageFile
	}
	return DefaultBaseLanguageFile
}
