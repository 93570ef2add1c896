package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "GOMODEL_CONFIG"

// Config holds all gomodel configuration.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Export  ExportConfig  `yaml:"export"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
	Stats   StatsConfig   `yaml:"stats"`
}

// ModelConfig sets defaults for models created from scratch.
type ModelConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ExportConfig configures the text exporter.
type ExportConfig struct {
	// Precision is the number of significant digits of vertex coordinates;
	// -1 writes the shortest exact form.
	Precision int `yaml:"precision"`
}

// WatchConfig configures `gomodel watch`.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// StatsConfig configures `gomodel stats`.
type StatsConfig struct {
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Name:        "EMPTY",
			Description: "EMPTY",
		},
		Export: ExportConfig{
			Precision: -1,
		},
		Watch: WatchConfig{
			Debounce: "200ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Stats: StatsConfig{
			Workers: 4,
		},
	}
}

// DefaultPath returns the config path: $GOMODEL_CONFIG if set, otherwise
// ~/.gomodel.yaml.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvPath); path != "" {
		return homedir.Expand(path)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".gomodel.yaml"), nil
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// GetDebounce returns the watch debounce as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 200 * time.Millisecond
	}
	return d
}

// ValidFormats lists the supported log encodings.
var ValidFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Export.Precision < -1 {
		return fmt.Errorf("invalid export precision: %d (want -1 or more)", c.Export.Precision)
	}
	if c.Stats.Workers < 1 {
		return fmt.Errorf("invalid stats workers: %d (want at least 1)", c.Stats.Workers)
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}

	validFormat := false
	for _, f := range ValidFormats {
		if c.Logging.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}
