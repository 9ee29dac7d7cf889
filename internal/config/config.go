package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Cache     CacheConfig     `yaml:"cache"`
	Languages []string        `yaml:"languages"`
	Addic7ed  Addic7edConfig  `yaml:"addic7ed"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServerConfig struct {
	HTTPPort int `yaml:"http_port"`
}

type CacheConfig struct {
	Path           string `yaml:"path"`
	ShowExpiration int    `yaml:"show_expiration"` // hours
}

type Addic7edConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: 4040,
		},
		Cache: CacheConfig{
			Path:           "./data/cache",
			ShowExpiration: 24,
		},
		Languages: []string{"en"},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ShowExpiration returns the show-index expiration as a duration.
func (c *Config) ShowExpiration() time.Duration {
	return time.Duration(c.Cache.ShowExpiration) * time.Hour
}

// EnsureDirectories creates required directories
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.Cache.Path, 0755)
}
