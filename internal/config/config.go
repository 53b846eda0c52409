package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Handicap   HandicapConfig   `yaml:"handicap"`
	Settlement SettlementConfig `yaml:"settlement"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type     string `yaml:"type"`
	RedisURL string `yaml:"redis_url"`
}

// HandicapConfig holds the handicap policy knobs
type HandicapConfig struct {
	// DefaultIndex is used for registered golfers with no established index
	DefaultIndex float64 `yaml:"default_index"`
	// MaxSweeps caps handicap strokes per hole
	MaxSweeps int `yaml:"max_sweeps"`
}

// SettlementConfig holds settlement reconciliation knobs
type SettlementConfig struct {
	// RoundingUnit is the unit payment amounts round down to
	RoundingUnit float64 `yaml:"rounding_unit"`
}

// Default returns the configuration defaults
func Default() Config {
	return Config{
		Server:     ServerConfig{Port: 8080},
		Storage:    StorageConfig{Type: "memory", RedisURL: "redis://localhost:6379"},
		Handicap:   HandicapConfig{DefaultIndex: 18, MaxSweeps: 4},
		Settlement: SettlementConfig{RoundingUnit: 1},
	}
}

// Load reads configuration from a YAML file, falling back to
// environment variables when the file is absent. Missing values keep
// their defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			loadFromEnv(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	loadFromEnv(&cfg)
	return &cfg, nil
}

// loadFromEnv overrides configuration with environment variables when set
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("CADDIEBOOK_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("CADDIEBOOK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Storage.RedisURL = v
	}
}
