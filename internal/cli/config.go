package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	ProfileID   string
	ProfileFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("CADDIEBOOK_SERVER", "http://localhost:8080"),
		ProfileID:   os.Getenv("CADDIEBOOK_PROFILE"),
		ProfileFile: getEnvOrDefault("CADDIEBOOK_PROFILE_FILE", defaultProfileFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadProfile loads the active profile id from file if not already set
func (c *Config) LoadProfile() error {
	if c.ProfileID != "" {
		return nil
	}

	data, err := os.ReadFile(c.ProfileFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No profile file is fine
		}
		return err
	}

	c.ProfileID = strings.TrimSpace(string(data))
	return nil
}

// SaveProfile saves the active profile id to the profile file
func (c *Config) SaveProfile(id string) error {
	c.ProfileID = id

	dir := filepath.Dir(c.ProfileFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.ProfileFile, []byte(id), 0600)
}

func defaultProfileFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".caddiebook/profile"
	}
	return filepath.Join(home, ".caddiebook", "profile")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
