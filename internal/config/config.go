package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ayasaad.dev/internal/content"
	"ayasaad.dev/internal/models"
)

// DefaultPath is read when no --config flag is given
const DefaultPath = "portfolio.yaml"

// Config holds all application configuration
type Config struct {
	ServerAddr  string         `yaml:"server_addr"`
	MountID     string         `yaml:"mount_id"`
	ShellPath   string         `yaml:"shell_path"` // empty uses the embedded shell
	SessionIdle time.Duration  `yaml:"session_idle"`
	Seed        uint64         `yaml:"seed"` // 0 seeds jitter from the clock
	Profile     models.Profile `yaml:"profile"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ServerAddr:  ":8080",
		MountID:     "root",
		SessionIdle: 30 * time.Minute,
		Profile:     content.DefaultProfile(),
	}
}

// Load reads the YAML config at path over the defaults. A missing file is
// only an error when mustExist is set. SERVER_ADDR overrides the address.
func Load(path string, mustExist bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !mustExist:
		// defaults only
	default:
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects settings the server cannot start with
func (c *Config) validate() error {
	if c.ServerAddr == "" {
		return errors.New("server_addr is empty")
	}
	if c.MountID == "" {
		return errors.New("mount_id is empty")
	}
	if c.SessionIdle <= 0 {
		return errors.New("session_idle must be positive")
	}
	if c.Profile.Name == "" {
		return errors.New("profile.name is empty")
	}
	for i := range c.Profile.Social {
		if c.Profile.Social[i].URL == "" {
			c.Profile.Social[i].URL = "#"
		}
	}
	return nil
}
