// Package config loads settings for the noobdev CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vcrobe/noobdev/site"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "noobdev.yaml"

// Config holds all configuration for the CLI.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Site   SiteConfig   `yaml:"site"`
}

// ServerConfig configures the static bundle server.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	Root         string        `yaml:"root"` // directory holding index.html and main.wasm
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// SiteConfig configures the chrome itself.
type SiteConfig struct {
	DefaultPage site.Page `yaml:"default_page"`
	MountID     string    `yaml:"mount_id"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			Root:         "web",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Site: SiteConfig{
			DefaultPage: site.Home,
			MountID:     "#app",
		},
	}
}

// Load reads path over the defaults, then applies .env and NOOBDEV_*
// environment overrides, then validates. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("NOOBDEV_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NOOBDEV_ROOT"); v != "" {
		c.Server.Root = v
	}
	if v := os.Getenv("NOOBDEV_DEFAULT_PAGE"); v != "" {
		c.Site.DefaultPage = site.FromLabel(v)
	}
	if v := os.Getenv("NOOBDEV_WRITE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NOOBDEV_WRITE_TIMEOUT: %w", err)
		}
		c.Server.WriteTimeout = d
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Server.Root == "" {
		return errors.New("server.root must not be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if !c.Site.DefaultPage.Valid() {
		return fmt.Errorf("site.default_page %q is not a known page", c.Site.DefaultPage)
	}
	if c.Site.MountID == "" {
		return errors.New("site.mount_id must not be empty")
	}
	return nil
}
