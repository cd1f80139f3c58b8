package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/haryokuncoro/portfolio-website/internal/components/header"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production

	// Header instances
	MountSecret string
	MountTTL    time.Duration
	MountMax    int

	// Site content
	Site Site
}

// DefaultTitle is the document title when the site config names none.
const DefaultTitle = "Portfolio"

// Site is the optional page-shell content. Absent fields fall back to the
// header's built-in defaults independently of each other.
type Site struct {
	Title string                   `yaml:"title"`
	Logo  *string                  `yaml:"logo"`
	Items *[]header.NavigationItem `yaml:"items"`
}

// PageTitle returns the document title. It never falls back to the logo.
func (s Site) PageTitle() string {
	if s.Title == "" {
		return DefaultTitle
	}
	return s.Title
}

// HeaderOptions converts the site content into header options.
func (s Site) HeaderOptions() []header.Option {
	var opts []header.Option
	if s.Logo != nil {
		opts = append(opts, header.WithLogo(*s.Logo))
	}
	if s.Items != nil {
		opts = append(opts, header.WithItems(*s.Items...))
	}
	return opts
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		MountSecret: os.Getenv("MOUNT_SECRET"),
	}

	ttl, err := time.ParseDuration(getEnv("MOUNT_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid MOUNT_TTL: %w", err)
	}
	cfg.MountTTL = ttl

	maxMounts, err := strconv.Atoi(getEnv("MOUNT_MAX", "10000"))
	if err != nil || maxMounts <= 0 {
		return nil, fmt.Errorf("invalid MOUNT_MAX %q: must be a positive integer", os.Getenv("MOUNT_MAX"))
	}
	cfg.MountMax = maxMounts

	if cfg.MountSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("required environment variable MOUNT_SECRET is not set")
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.MountSecret = secret
	}

	// Need 64 bytes for hash key + block key
	if len(cfg.MountSecret) < 64 {
		return nil, fmt.Errorf("MOUNT_SECRET must be at least 64 characters, got %d", len(cfg.MountSecret))
	}

	if path := os.Getenv("SITE_CONFIG"); path != "" {
		site, err := LoadSite(path)
		if err != nil {
			return nil, err
		}
		cfg.Site = site
	}

	return cfg, nil
}

// LoadSite reads the page-shell content from a YAML file.
func LoadSite(path string) (Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("failed to read site config: %w", err)
	}
	return ParseSite(data)
}

// ParseSite decodes YAML site content. An empty document yields all defaults.
func ParseSite(data []byte) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("failed to parse site config: %w", err)
	}
	return site, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate mount secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
