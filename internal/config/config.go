// Package config loads the site-wide settings for one generator run and
// scaffolds new projects.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	rssgerr "github.com/jcerise/rssg/internal/errors"
)

// Config represents the site configuration. It is loaded once before any
// page processing begins and is read-only for the duration of a run.
type Config struct {
	SiteTitle         string `yaml:"site_title"`
	BaseURL           string `yaml:"base_url"`
	Theme             string `yaml:"theme"`
	ContentLocation   string `yaml:"content_location"`
	OutputLocation    string `yaml:"output_location"`
	TemplatesLocation string `yaml:"templates_location,omitempty"`
}

// Defaults applied when the corresponding key is absent or empty.
const (
	DefaultSiteTitle         = "My Site"
	DefaultTheme             = "default"
	DefaultContentLocation   = "./content"
	DefaultOutputLocation    = "./output"
	DefaultTemplatesLocation = "./templates"
)

// Load loads configuration from the specified file.
//
// A .env file in the working directory is loaded first if present, and
// ${VAR} references in the YAML content are expanded from the environment.
func Load(configPath string) (*Config, error) {
	// Optional; absence is not an error.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, rssgerr.New(rssgerr.CategoryConfig, "configuration file not found").WithPath(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, rssgerr.Wrap(err, rssgerr.CategoryConfig, "read configuration file").WithPath(configPath)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, rssgerr.Wrap(err, rssgerr.CategoryConfig, "unmarshal configuration").WithPath(configPath)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SiteTitle == "" {
		c.SiteTitle = DefaultSiteTitle
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.ContentLocation == "" {
		c.ContentLocation = DefaultContentLocation
	}
	if c.OutputLocation == "" {
		c.OutputLocation = DefaultOutputLocation
	}
	if c.TemplatesLocation == "" {
		c.TemplatesLocation = DefaultTemplatesLocation
	}
}

// TemplateDir returns the directory holding the configured theme's
// templates: <templates_location>/<theme>.
func (c *Config) TemplateDir() string {
	return filepath.Join(c.TemplatesLocation, c.Theme)
}

// Validate reports configuration values that cannot drive a build.
func (c *Config) Validate() error {
	if c.ContentLocation == "" {
		return rssgerr.New(rssgerr.CategoryConfig, "content_location must not be empty")
	}
	if c.OutputLocation == "" {
		return rssgerr.New(rssgerr.CategoryConfig, "output_location must not be empty")
	}
	if c.ContentLocation == c.OutputLocation {
		return rssgerr.New(rssgerr.CategoryConfig,
			fmt.Sprintf("content_location and output_location must differ (both %q)", c.ContentLocation))
	}
	return nil
}
