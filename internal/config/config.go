// Package config handles configuration loading from environment variables and a mounted config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cytomat_exporter/internal/capability"
)

// Config holds all configuration for the cytomat exporter.
type Config struct {
	// Device
	Variant   string   // model name, e.g. C2C_450_SHAKE
	Require   []string // capabilities this deployment relies on
	RacksFile string   // optional YAML rack definitions

	// Input
	FeedPath string // raw response feed; empty reads stdin

	// Server configuration
	ListenAddr string

	// Logging configuration
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
}

// LoadConfig loads configuration from the mounted config directory and environment variables.
// Environment variables take precedence over mounted files.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Set defaults
		ListenAddr: ":9810",
		LogLevel:   "info",
		LogFormat:  "text",
	}

	// Try the mounted config directory first
	mounted, err := tryLoadFromMount()
	if err != nil {
		return nil, err
	}
	if mounted.variant != "" {
		cfg.Variant = mounted.variant
	}
	if mounted.racksFile != "" {
		cfg.RacksFile = mounted.racksFile
	}

	// Override from environment variables
	if v := os.Getenv("CYTOMAT_VARIANT"); v != "" {
		cfg.Variant = v
	}

	if req := os.Getenv("CYTOMAT_REQUIRE"); req != "" {
		cfg.Require = splitList(req)
	}

	if path := os.Getenv("CYTOMAT_RACKS_FILE"); path != "" {
		cfg.RacksFile = path
	}

	if path := os.Getenv("CYTOMAT_FEED_PATH"); path != "" {
		cfg.FeedPath = path
	}

	if addr := os.Getenv("CYTOMAT_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if level := os.Getenv("CYTOMAT_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if format := os.Getenv("CYTOMAT_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set and parse.
func (c *Config) Validate() error {
	if c.Variant == "" {
		return errors.New("variant is required (set CYTOMAT_VARIANT or mount a variant file)")
	}
	if _, err := c.DeviceVariant(); err != nil {
		return err
	}
	if _, err := c.RequiredCapabilities(); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		return errors.New("listen address must not be empty")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// DeviceVariant parses the configured variant.
func (c *Config) DeviceVariant() (capability.Variant, error) {
	return capability.ParseVariant(c.Variant)
}

// RequiredCapabilities parses the configured capability list.
func (c *Config) RequiredCapabilities() ([]capability.Capability, error) {
	caps := make([]capability.Capability, 0, len(c.Require))
	for _, name := range c.Require {
		cp, err := capability.ParseCapability(name)
		if err != nil {
			return nil, err
		}
		caps = append(caps, cp)
	}
	return caps, nil
}

// splitList splits a comma separated list and drops empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
