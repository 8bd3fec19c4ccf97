// Package config loads server configuration from the environment and
// an optional TOML file. Environment variables always win, matching
// the deployment convention for MCP servers: a .env file (loaded when
// present) or the host's environment carries the credentials.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultHost is the bind address for the HTTP transport.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the listen port for the HTTP transport.
	DefaultPort = 8053

	// TransportSSE selects the HTTP transport. This is the default.
	TransportSSE = "sse"

	// TransportStdio selects the stdio transport, used when the server
	// is spawned directly by an MCP client such as Claude Desktop.
	TransportStdio = "stdio"
)

// Config holds the server configuration.
type Config struct {
	// APIKey is the Brave subscription token. Required.
	APIKey string `toml:"api_key"`

	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Transport string `toml:"transport"`

	// RequestsPerSecond and RequestsPerMonth override the advisory
	// rate limiter caps. Zero keeps the client defaults.
	RequestsPerSecond int `toml:"requests_per_second"`
	RequestsPerMonth  int `toml:"requests_per_month"`
}

// Load builds the configuration. A .env file in the working directory
// is loaded when present, then the optional TOML file at path, then
// environment variable overrides.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Host:      DefaultHost,
		Port:      DefaultPort,
		Transport: TransportSSE,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("BRAVE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("TRANSPORT"); v != "" {
		cfg.Transport = v
	}
}

// Addr returns the host:port pair for the HTTP transport.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
