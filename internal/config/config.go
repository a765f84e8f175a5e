// Package config loads the server configuration from an optional YAML file,
// with environment overrides for deployment settings.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig      `yaml:"server"`
	Palette map[string]string `yaml:"palette,omitempty"`
}

type ServerConfig struct {
	Port              int    `yaml:"port"`
	CORSAllowedOrigin string `yaml:"cors_allowed_origin"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:              8080,
			CORSAllowedOrigin: "*",
		},
	}
}

// Load reads the YAML configuration at path. An empty path yields the
// defaults. Environment variables REPGRAPH_PORT and CORS_ALLOWED_ORIGIN
// override the file in either case.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
		if cfg.Server.Port == 0 {
			cfg.Server.Port = Default().Server.Port
		}
		if cfg.Server.CORSAllowedOrigin == "" {
			cfg.Server.CORSAllowedOrigin = Default().Server.CORSAllowedOrigin
		}
	}

	if port := os.Getenv("REPGRAPH_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REPGRAPH_PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if origin := os.Getenv("CORS_ALLOWED_ORIGIN"); origin != "" {
		cfg.Server.CORSAllowedOrigin = origin
	}

	return cfg, nil
}
