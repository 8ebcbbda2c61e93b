package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config defines dashboard configuration.
type Config struct {
	Transport string       `yaml:"transport"`
	Server    ServerConfig `yaml:"server"`
	Store     StoreConfig  `yaml:"store"`
	Log       LogConfig    `yaml:"log"`
	Seed      bool         `yaml:"seed"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects the project repository. Both backends live in memory.
type StoreConfig struct {
	Backend string `yaml:"backend"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Transport: TransportStdio,
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Store: StoreConfig{
			Backend: BackendMemory,
		},
		Log: LogConfig{
			Level: "info",
		},
		Seed: true,
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// A non-empty path takes precedence over PROJECTDASH_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PROJECTDASH_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if transport := os.Getenv("PROJECTDASH_TRANSPORT"); transport != "" {
		cfg.Transport = transport
	}
	if host := os.Getenv("PROJECTDASH_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PROJECTDASH_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PROJECTDASH_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if backend := os.Getenv("PROJECTDASH_STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if level := os.Getenv("PROJECTDASH_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("PROJECTDASH_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if seedStr := os.Getenv("PROJECTDASH_SEED"); seedStr != "" {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PROJECTDASH_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot act on.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q", c.Transport)
	}
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Transport == TransportHTTP && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
