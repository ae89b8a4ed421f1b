package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	SessionDB  SessionDBConfig  `yaml:"session_db"`
	Log        LogConfig        `yaml:"log"`
	Transition TransitionConfig `yaml:"transition"`
	Auth       AuthConfig       `yaml:"auth"`
	Transport  TransportConfig  `yaml:"transport"`
}

type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type SessionDBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// TransitionConfig holds the two overlay phase delays. Reveal is measured
// from the start of the transition and must exceed Cover.
type TransitionConfig struct {
	Cover  time.Duration `yaml:"cover"`
	Reveal time.Duration `yaml:"reveal"`
}

type AuthConfig struct {
	// TokenSecret signs mock session tokens.
	TokenSecret string `yaml:"token_secret"`
	// SessionTTL is session lifetime.
	SessionTTL time.Duration `yaml:"session_ttl"`
	// Latency simulates the auth backend's network delay.
	Latency time.Duration `yaml:"latency"`
}

type TransportConfig struct {
	// Mode is "http" (REST API + MCP endpoint) or "stdio" (MCP only).
	Mode string `yaml:"mode"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		SessionDB: SessionDBConfig{
			Path: "eishan-session.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transition: TransitionConfig{
			Cover:  800 * time.Millisecond,
			Reveal: 1200 * time.Millisecond,
		},
		Auth: AuthConfig{
			TokenSecret: "dev-secret",
			SessionTTL:  7 * 24 * time.Hour,
			Latency:     time.Second,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
	}

	if path := os.Getenv("EISHAN_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("EISHAN_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("EISHAN_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid EISHAN_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if origins := os.Getenv("EISHAN_CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = strings.Split(origins, ",")
	}
	if dbPath := os.Getenv("EISHAN_SESSION_DB_PATH"); dbPath != "" {
		cfg.SessionDB.Path = dbPath
	}
	if level := os.Getenv("EISHAN_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if secret := os.Getenv("EISHAN_TOKEN_SECRET"); secret != "" {
		cfg.Auth.TokenSecret = secret
	}
	if latency := os.Getenv("EISHAN_AUTH_LATENCY"); latency != "" {
		d, err := time.ParseDuration(latency)
		if err != nil {
			return Config{}, fmt.Errorf("invalid EISHAN_AUTH_LATENCY: %w", err)
		}
		cfg.Auth.Latency = d
	}
	if mode := os.Getenv("EISHAN_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}

	if cfg.Transition.Reveal <= cfg.Transition.Cover {
		return Config{}, fmt.Errorf("transition.reveal must be greater than transition.cover")
	}

	return cfg, nil
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
