package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all settings of the service.
type Config struct {
	Server ServerConfig
	List   ListConfig
	Image  ImageConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	list, err := loadListConfig()
	if err != nil {
		return nil, err
	}

	image, err := loadImageConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, List: list, Image: image}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// loadServerConfig resolves the listen address from PORT.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ListConfig bounds the pagination parameters of the list endpoint.
type ListConfig struct {
	DefaultLimit int
	MaxLimit     int
}

func loadListConfig() (ListConfig, error) {
	cfg := ListConfig{DefaultLimit: 20, MaxLimit: 100}

	if override, err := parseOptionalIntEnv("LIST_DEFAULT_LIMIT"); err != nil {
		return ListConfig{}, err
	} else if override != nil {
		cfg.DefaultLimit = *override
	}

	if override, err := parseOptionalIntEnv("LIST_MAX_LIMIT"); err != nil {
		return ListConfig{}, err
	} else if override != nil {
		cfg.MaxLimit = *override
	}

	if cfg.DefaultLimit < 1 || cfg.MaxLimit < cfg.DefaultLimit {
		return ListConfig{}, fmt.Errorf("invalid list limits: default=%d max=%d", cfg.DefaultLimit, cfg.MaxLimit)
	}

	return cfg, nil
}

// ImageConfig describes the outbound image fetch.
type ImageConfig struct {
	FetchTimeout time.Duration
}

func loadImageConfig() (ImageConfig, error) {
	timeout := 15 * time.Second

	if override, err := parseOptionalIntEnv("IMAGE_FETCH_TIMEOUT"); err != nil {
		return ImageConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return ImageConfig{}, fmt.Errorf("invalid IMAGE_FETCH_TIMEOUT value: %d", *override)
		}
		timeout = time.Duration(*override) * time.Second
	}

	return ImageConfig{FetchTimeout: timeout}, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
