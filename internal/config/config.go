package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

type GeminiConfig struct {
	URL             string  `json:"url"`
	APIKey          string  `json:"api_key"`
	Model           string  `json:"model"`
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
	RetryDelayMs    int     `json:"retry_delay_ms"`
	TimeoutSeconds  int     `json:"timeout_seconds"`
}

type ReflectConfig struct {
	MaxRequests   int `json:"max_requests"`
	WindowSeconds int `json:"window_seconds"`
}

type Config struct {
	Server struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		Subpath   string `json:"subpath"`
		JWTSecret string `json:"jwtSecret"`
	} `json:"server"`
	Postgres struct {
		DSN string `json:"dsn"`
	} `json:"postgres"`
	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Gemini  GeminiConfig  `json:"gemini"`
	Reflect ReflectConfig `json:"reflect"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		// Minimal validation
		if c.Server.JWTSecret == "" {
			cfgErr = errors.New("jwtSecret must be set in config")
			return
		}
		applyDefaults(&c)
		cfg = &c
	})
	return cfg, cfgErr
}

func applyDefaults(c *Config) {
	if c.Gemini.Temperature <= 0 {
		c.Gemini.Temperature = 0.8
	}
	if c.Gemini.MaxOutputTokens <= 0 {
		c.Gemini.MaxOutputTokens = 200
	}
	if c.Gemini.RetryDelayMs <= 0 {
		c.Gemini.RetryDelayMs = 1500
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = 10
	}
	if c.Reflect.MaxRequests <= 0 {
		c.Reflect.MaxRequests = 5
	}
	if c.Reflect.WindowSeconds <= 0 {
		c.Reflect.WindowSeconds = 60
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
